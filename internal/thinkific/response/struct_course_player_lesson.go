package response

// CoursePlayerLessonResponse ...
type CoursePlayerLessonResponse struct {
	Lesson struct {
		VideoURL string `json:"video_url"`
		HTMLText string `json:"html_text"`
	} `json:"lesson"`
	DownloadFiles []LessonFile `json:"download_files"`
	Attachments   []LessonFile `json:"attachments"`
}

// LessonFile is one downloadable attachment. FileName may be empty,
// in which case Label is the next best display name.
type LessonFile struct {
	FileName    string `json:"file_name"`
	Label       string `json:"label"`
	DownloadURL string `json:"download_url"`
}
