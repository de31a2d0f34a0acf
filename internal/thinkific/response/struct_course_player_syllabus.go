package response

// CoursePlayerSyllabusResponse is the course player syllabus payload.
// Content items may arrive in either the contents or the lessons collection
// depending on the platform theme version.
type CoursePlayerSyllabusResponse struct {
	Course struct {
		Name string `json:"name"`
	} `json:"course"`
	Chapters []SyllabusChapter `json:"chapters"`
	Contents []SyllabusContent `json:"contents"`
	Lessons  []SyllabusContent `json:"lessons"`
}

// SyllabusChapter ...
type SyllabusChapter struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Position   int    `json:"position"`
	ContentIDs []int  `json:"content_ids"`
}

// SyllabusContent is the polymorphic contentable reference attached to a chapter.
type SyllabusContent struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	ContentableID   int    `json:"contentable_id"`
	ContentableType string `json:"contentable_type"`
}
