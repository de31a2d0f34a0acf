package course

import (
	"fmt"

	"github.com/course-tools/thinkific-downloader/internal/thinkific/response"
)

const (
	// ContentableTypeLesson standard lesson, the common case
	ContentableTypeLesson = "Lesson"
	// ContentableTypeQuiz interactive quiz
	ContentableTypeQuiz = "Quiz"
)

// Course is the content tree built once per run from the syllabus,
// read-only thereafter.
type Course struct {
	Name     string
	Chapters []Chapter
	Contents map[int]ContentItem
}

// Chapter ...
// Ordinal is 1-based and defines the on-disk directory name and ordering.
type Chapter struct {
	Ordinal    int
	Name       string
	ContentIDs []int
}

// ContentItem is one syllabus entry. ContentableType is the dispatch key.
type ContentItem struct {
	ID              int
	Name            string
	ContentableID   int
	ContentableType string
}

// FromSyllabus builds the course model from the syllabus payload,
// merging the contents and lessons collections into one id lookup.
func FromSyllabus(res response.CoursePlayerSyllabusResponse) Course {
	c := Course{
		Name:     res.Course.Name,
		Contents: make(map[int]ContentItem, len(res.Contents)+len(res.Lessons)),
	}
	if c.Name == "" {
		c.Name = "Course"
	}

	for _, item := range res.Contents {
		c.Contents[item.ID] = contentItem(item)
	}
	for _, item := range res.Lessons {
		c.Contents[item.ID] = contentItem(item)
	}

	for i, ch := range res.Chapters {
		name := ch.Name
		if name == "" {
			name = fmt.Sprintf("Chapter %d", i+1)
		}
		c.Chapters = append(c.Chapters, Chapter{
			Ordinal:    i + 1,
			Name:       name,
			ContentIDs: ch.ContentIDs,
		})
	}
	return c
}

func contentItem(item response.SyllabusContent) ContentItem {
	name := item.Name
	if name == "" {
		name = "Unknown Lesson"
	}
	return ContentItem{
		ID:              item.ID,
		Name:            name,
		ContentableID:   item.ContentableID,
		ContentableType: item.ContentableType,
	}
}
