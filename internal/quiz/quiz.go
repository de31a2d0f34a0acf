package quiz

import (
	"encoding/base64"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/course-tools/thinkific-downloader/internal/pkg/files"
	"github.com/course-tools/thinkific-downloader/internal/thinkific"
	"github.com/course-tools/thinkific-downloader/internal/thinkific/response"
)

const defaultExplanation = "No explanation provided."

// Choice ...
type Choice struct {
	Text      string
	IsCorrect bool
}

// Question ...
type Question struct {
	Prompt      string
	Explanation string
	Choices     []Choice
}

// Materializer renders a quiz into a self-contained interactive HTML document
// with client-side answer reveal, no network needed at view time.
type Materializer struct {
	client *thinkific.Client
	log    *logrus.Logger
}

// NewMaterializer ...
func NewMaterializer(client *thinkific.Client, log *logrus.Logger) *Materializer {
	return &Materializer{client: client, log: log}
}

// Materialize fetches the quiz payload and writes <displayName>.html into
// outputDir. Nothing is written when assembly or rendering fails, a partial
// document is worse than none.
func (m *Materializer) Materialize(quizID int, outputDir, displayName string) error {
	data, err := m.client.QuizDetail(quizID)
	if err != nil {
		return err
	}

	questions := BuildQuestions(data)
	doc, err := RenderHTML(displayName, questions)
	if err != nil {
		return err
	}

	if err := files.SaveTextFile(filepath.Join(outputDir, displayName+".html"), doc); err != nil {
		return err
	}
	m.log.Info("Quiz saved.")
	return nil
}

// BuildQuestions joins the three parallel payload collections in the order
// given by the quiz's question-id list. Missing question or choice ids are
// skipped, the platform data is occasionally inconsistent.
func BuildQuestions(res response.CoursePlayerQuizResponse) []Question {
	questionsByID := make(map[int]response.QuizQuestion, len(res.Questions))
	for _, q := range res.Questions {
		questionsByID[q.ID] = q
	}
	choicesByID := make(map[int]response.QuizChoice, len(res.Choices))
	for _, c := range res.Choices {
		choicesByID[c.ID] = c
	}

	questions := make([]Question, 0, len(res.Quiz.QuestionIDs))
	for _, qid := range res.Quiz.QuestionIDs {
		q, ok := questionsByID[qid]
		if !ok {
			continue
		}

		explanation := q.TextExplanation
		if explanation == "" {
			explanation = defaultExplanation
		}

		choices := make([]Choice, 0, len(q.ChoiceIDs))
		for _, cid := range q.ChoiceIDs {
			c, ok := choicesByID[cid]
			if !ok {
				continue
			}
			choices = append(choices, Choice{
				Text:      c.Text,
				IsCorrect: DecodeCredited(c.Credited),
			})
		}

		questions = append(questions, Question{
			Prompt:      q.Prompt,
			Explanation: explanation,
			Choices:     choices,
		})
	}
	return questions
}

// DecodeCredited decodes the obfuscated per-choice correctness indicator:
// base64 decode then case-insensitive substring test for the truth token.
// Any decode failure yields false, never an error.
func DecodeCredited(raw string) bool {
	decoded, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return false
	}
	return strings.Contains(strings.ToLower(string(decoded)), "true")
}
