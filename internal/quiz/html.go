package quiz

import (
	"html/template"
	"strings"
)

type pageData struct {
	Title     string
	Questions []questionData
}

type questionData struct {
	Index       int
	Prompt      template.HTML
	Explanation template.HTML
	Choices     []choiceData
}

type choiceData struct {
	Text      template.HTML
	IsCorrect bool
}

var quizTemplate = template.Must(template.New("quiz").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>
        body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; line-height: 1.6; color: #333; max-width: 800px; margin: 0 auto; padding: 20px; background-color: #f4f4f9; }
        h1 { color: #2c3e50; border-bottom: 2px solid #3498db; padding-bottom: 10px; }
        .question-card { background: #fff; border-radius: 8px; box-shadow: 0 2px 5px rgba(0,0,0,0.1); padding: 20px; margin-bottom: 25px; }
        .question-text { font-weight: 600; font-size: 1.1em; margin-bottom: 15px; color: #2c3e50; }
        .options { list-style-type: none; padding: 0; }
        .option { background: #f8f9fa; border: 1px solid #dee2e6; padding: 10px 15px; margin-bottom: 8px; border-radius: 4px; cursor: pointer; transition: background 0.2s; }
        .option:hover { background: #e9ecef; }
        .option.selected { border-color: #3498db; background: #ebf5fb; }
        .option.correct { background-color: #d4edda; border-color: #c3e6cb; color: #155724; }
        .option.wrong { background-color: #f8d7da; border-color: #f5c6cb; color: #721c24; }
        .feedback-section { margin-top: 15px; padding: 15px; border-radius: 4px; display: none; }
        .explanation { background-color: #e2e3e5; border-left: 4px solid #3498db; padding: 10px; margin-top: 10px; font-size: 0.95em; }
        .btn-reveal { background-color: #3498db; color: white; border: none; padding: 8px 16px; border-radius: 4px; cursor: pointer; font-size: 0.9em; margin-top: 10px; }
        .btn-reveal:hover { background-color: #2980b9; }
    </style>
</head>
<body>
    <h1>{{.Title}}</h1>
{{range .Questions}}    <div class="question-card" id="q{{.Index}}">
        <div class="question-text">{{.Index}}. {{.Prompt}}</div>
        <ul class="options">
{{range .Choices}}            <li class="option" onclick="checkAnswer(this, {{.IsCorrect}})">{{.Text}}</li>
{{end}}        </ul>
        <button class="btn-reveal" onclick="toggleExplanation(this)">Show Answer &amp; Explanation</button>
        <div class="feedback-section">
            <div class="explanation"><strong>Explanation:</strong><br>{{.Explanation}}</div>
        </div>
    </div>
{{end}}    <script>
        function checkAnswer(element, isCorrect) {
            let siblings = element.parentElement.children;
            for(let i=0; i<siblings.length; i++) {
                siblings[i].classList.remove('selected', 'correct', 'wrong');
            }
            if(isCorrect) { element.classList.add('correct'); }
            else { element.classList.add('wrong'); }
        }
        function toggleExplanation(btn) {
            let card = btn.parentElement;
            let feedback = card.querySelector('.feedback-section');
            if (feedback.style.display === 'block') {
                feedback.style.display = 'none';
                btn.textContent = 'Show Answer & Explanation';
            } else {
                feedback.style.display = 'block';
                btn.textContent = 'Hide Answer & Explanation';
            }
        }
    </script>
</body>
</html>
`))

// RenderHTML produces the interactive quiz document. Question and choice text
// are platform rich text and embedded as-is.
func RenderHTML(title string, questions []Question) (string, error) {
	data := pageData{Title: title}
	for i, q := range questions {
		qd := questionData{
			Index:       i + 1,
			Prompt:      template.HTML(q.Prompt),
			Explanation: template.HTML(q.Explanation),
		}
		for _, c := range q.Choices {
			qd.Choices = append(qd.Choices, choiceData{
				Text:      template.HTML(c.Text),
				IsCorrect: c.IsCorrect,
			})
		}
		data.Questions = append(data.Questions, qd)
	}

	var sb strings.Builder
	if err := quizTemplate.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
