package response

// CoursePlayerQuizResponse carries three parallel collections.
// Quiz.QuestionIDs is the authoritative display order; the questions and
// choices collections arrive in no particular order.
type CoursePlayerQuizResponse struct {
	Quiz struct {
		QuestionIDs []int `json:"question_ids"`
	} `json:"quiz"`
	Questions []QuizQuestion `json:"questions"`
	Choices   []QuizChoice   `json:"choices"`
}

// QuizQuestion ...
type QuizQuestion struct {
	ID              int    `json:"id"`
	Prompt          string `json:"prompt"`
	TextExplanation string `json:"text_explanation"`
	ChoiceIDs       []int  `json:"choice_ids"`
}

// QuizChoice ...
// Credited is the platform's obfuscated correctness indicator.
type QuizChoice struct {
	ID       int    `json:"id"`
	Text     string `json:"text"`
	Credited string `json:"credited"`
}
