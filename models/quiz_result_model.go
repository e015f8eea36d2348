package models

type QuestionResult struct {
	QuestionID    uint    `json:"question_id"`
	YourAnswer    *string `json:"your_answer"`
	CorrectAnswer string  `json:"correct_answer"`
	IsCorrect     bool    `json:"is_correct"`
	Explanation   *string `json:"explanation"`
}

type QuizResult struct {
	Score   int              `json:"score"`
	Total   int              `json:"total"`
	Results []QuestionResult `json:"results"`
	Message string           `json:"message"`
}
