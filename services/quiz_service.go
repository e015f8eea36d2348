package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/anjiri1684/cyber_evolve/models"
	"gorm.io/gorm"
)

const quizGradedMessage = "Quiz graded successfully."

// ListQuestions returns every stored question in ascending id order.
func ListQuestions(db *gorm.DB) ([]models.Question, error) {
	var questions []models.Question
	if err := db.Order("id").Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return questions, nil
}

func QuestionViews(questions []models.Question) []models.QuestionView {
	views := make([]models.QuestionView, 0, len(questions))
	for _, q := range questions {
		views = append(views, q.View())
	}
	return views
}

// GradeSubmission scores answers, keyed by question id, against questions.
// Missing keys and non-string values count as unanswered. Labels compare
// case-insensitively.
func GradeSubmission(questions []models.Question, answers map[string]interface{}) models.QuizResult {
	results := make([]models.QuestionResult, 0, len(questions))
	score := 0

	for _, q := range questions {
		answer := normalizeAnswer(answers[strconv.FormatUint(uint64(q.ID), 10)])
		correct := strings.ToUpper(q.CorrectOption)
		isCorrect := answer != "" && answer == correct
		if isCorrect {
			score++
		}

		var yourAnswer *string
		if answer != "" {
			yourAnswer = &answer
		}

		results = append(results, models.QuestionResult{
			QuestionID:    q.ID,
			YourAnswer:    yourAnswer,
			CorrectAnswer: q.CorrectOption,
			IsCorrect:     isCorrect,
			Explanation:   q.Explanation,
		})
	}

	total := len(questions)
	if total == 0 {
		total = 1
	}

	return models.QuizResult{
		Score:   score,
		Total:   total,
		Results: results,
		Message: quizGradedMessage,
	}
}

// GradeQuiz loads the stored questions and grades answers against them.
func GradeQuiz(db *gorm.DB, answers map[string]interface{}) (models.QuizResult, error) {
	questions, err := ListQuestions(db)
	if err != nil {
		return models.QuizResult{}, err
	}
	return GradeSubmission(questions, answers), nil
}

func normalizeAnswer(v interface{}) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.ToUpper(s)
}
