package handlers

import (
	"strings"

	"github.com/anjiri1684/cyber_evolve/database"
	"github.com/anjiri1684/cyber_evolve/services"
	"github.com/gofiber/fiber/v2"
)

type submitQuizRequest struct {
	Answers interface{} `json:"answers"`
}

func ListQuestions(c *fiber.Ctx, lease *database.Lease) error {
	db, err := lease.DB()
	if err != nil {
		return err
	}
	questions, err := services.ListQuestions(db)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"questions": services.QuestionViews(questions)})
}

// SubmitQuiz grades {"answers": {"<id>": "<label>"}}. A missing, non-JSON or
// malformed body grades as if nothing was answered.
func SubmitQuiz(c *fiber.Ctx, lease *database.Lease) error {
	answers := submittedAnswers(c)

	db, err := lease.DB()
	if err != nil {
		return err
	}
	result, err := services.GradeQuiz(db, answers)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

func submittedAnswers(c *fiber.Ctx) map[string]interface{} {
	if !isJSONContent(c.Get(fiber.HeaderContentType)) {
		return nil
	}
	var req submitQuizRequest
	if err := c.App().Config().JSONDecoder(c.Body(), &req); err != nil {
		return nil
	}
	answers, _ := req.Answers.(map[string]interface{})
	return answers
}

// isJSONContent accepts application/json and structured-syntax types such as
// application/vnd.api+json, ignoring parameters.
func isJSONContent(contentType string) bool {
	mediaType, _, _ := strings.Cut(contentType, ";")
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))
	if mediaType == fiber.MIMEApplicationJSON {
		return true
	}
	return strings.HasPrefix(mediaType, "application/") && strings.HasSuffix(mediaType, "+json")
}
