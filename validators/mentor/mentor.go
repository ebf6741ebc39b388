package mentorValidator

import (
	"strings"

	"ccrm/middleware"

	"github.com/gofiber/fiber/v2"
)

type CreateMentorRequest struct {
	MentorName  string `json:"mentorName"`
	Title       string `json:"title"`
	Description string `json:"description"`
	MentorPic   string `json:"mentorPic"`
}

// CreateMentor validator middleware
func CreateMentor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateMentorRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.MentorName) == "" {
			errors["mentorName"] = "mentorName is required!"
		}
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "title is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedMentor", reqData)
		return c.Next()
	}
}
