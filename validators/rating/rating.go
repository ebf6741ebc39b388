package ratingValidator

import (
	"ccrm/middleware"

	"github.com/gofiber/fiber/v2"
)

type CreateRatingRequest struct {
	CourseID uint   `json:"courseId"`
	Rating   int    `json:"rating"`
	Review   string `json:"review"`
}

// CreateRating validator middleware
func CreateRating() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateRatingRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := make(map[string]string)

		if reqData.CourseID == 0 {
			errors["courseId"] = "courseId is required!"
		}
		if reqData.Rating < 1 || reqData.Rating > 5 {
			errors["rating"] = "rating must be between 1 and 5!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRating", reqData)
		return c.Next()
	}
}

type UpdateRatingRequest struct {
	Rating int    `json:"rating"`
	Review string `json:"review"`
}

// UpdateRating validator middleware
func UpdateRating() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateRatingRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		if reqData.Rating != 0 && (reqData.Rating < 1 || reqData.Rating > 5) {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "rating must be between 1 and 5!")
		}

		c.Locals("validatedRatingUpdate", reqData)
		return c.Next()
	}
}
