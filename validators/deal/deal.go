package dealValidator

import (
	"ccrm/middleware"
	"ccrm/models"

	"github.com/gofiber/fiber/v2"
)

type CreateDealRequest struct {
	CourseID       uint    `json:"courseId"`
	RequestedPrice float64 `json:"requestedPrice"`
	RequestedSeats int     `json:"requestedSeats"`
}

// CreateRaisedDeal validator middleware
func CreateRaisedDeal() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateDealRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := make(map[string]string)

		if reqData.CourseID == 0 {
			errors["courseId"] = "courseId is required!"
		}
		if reqData.RequestedPrice <= 0 {
			errors["requestedPrice"] = "requestedPrice must be greater than 0!"
		}
		if reqData.RequestedSeats <= 0 {
			errors["requestedSeats"] = "requestedSeats must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedDeal", reqData)
		return c.Next()
	}
}

type UpdateDealStatusRequest struct {
	Status       string `json:"status"`
	AdminRemarks string `json:"adminRemarks"`
}

// UpdateDealStatus validator middleware
func UpdateDealStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateDealStatusRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		switch reqData.Status {
		case models.DealPending, models.DealApproved, models.DealRejected:
		default:
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid status value")
		}

		c.Locals("validatedDealStatus", reqData)
		return c.Next()
	}
}
