package batchValidator

import (
	"ccrm/middleware"
	"ccrm/models"

	"github.com/gofiber/fiber/v2"
)

type CreateBatchRequest struct {
	CourseID  uint   `json:"courseId"`
	BatchName string `json:"batchName"`
	BatchNo   string `json:"batchNo"`
	StartDate string `json:"startDate"` // "2006-01-02"
	EndDate   string `json:"endDate"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Mode      string `json:"mode"`
	Location  string `json:"location"`
	Capacity  int    `json:"capacity"`
}

// CreateBatch validator middleware
func CreateBatch() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateBatchRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := make(map[string]string)

		if reqData.CourseID == 0 {
			errors["courseId"] = "courseId is required!"
		}
		if reqData.BatchName == "" {
			errors["batchName"] = "batchName is required!"
		}
		if reqData.BatchNo == "" {
			errors["batchNo"] = "batchNo is required!"
		}
		if reqData.StartDate == "" {
			errors["startDate"] = "startDate is required!"
		}
		if reqData.EndDate == "" {
			errors["endDate"] = "endDate is required!"
		}
		if reqData.StartTime == "" {
			errors["startTime"] = "startTime is required!"
		}
		if reqData.EndTime == "" {
			errors["endTime"] = "endTime is required!"
		}
		switch reqData.Mode {
		case models.BatchModeOnline, models.BatchModeOffline, models.BatchModeHybrid:
		default:
			errors["mode"] = "mode must be Online, Offline or Hybrid!"
		}
		if reqData.Location == "" {
			errors["location"] = "location is required!"
		}
		if reqData.Capacity <= 0 {
			errors["capacity"] = "capacity must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBatch", reqData)
		return c.Next()
	}
}
