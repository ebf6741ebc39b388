package enquiryController

import (
	"ccrm/database"
	"ccrm/middleware"
	"ccrm/models"
	enquiryValidator "ccrm/validators/enquiry"

	"github.com/gofiber/fiber/v2"
)

// CreateGeneralEnquiry records an anonymous interest ping against a course.
// The endpoint is public; only an email and course id are captured.
func CreateGeneralEnquiry(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedGeneralEnquiry").(*enquiryValidator.CreateGeneralEnquiryRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found")
	}

	enquiry := models.GeneralEnquiry{
		Email:    reqData.Email,
		CourseID: reqData.CourseID,
		Status:   models.GenEnquiryPending,
	}
	if err := db.Create(&enquiry).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create enquiry!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, "Enquiry submitted successfully", enquiry)
}

// GetAllGeneralEnquiries lists every non-deleted general enquiry with its
// course name, newest first.
func GetAllGeneralEnquiries(c *fiber.Ctx) error {
	db := database.Database.Db

	var enquiries []models.GeneralEnquiry
	err := db.Where("is_deleted = ?", false).Order("created_at desc").Find(&enquiries).Error
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch enquiries!")
	}
	if len(enquiries) == 0 {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "No enquiries found")
	}

	result := make([]fiber.Map, 0, len(enquiries))
	for _, enquiry := range enquiries {
		courseName := "Unknown"
		var course models.Course
		if err := db.First(&course, enquiry.CourseID).Error; err == nil {
			courseName = course.CourseName
		}
		result = append(result, fiber.Map{
			"enquiry":    enquiry,
			"courseName": courseName,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "All general enquiries", result)
}

// GetSingleGeneralEnquiry fetches one non-deleted general enquiry.
func GetSingleGeneralEnquiry(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid enquiry id!")
	}

	var enquiry models.GeneralEnquiry
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", id, false).First(&enquiry).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Enquiry not found")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Enquiry details", enquiry)
}

// UpdateGeneralEnquiryStatus moves a general enquiry through its own
// pipeline (pending, in-progress, resolved, closed).
func UpdateGeneralEnquiryStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid enquiry id!")
	}

	reqData, ok := c.Locals("validatedGeneralStatus").(*enquiryValidator.UpdateGeneralStatusRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db

	var enquiry models.GeneralEnquiry
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&enquiry).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Enquiry not found")
	}

	if err := db.Model(&enquiry).Update("status", reqData.Status).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update enquiry status!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Enquiry status updated", enquiry)
}

// DeleteGeneralEnquiry soft-deletes a general enquiry.
func DeleteGeneralEnquiry(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid enquiry id!")
	}

	db := database.Database.Db

	var enquiry models.GeneralEnquiry
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&enquiry).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Enquiry not found")
	}

	if err := db.Model(&enquiry).Update("is_deleted", true).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete enquiry!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Enquiry deleted", enquiry)
}
