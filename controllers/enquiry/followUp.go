package enquiryController

import (
	"time"

	"ccrm/database"
	"ccrm/middleware"
	"ccrm/models"
	enquiryValidator "ccrm/validators/enquiry"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateFollowUp logs a follow-up against an enquiry assigned to the
// logged-in child admin and schedules the next contact.
func CreateFollowUp(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedFollowUp").(*enquiryValidator.CreateFollowUpRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	childAdminID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	db := database.Database.Db

	var enquiry models.CourseEnquiry
	if err := db.Where("id = ? AND is_deleted = ?", reqData.EnquiryID, false).First(&enquiry).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Enquiry not found")
	}

	var link models.EnquiryAssignMapping
	err := db.Where("enquiry_id = ? AND child_admin_id = ? AND is_deleted = ?",
		reqData.EnquiryID, childAdminID, false).First(&link).Error
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "Enquiry is not assigned to you")
	}

	nextDate, err := time.Parse("2006-01-02", reqData.NextFollowUpDate)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid nextFollowUpDate, expected YYYY-MM-DD")
	}

	followUp := models.FollowUp{
		Mode:             reqData.Mode,
		Message:          reqData.Message,
		NextFollowUpDate: nextDate,
		NextFollowUpTime: reqData.NextFollowUpTime,
	}
	var mapping models.FollowUpMapping

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&followUp).Error; err != nil {
			return err
		}
		mapping = models.FollowUpMapping{
			FollowUpID:   followUp.ID,
			EnquiryID:    reqData.EnquiryID,
			ChildAdminID: childAdminID,
		}
		return tx.Create(&mapping).Error
	})
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create follow-up!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, "Follow-up created successfully", fiber.Map{
		"followUp": followUp,
		"mapping":  mapping,
	})
}

// GetFollowUpsByEnquiry lists an enquiry's follow-up history, newest first.
func GetFollowUpsByEnquiry(c *fiber.Ctx) error {
	enquiryID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid enquiry id!")
	}

	db := database.Database.Db

	var mappings []models.FollowUpMapping
	db.Where("enquiry_id = ? AND is_deleted = ?", enquiryID, false).Find(&mappings)
	if len(mappings) == 0 {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "No follow-ups found for this enquiry")
	}

	followUpIDs := make([]uint, 0, len(mappings))
	for _, mapping := range mappings {
		followUpIDs = append(followUpIDs, mapping.FollowUpID)
	}

	var followUps []models.FollowUp
	err = db.Where("id IN ? AND is_deleted = ?", followUpIDs, false).
		Order("created_at desc").
		Find(&followUps).Error
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch follow-ups!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Follow-ups for enquiry", followUps)
}

// GetFollowUpsByChildAdmin lists the logged-in child admin's own follow-up
// log, newest first.
func GetFollowUpsByChildAdmin(c *fiber.Ctx) error {
	childAdminID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	db := database.Database.Db

	var mappings []models.FollowUpMapping
	db.Where("child_admin_id = ? AND is_deleted = ?", childAdminID, false).Find(&mappings)
	if len(mappings) == 0 {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "No follow-ups found")
	}

	followUpIDs := make([]uint, 0, len(mappings))
	for _, mapping := range mappings {
		followUpIDs = append(followUpIDs, mapping.FollowUpID)
	}

	var followUps []models.FollowUp
	err := db.Where("id IN ? AND is_deleted = ?", followUpIDs, false).
		Order("created_at desc").
		Find(&followUps).Error
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch follow-ups!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Your follow-ups", followUps)
}
