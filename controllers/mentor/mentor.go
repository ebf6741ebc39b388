package mentorController

import (
	"time"

	"ccrm/database"
	"ccrm/middleware"
	"ccrm/models"
	mentorValidator "ccrm/validators/mentor"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func actorName(c *fiber.Ctx) string {
	if name, ok := c.Locals("userName").(string); ok {
		return name
	}
	return ""
}

// CreateMentor creates a mentor profile and maps it to the creating admin.
func CreateMentor(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedMentor").(*mentorValidator.CreateMentorRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	db := database.Database.Db

	var existing models.Mentor
	if err := db.Where("mentor_name = ? AND is_deleted = ?", reqData.MentorName, false).First(&existing).Error; err == nil {
		return middleware.ErrorResponse(c, fiber.StatusConflict, "Mentor already exists")
	}

	mentor := models.Mentor{
		MentorName:    reqData.MentorName,
		Title:         reqData.Title,
		Description:   reqData.Description,
		MentorPic:     reqData.MentorPic,
		CreatedByName: actorName(c),
	}
	var mapping models.MentorUserMapping

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&mentor).Error; err != nil {
			return err
		}
		mapping = models.MentorUserMapping{
			UserID:   userID,
			MentorID: mentor.ID,
		}
		return tx.Create(&mapping).Error
	})
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create mentor!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, "Mentor created successfully", fiber.Map{
		"mentor":  mentor,
		"mapping": mapping,
	})
}

// GetAllMentors lists all active mentors.
func GetAllMentors(c *fiber.Ctx) error {
	var mentors []models.Mentor
	err := database.Database.Db.
		Where("is_deleted = ? AND is_active = ?", false, true).
		Find(&mentors).Error
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch mentors!")
	}
	if len(mentors) == 0 {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "No mentors found")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Mentor list", mentors)
}

// GetSingleMentor fetches one non-deleted mentor.
func GetSingleMentor(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid mentor id!")
	}

	var mentor models.Mentor
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", id, false).First(&mentor).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Mentor not found")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Mentor details", mentor)
}

// UpdateMentor updates mentor profile fields and stamps who changed them.
func UpdateMentor(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid mentor id!")
	}

	reqData := new(mentorValidator.CreateMentorRequest)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
	}

	db := database.Database.Db

	var mentor models.Mentor
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&mentor).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Mentor not found")
	}

	updates := map[string]interface{}{
		"updated_by_name": actorName(c),
	}
	if reqData.MentorName != "" {
		updates["mentor_name"] = reqData.MentorName
	}
	if reqData.Title != "" {
		updates["title"] = reqData.Title
	}
	if reqData.Description != "" {
		updates["description"] = reqData.Description
	}
	if reqData.MentorPic != "" {
		updates["mentor_pic"] = reqData.MentorPic
	}

	if err := db.Model(&mentor).Updates(updates).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update mentor!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Mentor updated", mentor)
}

// DeleteMentor soft-deletes a mentor, stamps who deleted it and cascades to
// the user mappings.
func DeleteMentor(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid mentor id!")
	}

	db := database.Database.Db

	var mentor models.Mentor
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&mentor).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Mentor not found")
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&mentor).Updates(map[string]interface{}{
			"is_deleted":      true,
			"is_active":       false,
			"deleted_by_name": actorName(c),
		}).Error; err != nil {
			return err
		}
		return tx.Model(&models.MentorUserMapping{}).Where("mentor_id = ?", id).Updates(map[string]interface{}{
			"is_deleted": true,
			"is_active":  false,
			"valid_to":   time.Now(),
		}).Error
	})
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete mentor!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Mentor deleted", mentor)
}
