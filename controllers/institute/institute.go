package instituteController

import (
	"time"

	"ccrm/database"
	"ccrm/middleware"
	"ccrm/models"
	instituteValidator "ccrm/validators/institute"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateInstitute registers an institute profile and maps it to the
// logged-in institute user.
func CreateInstitute(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedInstitute").(*instituteValidator.CreateInstituteRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	db := database.Database.Db

	var existing models.Institute
	if err := db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&existing).Error; err == nil {
		return middleware.ErrorResponse(c, fiber.StatusConflict, "Institute already exists with this email")
	}

	institute := models.Institute{
		InstituteName: reqData.InstituteName,
		ContactPerson: reqData.ContactPerson,
		Email:         reqData.Email,
		Phone:         reqData.Phone,
		Address:       reqData.Address,
		IsActive:      true,
	}
	var mapping models.InstituteUserMapping

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&institute).Error; err != nil {
			return err
		}
		mapping = models.InstituteUserMapping{
			UserID:      userID,
			InstituteID: institute.ID,
		}
		return tx.Create(&mapping).Error
	})
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create institute!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, "Institute created successfully", fiber.Map{
		"institute": institute,
		"mapping":   mapping,
	})
}

// GetAllInstitutes lists all active institute profiles.
func GetAllInstitutes(c *fiber.Ctx) error {
	var institutes []models.Institute
	err := database.Database.Db.
		Where("is_deleted = ? AND is_active = ?", false, true).
		Find(&institutes).Error
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch institutes!")
	}
	if len(institutes) == 0 {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "No institutes found")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Institute list", institutes)
}

// GetSingleInstitute fetches one non-deleted institute.
func GetSingleInstitute(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid institute id!")
	}

	var institute models.Institute
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", id, false).First(&institute).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Institute not found")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Institute details", institute)
}

// UpdateInstitute updates institute profile fields in place.
func UpdateInstitute(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid institute id!")
	}

	reqData := new(instituteValidator.CreateInstituteRequest)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
	}

	db := database.Database.Db

	var institute models.Institute
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&institute).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Institute not found")
	}

	updates := map[string]interface{}{}
	if reqData.InstituteName != "" {
		updates["institute_name"] = reqData.InstituteName
	}
	if reqData.ContactPerson != "" {
		updates["contact_person"] = reqData.ContactPerson
	}
	if reqData.Email != "" {
		updates["email"] = reqData.Email
	}
	if reqData.Phone != "" {
		updates["phone"] = reqData.Phone
	}
	if reqData.Address != "" {
		updates["address"] = reqData.Address
	}

	if err := db.Model(&institute).Updates(updates).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update institute!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Institute updated", institute)
}

// DeleteInstitute soft-deletes an institute and cascades to its user
// mappings.
func DeleteInstitute(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid institute id!")
	}

	db := database.Database.Db

	var institute models.Institute
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&institute).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Institute not found")
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&institute).Updates(map[string]interface{}{
			"is_deleted": true,
			"is_active":  false,
		}).Error; err != nil {
			return err
		}
		return tx.Model(&models.InstituteUserMapping{}).Where("institute_id = ?", id).Updates(map[string]interface{}{
			"is_deleted": true,
			"is_active":  false,
			"valid_to":   time.Now(),
		}).Error
	})
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete institute!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Institute deleted", institute)
}

// GetStudentsByInstitute lists the students registered under an institute
// via invite.
func GetStudentsByInstitute(c *fiber.Ctx) error {
	instituteID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid institute id!")
	}

	db := database.Database.Db

	var mappings []models.InstituteStudentMapping
	db.Where("institute_id = ? AND is_deleted = ?", instituteID, false).Find(&mappings)
	if len(mappings) == 0 {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "No students found for this institute")
	}

	studentIDs := make([]uint, 0, len(mappings))
	for _, mapping := range mappings {
		studentIDs = append(studentIDs, mapping.StudentID)
	}

	var students []models.User
	if err := db.Where("id IN ? AND is_deleted = ?", studentIDs, false).Find(&students).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch students!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Students for institute", students)
}
