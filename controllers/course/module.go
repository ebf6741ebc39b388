package courseController

import (
	"time"

	"ccrm/database"
	"ccrm/middleware"
	"ccrm/models"
	courseValidator "ccrm/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateModule creates a module and maps it to its course.
func CreateModule(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedModule").(*courseValidator.CreateModuleRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found")
	}

	module := models.CourseModule{
		Title:    reqData.Title,
		Subtitle: reqData.Subtitle,
		Content:  reqData.Content,
		Order:    reqData.Order,
	}
	var mapping models.CourseModuleMapping

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&module).Error; err != nil {
			return err
		}
		mapping = models.CourseModuleMapping{
			CourseID: reqData.CourseID,
			ModuleID: module.ID,
		}
		return tx.Create(&mapping).Error
	})
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create module!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, "Module created and mapped successfully", fiber.Map{
		"module":  module,
		"mapping": mapping,
	})
}

// GetModulesByCourseId lists the active modules mapped to a course,
// ordered by their position.
func GetModulesByCourseId(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("courseId")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid course id!")
	}

	db := database.Database.Db

	var mappings []models.CourseModuleMapping
	db.Where("course_id = ? AND is_deleted = ? AND is_active = ?", courseID, false, true).Find(&mappings)
	if len(mappings) == 0 {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "No modules found for this course")
	}

	moduleIDs := make([]uint, 0, len(mappings))
	for _, mapping := range mappings {
		moduleIDs = append(moduleIDs, mapping.ModuleID)
	}

	var modules []models.CourseModule
	err = db.Where("id IN ? AND is_deleted = ? AND is_active = ?", moduleIDs, false, true).
		Order("item_order asc").
		Find(&modules).Error
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch modules!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Modules for course", modules)
}

// GetSingleModule fetches one non-deleted module.
func GetSingleModule(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid module id!")
	}

	var module models.CourseModule
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", id, false).First(&module).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Module not found")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Module found", module)
}

// UpdateModule updates a module in place.
func UpdateModule(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid module id!")
	}

	reqData := new(courseValidator.ModuleInput)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
	}

	db := database.Database.Db

	var module models.CourseModule
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&module).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Module not found")
	}

	updates := map[string]interface{}{}
	if reqData.Title != "" {
		updates["title"] = reqData.Title
	}
	if reqData.Subtitle != "" {
		updates["subtitle"] = reqData.Subtitle
	}
	if reqData.Content != "" {
		updates["content"] = reqData.Content
	}
	if reqData.Order != 0 {
		updates["item_order"] = reqData.Order
	}

	if err := db.Model(&module).Updates(updates).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update module!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Module updated", module)
}

// DeleteModule soft-deletes a module and cascades to its course mappings.
func DeleteModule(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid module id!")
	}

	db := database.Database.Db

	var module models.CourseModule
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&module).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Module not found")
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&module).Updates(map[string]interface{}{
			"is_deleted": true,
			"is_active":  false,
		}).Error; err != nil {
			return err
		}
		return tx.Model(&models.CourseModuleMapping{}).Where("module_id = ?", id).Updates(map[string]interface{}{
			"is_deleted": true,
			"is_active":  false,
			"valid_to":   time.Now(),
		}).Error
	})
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete module!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Module and mapping soft deleted", module)
}
