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

// CreateCourse creates a course plus its inline modules, price and special
// price, mapping each of them, inside a single transaction.
func CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db

	var existing models.Course
	if err := db.Where("course_name = ? AND is_deleted = ?", reqData.CourseName, false).First(&existing).Error; err == nil {
		return middleware.ErrorResponse(c, fiber.StatusConflict, "Course already exists")
	}

	createdBy := reqData.CreatedBy
	if createdBy == "" {
		createdBy = "admin"
	}
	category := reqData.Category
	if category == "" {
		category = "free courses"
	}

	course := models.Course{
		CourseName:      reqData.CourseName,
		Description:     reqData.Description,
		CourseThumbnail: reqData.CourseThumbnail,
		VideoUrl:        reqData.VideoUrl,
		PdfUrl:          reqData.PdfUrl,
		Duration:        reqData.Duration,
		Language:        reqData.Language,
		Category:        category,
		CreatedBy:       createdBy,
		IsFree:          reqData.IsFree != nil && *reqData.IsFree,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&course).Error; err != nil {
			return err
		}

		for _, m := range reqData.Modules {
			module := models.CourseModule{
				Title:    m.Title,
				Subtitle: m.Subtitle,
				Content:  m.Content,
				Order:    m.Order,
			}
			if err := tx.Create(&module).Error; err != nil {
				return err
			}
			if err := tx.Create(&models.CourseModuleMapping{
				CourseID: course.ID,
				ModuleID: module.ID,
			}).Error; err != nil {
				return err
			}
		}

		price := models.Price{Price: reqData.Price}
		if err := tx.Create(&price).Error; err != nil {
			return err
		}
		if err := tx.Create(&models.CoursePriceMapping{
			CourseID: course.ID,
			PriceID:  price.ID,
		}).Error; err != nil {
			return err
		}

		if reqData.SpecialPrice > 0 {
			sp := models.SpecialPrice{SpecialPrice: reqData.SpecialPrice}
			if err := tx.Create(&sp).Error; err != nil {
				return err
			}
			if err := tx.Create(&models.SpecialPriceMapping{
				CourseID:       course.ID,
				SpecialPriceID: sp.ID,
			}).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create course!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, "Course created successfully", course)
}

// GetAllCourses lists all active, non-deleted courses.
func GetAllCourses(c *fiber.Ctx) error {
	var courses []models.Course
	err := database.Database.Db.
		Where("is_deleted = ? AND is_active = ?", false, true).
		Order("created_at desc").
		Find(&courses).Error
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch courses!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Course list", courses)
}

// GetSingleCourseById fetches a course and resolves its modules, price and
// special price through the mapping tables.
func GetSingleCourseById(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid course id!")
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found")
	}

	var moduleMappings []models.CourseModuleMapping
	db.Where("course_id = ? AND is_deleted = ?", id, false).Find(&moduleMappings)

	modules := make([]models.CourseModule, 0, len(moduleMappings))
	for _, mapping := range moduleMappings {
		var module models.CourseModule
		if err := db.Where("id = ? AND is_deleted = ?", mapping.ModuleID, false).First(&module).Error; err == nil {
			modules = append(modules, module)
		}
	}

	var price *models.Price
	var priceMapping models.CoursePriceMapping
	if err := db.Where("course_id = ? AND is_deleted = ?", id, false).First(&priceMapping).Error; err == nil {
		var p models.Price
		if err := db.First(&p, priceMapping.PriceID).Error; err == nil {
			price = &p
		}
	}

	var specialPrice *models.SpecialPrice
	var specialMapping models.SpecialPriceMapping
	if err := db.Where("course_id = ? AND is_deleted = ?", id, false).First(&specialMapping).Error; err == nil {
		var sp models.SpecialPrice
		if err := db.First(&sp, specialMapping.SpecialPriceID).Error; err == nil {
			specialPrice = &sp
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Course details", fiber.Map{
		"course":       course,
		"modules":      modules,
		"price":        price,
		"specialPrice": specialPrice,
	})
}

// UpdateCourse updates the course row and, when provided, its mapped price,
// special price and modules (existing modules updated, new ones mapped in).
func UpdateCourse(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid course id!")
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*courseValidator.UpdateCourseRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found")
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{}
		if reqData.CourseName != "" {
			updates["course_name"] = reqData.CourseName
		}
		if reqData.Description != "" {
			updates["description"] = reqData.Description
		}
		if reqData.VideoUrl != "" {
			updates["video_url"] = reqData.VideoUrl
		}
		if reqData.PdfUrl != "" {
			updates["pdf_url"] = reqData.PdfUrl
		}
		if reqData.Duration != "" {
			updates["duration"] = reqData.Duration
		}
		if reqData.Language != "" {
			updates["language"] = reqData.Language
		}
		if reqData.Category != "" {
			updates["category"] = reqData.Category
		}
		if reqData.IsFree != nil {
			updates["is_free"] = *reqData.IsFree
		}
		if len(updates) > 0 {
			if err := tx.Model(&course).Updates(updates).Error; err != nil {
				return err
			}
		}

		if reqData.Price > 0 {
			var priceMapping models.CoursePriceMapping
			if err := tx.Where("course_id = ? AND is_deleted = ?", id, false).First(&priceMapping).Error; err == nil {
				if err := tx.Model(&models.Price{}).Where("id = ?", priceMapping.PriceID).
					Update("price", reqData.Price).Error; err != nil {
					return err
				}
			}
		}

		if reqData.SpecialPrice > 0 {
			var specialMapping models.SpecialPriceMapping
			if err := tx.Where("course_id = ? AND is_deleted = ?", id, false).First(&specialMapping).Error; err == nil {
				if err := tx.Model(&models.SpecialPrice{}).Where("id = ?", specialMapping.SpecialPriceID).
					Update("special_price", reqData.SpecialPrice).Error; err != nil {
					return err
				}
			}
		}

		for _, m := range reqData.Modules {
			if m.ID != 0 {
				if err := tx.Model(&models.CourseModule{}).Where("id = ?", m.ID).Updates(map[string]interface{}{
					"title":      m.Title,
					"subtitle":   m.Subtitle,
					"content":    m.Content,
					"item_order": m.Order,
				}).Error; err != nil {
					return err
				}
				continue
			}

			module := models.CourseModule{
				Title:    m.Title,
				Subtitle: m.Subtitle,
				Content:  m.Content,
				Order:    m.Order,
			}
			if err := tx.Create(&module).Error; err != nil {
				return err
			}
			if err := tx.Create(&models.CourseModuleMapping{
				CourseID: course.ID,
				ModuleID: module.ID,
			}).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update course!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Course updated", course)
}

// DeleteCourse soft-deletes the course and cascades soft-delete plus
// ValidTo stamps to module, price and special-price mappings and their
// leaf records, all in one transaction.
func DeleteCourse(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid course id!")
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found")
	}

	currentDate := time.Now()

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&course).Updates(map[string]interface{}{
			"is_deleted": true,
			"is_active":  false,
		}).Error; err != nil {
			return err
		}

		var moduleMappings []models.CourseModuleMapping
		tx.Where("course_id = ? AND is_deleted = ?", id, false).Find(&moduleMappings)
		if err := tx.Model(&models.CourseModuleMapping{}).Where("course_id = ?", id).Updates(map[string]interface{}{
			"is_deleted": true,
			"is_active":  false,
			"valid_to":   currentDate,
		}).Error; err != nil {
			return err
		}
		for _, mapping := range moduleMappings {
			if err := tx.Model(&models.CourseModule{}).Where("id = ?", mapping.ModuleID).Updates(map[string]interface{}{
				"is_deleted": true,
				"is_active":  false,
			}).Error; err != nil {
				return err
			}
		}

		var priceMappings []models.CoursePriceMapping
		tx.Where("course_id = ? AND is_deleted = ?", id, false).Find(&priceMappings)
		if err := tx.Model(&models.CoursePriceMapping{}).Where("course_id = ?", id).Updates(map[string]interface{}{
			"is_deleted": true,
			"is_active":  false,
			"valid_to":   currentDate,
		}).Error; err != nil {
			return err
		}
		for _, mapping := range priceMappings {
			if err := tx.Model(&models.Price{}).Where("id = ?", mapping.PriceID).Updates(map[string]interface{}{
				"is_deleted": true,
				"is_active":  false,
			}).Error; err != nil {
				return err
			}
		}

		var specialMappings []models.SpecialPriceMapping
		tx.Where("course_id = ? AND is_deleted = ?", id, false).Find(&specialMappings)
		if err := tx.Model(&models.SpecialPriceMapping{}).Where("course_id = ?", id).Updates(map[string]interface{}{
			"is_deleted": true,
			"is_active":  false,
			"valid_to":   currentDate,
		}).Error; err != nil {
			return err
		}
		for _, mapping := range specialMappings {
			if err := tx.Model(&models.SpecialPrice{}).Where("id = ?", mapping.SpecialPriceID).Updates(map[string]interface{}{
				"is_deleted": true,
				"is_active":  false,
			}).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete course!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Course and related data soft-deleted", course)
}
