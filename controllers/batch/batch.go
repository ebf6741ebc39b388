package batchController

import (
	"time"

	"ccrm/database"
	"ccrm/middleware"
	"ccrm/models"
	batchValidator "ccrm/validators/batch"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateBatch creates a batch for an existing course and maps it.
func CreateBatch(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedBatch").(*batchValidator.CreateBatchRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found")
	}

	startDate, err := time.Parse("2006-01-02", reqData.StartDate)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid startDate, expected YYYY-MM-DD")
	}
	endDate, err := time.Parse("2006-01-02", reqData.EndDate)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid endDate, expected YYYY-MM-DD")
	}

	batch := models.Batch{
		CourseID:  reqData.CourseID,
		BatchName: reqData.BatchName,
		BatchNo:   reqData.BatchNo,
		StartDate: startDate,
		EndDate:   endDate,
		StartTime: reqData.StartTime,
		EndTime:   reqData.EndTime,
		Mode:      reqData.Mode,
		Location:  reqData.Location,
		Capacity:  reqData.Capacity,
	}
	var mapping models.BatchCourseMapping

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&batch).Error; err != nil {
			return err
		}
		mapping = models.BatchCourseMapping{
			CourseID: reqData.CourseID,
			BatchID:  batch.ID,
		}
		return tx.Create(&mapping).Error
	})
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create batch!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, "Batch created and mapped successfully", fiber.Map{
		"batch":   batch,
		"mapping": mapping,
	})
}

// GetAllBatches lists all active batches.
func GetAllBatches(c *fiber.Ctx) error {
	var batches []models.Batch
	err := database.Database.Db.
		Where("is_deleted = ? AND is_active = ?", false, true).
		Find(&batches).Error
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch batches!")
	}
	if len(batches) == 0 {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "No active batches found")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Batch list", batches)
}

// GetBatchById fetches one active batch.
func GetBatchById(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid batch id!")
	}

	var batch models.Batch
	err = database.Database.Db.
		Where("id = ? AND is_deleted = ? AND is_active = ?", id, false, true).
		First(&batch).Error
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Batch not found")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Batch details", batch)
}

// GetBatchesByCourseId lists the active batches mapped to a course.
func GetBatchesByCourseId(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid course id!")
	}

	db := database.Database.Db

	var mappings []models.BatchCourseMapping
	db.Where("course_id = ? AND is_deleted = ?", courseID, false).Find(&mappings)
	if len(mappings) == 0 {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "No batches found for this course")
	}

	batchIDs := make([]uint, 0, len(mappings))
	for _, mapping := range mappings {
		batchIDs = append(batchIDs, mapping.BatchID)
	}

	var batches []models.Batch
	err = db.Where("id IN ? AND is_deleted = ? AND is_active = ?", batchIDs, false, true).Find(&batches).Error
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch batches!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "All batches for course", batches)
}

// UpdateBatch updates a batch in place.
func UpdateBatch(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid batch id!")
	}

	reqData := new(batchValidator.CreateBatchRequest)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
	}

	db := database.Database.Db

	var batch models.Batch
	err = db.Where("id = ? AND is_deleted = ? AND is_active = ?", id, false, true).First(&batch).Error
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Batch not found")
	}

	updates := map[string]interface{}{}
	if reqData.BatchName != "" {
		updates["batch_name"] = reqData.BatchName
	}
	if reqData.BatchNo != "" {
		updates["batch_no"] = reqData.BatchNo
	}
	if reqData.StartDate != "" {
		startDate, err := time.Parse("2006-01-02", reqData.StartDate)
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid startDate, expected YYYY-MM-DD")
		}
		updates["start_date"] = startDate
	}
	if reqData.EndDate != "" {
		endDate, err := time.Parse("2006-01-02", reqData.EndDate)
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid endDate, expected YYYY-MM-DD")
		}
		updates["end_date"] = endDate
	}
	if reqData.StartTime != "" {
		updates["start_time"] = reqData.StartTime
	}
	if reqData.EndTime != "" {
		updates["end_time"] = reqData.EndTime
	}
	if reqData.Mode != "" {
		updates["mode"] = reqData.Mode
	}
	if reqData.Location != "" {
		updates["location"] = reqData.Location
	}
	if reqData.Capacity > 0 {
		updates["capacity"] = reqData.Capacity
	}

	if err := db.Model(&batch).Updates(updates).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update batch!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Batch updated", batch)
}

// DeleteBatch soft-deletes a batch and cascades to its course mappings.
func DeleteBatch(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid batch id!")
	}

	db := database.Database.Db

	var batch models.Batch
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&batch).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Batch not found")
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&batch).Updates(map[string]interface{}{
			"is_deleted": true,
			"is_active":  false,
		}).Error; err != nil {
			return err
		}
		return tx.Model(&models.BatchCourseMapping{}).Where("batch_id = ?", id).Updates(map[string]interface{}{
			"is_deleted": true,
			"is_active":  false,
			"valid_to":   time.Now(),
		}).Error
	})
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete batch!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Batch and mapping deleted", batch)
}
