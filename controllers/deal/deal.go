package dealController

import (
	"time"

	"ccrm/database"
	"ccrm/middleware"
	"ccrm/models"
	dealValidator "ccrm/validators/deal"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateRaisedDeal lets a corporate or institute user raise a bulk-pricing
// deal on a course. The deal starts out pending.
func CreateRaisedDeal(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedDeal").(*dealValidator.CreateDealRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found")
	}

	deal := models.RaisedDeal{
		RequestedPrice: reqData.RequestedPrice,
		RequestedSeats: reqData.RequestedSeats,
		Status:         models.DealPending,
	}
	var mapping models.RaisedDealMapping

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&deal).Error; err != nil {
			return err
		}
		mapping = models.RaisedDealMapping{
			CourseID:     reqData.CourseID,
			UserID:       userID,
			RaisedDealID: deal.ID,
		}
		return tx.Create(&mapping).Error
	})
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to raise deal!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, "Deal raised successfully", fiber.Map{
		"deal":    deal,
		"mapping": mapping,
	})
}

// GetAllRaisedDeals lists every non-deleted deal with its course and user,
// for the admin review queue.
func GetAllRaisedDeals(c *fiber.Ctx) error {
	db := database.Database.Db

	var mappings []models.RaisedDealMapping
	err := db.Where("is_deleted = ?", false).Order("created_at desc").Find(&mappings).Error
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch deals!")
	}
	if len(mappings) == 0 {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "No deals found")
	}

	result := make([]fiber.Map, 0, len(mappings))
	for _, mapping := range mappings {
		var deal models.RaisedDeal
		if err := db.Where("id = ? AND is_deleted = ?", mapping.RaisedDealID, false).First(&deal).Error; err != nil {
			continue
		}

		courseName := "Unknown"
		var course models.Course
		if err := db.First(&course, mapping.CourseID).Error; err == nil {
			courseName = course.CourseName
		}

		raisedBy := "Unknown"
		var user models.User
		if err := db.First(&user, mapping.UserID).Error; err == nil {
			raisedBy = user.UserName
		}

		result = append(result, fiber.Map{
			"deal":       deal,
			"courseId":   mapping.CourseID,
			"courseName": courseName,
			"userId":     mapping.UserID,
			"raisedBy":   raisedBy,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "All raised deals", result)
}

// GetRaisedDealsByUser lists the logged-in user's own deals.
func GetRaisedDealsByUser(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	db := database.Database.Db

	var mappings []models.RaisedDealMapping
	db.Where("user_id = ? AND is_deleted = ?", userID, false).Order("created_at desc").Find(&mappings)
	if len(mappings) == 0 {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "No deals found")
	}

	dealIDs := make([]uint, 0, len(mappings))
	for _, mapping := range mappings {
		dealIDs = append(dealIDs, mapping.RaisedDealID)
	}

	var deals []models.RaisedDeal
	if err := db.Where("id IN ? AND is_deleted = ?", dealIDs, false).Find(&deals).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch deals!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Your raised deals", deals)
}

// GetSingleRaisedDeal fetches one non-deleted deal joined with the course
// and the user who raised it.
func GetSingleRaisedDeal(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid deal id!")
	}

	db := database.Database.Db

	var deal models.RaisedDeal
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&deal).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Deal not found")
	}

	courseName := "Unknown"
	raisedBy := "Unknown"
	var courseID, userID uint
	var mapping models.RaisedDealMapping
	if err := db.Where("raised_deal_id = ? AND is_deleted = ?", id, false).First(&mapping).Error; err == nil {
		courseID = mapping.CourseID
		userID = mapping.UserID
		var course models.Course
		if err := db.First(&course, mapping.CourseID).Error; err == nil {
			courseName = course.CourseName
		}
		var user models.User
		if err := db.First(&user, mapping.UserID).Error; err == nil {
			raisedBy = user.UserName
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Deal details", fiber.Map{
		"deal":       deal,
		"courseId":   courseID,
		"courseName": courseName,
		"userId":     userID,
		"raisedBy":   raisedBy,
	})
}

// UpdateDealStatus lets an admin approve or reject a pending deal.
func UpdateDealStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid deal id!")
	}

	reqData, ok := c.Locals("validatedDealStatus").(*dealValidator.UpdateDealStatusRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db

	var deal models.RaisedDeal
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&deal).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Deal not found")
	}

	updates := map[string]interface{}{"status": reqData.Status}
	if reqData.AdminRemarks != "" {
		updates["admin_remarks"] = reqData.AdminRemarks
	}

	if err := db.Model(&deal).Updates(updates).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update deal status!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Deal status updated", deal)
}

// DeleteRaisedDeal soft-deletes a deal and its mapping.
func DeleteRaisedDeal(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid deal id!")
	}

	db := database.Database.Db

	var deal models.RaisedDeal
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&deal).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Deal not found")
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&deal).Update("is_deleted", true).Error; err != nil {
			return err
		}
		return tx.Model(&models.RaisedDealMapping{}).Where("raised_deal_id = ?", id).Updates(map[string]interface{}{
			"is_deleted": true,
			"is_active":  false,
			"valid_to":   time.Now(),
		}).Error
	})
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete deal!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Deal deleted", deal)
}
