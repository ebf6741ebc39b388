package ratingController

import (
	"time"

	"ccrm/database"
	"ccrm/middleware"
	"ccrm/models"
	ratingValidator "ccrm/validators/rating"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateRating records a rating from the logged-in user and maps it to the
// course. A user gets one active rating per course.
func CreateRating(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRating").(*ratingValidator.CreateRatingRequest)
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

	var existing models.RatingMapping
	err := db.Where("course_id = ? AND user_id = ? AND is_deleted = ?", reqData.CourseID, userID, false).
		First(&existing).Error
	if err == nil {
		return middleware.ErrorResponse(c, fiber.StatusConflict, "You have already rated this course")
	}

	rating := models.Rating{
		Rating: reqData.Rating,
		Review: reqData.Review,
	}
	var mapping models.RatingMapping

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&rating).Error; err != nil {
			return err
		}
		mapping = models.RatingMapping{
			CourseID: reqData.CourseID,
			UserID:   userID,
			RatingID: rating.ID,
		}
		return tx.Create(&mapping).Error
	})
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create rating!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, "Rating submitted successfully", fiber.Map{
		"rating":  rating,
		"mapping": mapping,
	})
}

// GetRatingsByCourseId lists the active ratings mapped to a course, each
// joined with the rater's name.
func GetRatingsByCourseId(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid course id!")
	}

	db := database.Database.Db

	var mappings []models.RatingMapping
	db.Where("course_id = ? AND is_deleted = ?", courseID, false).Find(&mappings)
	if len(mappings) == 0 {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "No ratings found for this course")
	}

	result := make([]fiber.Map, 0, len(mappings))
	for _, mapping := range mappings {
		var rating models.Rating
		if err := db.Where("id = ? AND is_deleted = ?", mapping.RatingID, false).First(&rating).Error; err != nil {
			continue
		}

		ratedBy := "Unknown"
		var user models.User
		if err := db.Where("id = ? AND is_deleted = ?", mapping.UserID, false).First(&user).Error; err == nil {
			ratedBy = user.UserName
		}

		result = append(result, fiber.Map{
			"rating":  rating,
			"userId":  mapping.UserID,
			"ratedBy": ratedBy,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Ratings for course", result)
}

// GetRatingsByUser lists the logged-in user's own ratings.
func GetRatingsByUser(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	db := database.Database.Db

	var mappings []models.RatingMapping
	db.Where("user_id = ? AND is_deleted = ?", userID, false).Find(&mappings)
	if len(mappings) == 0 {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "No ratings found")
	}

	ratingIDs := make([]uint, 0, len(mappings))
	for _, mapping := range mappings {
		ratingIDs = append(ratingIDs, mapping.RatingID)
	}

	var ratings []models.Rating
	if err := db.Where("id IN ? AND is_deleted = ?", ratingIDs, false).Find(&ratings).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch ratings!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Your ratings", ratings)
}

// UpdateRating lets the rating's author change score, review or visibility
// flags.
func UpdateRating(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid rating id!")
	}

	reqData, ok := c.Locals("validatedRatingUpdate").(*ratingValidator.UpdateRatingRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	db := database.Database.Db

	var mapping models.RatingMapping
	err = db.Where("rating_id = ? AND user_id = ? AND is_deleted = ?", id, userID, false).First(&mapping).Error
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Rating not found")
	}

	var rating models.Rating
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&rating).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Rating not found")
	}

	updates := map[string]interface{}{}
	if reqData.Rating != 0 {
		updates["rating"] = reqData.Rating
	}
	if reqData.Review != "" {
		updates["review"] = reqData.Review
	}

	if err := db.Model(&rating).Updates(updates).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update rating!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Rating updated", rating)
}

// DeleteRating soft-deletes a rating and its mapping.
func DeleteRating(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid rating id!")
	}

	db := database.Database.Db

	var rating models.Rating
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&rating).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Rating not found")
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&rating).Updates(map[string]interface{}{
			"is_deleted": true,
			"is_active":  false,
		}).Error; err != nil {
			return err
		}
		return tx.Model(&models.RatingMapping{}).Where("rating_id = ?", id).Updates(map[string]interface{}{
			"is_deleted": true,
			"is_active":  false,
			"valid_to":   time.Now(),
		}).Error
	})
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete rating!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Rating deleted", rating)
}
