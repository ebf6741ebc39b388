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

// CreateCourseEnquiry records a course enquiry from the logged-in user and
// maps it to the course. New enquiries always start pending.
func CreateCourseEnquiry(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedEnquiry").(*enquiryValidator.CreateEnquiryRequest)
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

	enquiry := models.CourseEnquiry{
		Name:    reqData.Name,
		Email:   reqData.Email,
		Phone:   reqData.Phone,
		Message: reqData.Message,
		Status:  models.EnquiryPending,
	}
	var mapping models.CourseEnquiryMapping

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&enquiry).Error; err != nil {
			return err
		}
		mapping = models.CourseEnquiryMapping{
			CourseID:  reqData.CourseID,
			UserID:    userID,
			EnquiryID: enquiry.ID,
		}
		return tx.Create(&mapping).Error
	})
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create enquiry!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, "Enquiry submitted successfully", fiber.Map{
		"enquiry": enquiry,
		"mapping": mapping,
	})
}

// GetAllCourseEnquiries lists every non-deleted enquiry with its course
// name, newest first.
func GetAllCourseEnquiries(c *fiber.Ctx) error {
	db := database.Database.Db

	var mappings []models.CourseEnquiryMapping
	err := db.Where("is_deleted = ?", false).Order("created_at desc").Find(&mappings).Error
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch enquiries!")
	}
	if len(mappings) == 0 {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "No enquiries found")
	}

	items := buildEnquiryListItems(mappings, loadEnquiries(db, mappings), loadCourses(db, mappings))
	return middleware.JsonResponse(c, fiber.StatusOK, "All course enquiries", items)
}

// GetSingleCourseEnquiry fetches one non-deleted enquiry with its course.
func GetSingleCourseEnquiry(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid enquiry id!")
	}

	db := database.Database.Db

	var enquiry models.CourseEnquiry
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&enquiry).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Enquiry not found")
	}

	courseName := "Unknown"
	var courseID uint
	var mapping models.CourseEnquiryMapping
	if err := db.Where("enquiry_id = ? AND is_deleted = ?", id, false).First(&mapping).Error; err == nil {
		courseID = mapping.CourseID
		var course models.Course
		if err := db.First(&course, mapping.CourseID).Error; err == nil {
			courseName = course.CourseName
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Enquiry details", fiber.Map{
		"enquiry":    enquiry,
		"courseId":   courseID,
		"courseName": courseName,
	})
}

// GetCourseEnquiriesByUser lists the logged-in user's own enquiries.
func GetCourseEnquiriesByUser(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	db := database.Database.Db

	var mappings []models.CourseEnquiryMapping
	db.Where("user_id = ? AND is_deleted = ?", userID, false).Order("created_at desc").Find(&mappings)
	if len(mappings) == 0 {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "No enquiries found")
	}

	items := buildEnquiryListItems(mappings, loadEnquiries(db, mappings), loadCourses(db, mappings))
	return middleware.JsonResponse(c, fiber.StatusOK, "Your enquiries", items)
}

// GetCourseEnquiriesByCourse lists the enquiries raised against a course.
func GetCourseEnquiriesByCourse(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid course id!")
	}

	db := database.Database.Db

	var mappings []models.CourseEnquiryMapping
	db.Where("course_id = ? AND is_deleted = ?", courseID, false).Order("created_at desc").Find(&mappings)
	if len(mappings) == 0 {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "No enquiries found for this course")
	}

	items := buildEnquiryListItems(mappings, loadEnquiries(db, mappings), loadCourses(db, mappings))
	return middleware.JsonResponse(c, fiber.StatusOK, "Enquiries for course", items)
}

// UpdateCourseEnquiryStatus moves an enquiry through its pipeline. An
// invalid status is rejected by the validator before reaching here.
func UpdateCourseEnquiryStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid enquiry id!")
	}

	reqData, ok := c.Locals("validatedStatus").(*enquiryValidator.UpdateStatusRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db

	var enquiry models.CourseEnquiry
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&enquiry).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Enquiry not found")
	}

	updates := map[string]interface{}{"status": reqData.Status}
	if reqData.ClosureMessage != "" {
		updates["closure_message"] = reqData.ClosureMessage
	}

	if err := db.Model(&enquiry).Updates(updates).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update enquiry status!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Enquiry status updated", enquiry)
}

// DeleteCourseEnquiry soft-deletes an enquiry and cascades to its course
// mapping, assignments and follow-ups in one transaction.
func DeleteCourseEnquiry(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid enquiry id!")
	}

	db := database.Database.Db

	var enquiry models.CourseEnquiry
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&enquiry).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Enquiry not found")
	}

	currentDate := time.Now()

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&enquiry).Update("is_deleted", true).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.CourseEnquiryMapping{}).Where("enquiry_id = ?", id).Updates(map[string]interface{}{
			"is_deleted": true,
			"valid_to":   currentDate,
		}).Error; err != nil {
			return err
		}

		var assignLinks []models.EnquiryAssignMapping
		tx.Where("enquiry_id = ? AND is_deleted = ?", id, false).Find(&assignLinks)
		if err := tx.Model(&models.EnquiryAssignMapping{}).Where("enquiry_id = ?", id).Updates(map[string]interface{}{
			"is_deleted": true,
			"valid_to":   currentDate,
		}).Error; err != nil {
			return err
		}
		for _, link := range assignLinks {
			if err := tx.Model(&models.EnquiryAssign{}).Where("id = ?", link.AssignID).
				Update("is_deleted", true).Error; err != nil {
				return err
			}
		}

		var followUpLinks []models.FollowUpMapping
		tx.Where("enquiry_id = ? AND is_deleted = ?", id, false).Find(&followUpLinks)
		if err := tx.Model(&models.FollowUpMapping{}).Where("enquiry_id = ?", id).
			Update("is_deleted", true).Error; err != nil {
			return err
		}
		for _, link := range followUpLinks {
			if err := tx.Model(&models.FollowUp{}).Where("id = ?", link.FollowUpID).
				Update("is_deleted", true).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete enquiry!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Enquiry and related data deleted", enquiry)
}

func loadEnquiries(db *gorm.DB, mappings []models.CourseEnquiryMapping) map[uint]models.CourseEnquiry {
	ids := make([]uint, 0, len(mappings))
	for _, mapping := range mappings {
		ids = append(ids, mapping.EnquiryID)
	}

	var enquiries []models.CourseEnquiry
	db.Where("id IN ? AND is_deleted = ?", ids, false).Find(&enquiries)

	byID := make(map[uint]models.CourseEnquiry, len(enquiries))
	for _, enquiry := range enquiries {
		byID[enquiry.ID] = enquiry
	}
	return byID
}

func loadCourses(db *gorm.DB, mappings []models.CourseEnquiryMapping) map[uint]models.Course {
	ids := make([]uint, 0, len(mappings))
	for _, mapping := range mappings {
		ids = append(ids, mapping.CourseID)
	}

	var courses []models.Course
	db.Where("id IN ?", ids).Find(&courses)

	byID := make(map[uint]models.Course, len(courses))
	for _, course := range courses {
		byID[course.ID] = course
	}
	return byID
}
