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

// AssignEnquiry delegates an enquiry to a child admin. An enquiry can hold
// only one active assignment; a second attempt is rejected with 409 and the
// caller must use reassign instead.
func AssignEnquiry(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAssign").(*enquiryValidator.AssignEnquiryRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db

	var enquiry models.CourseEnquiry
	if err := db.Where("id = ? AND is_deleted = ?", reqData.EnquiryID, false).First(&enquiry).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Enquiry not found")
	}

	var childAdmin models.User
	err := db.Where("id = ? AND role = ? AND is_deleted = ?", reqData.ChildAdminID, models.RoleChildAdmin, false).
		First(&childAdmin).Error
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Child admin not found")
	}

	var activeLink models.EnquiryAssignMapping
	err = db.Where("enquiry_id = ? AND is_deleted = ?", reqData.EnquiryID, false).First(&activeLink).Error
	if err == nil {
		return middleware.ErrorResponse(c, fiber.StatusConflict, "Enquiry is already assigned")
	}

	assignedBy := "admin"
	if name, ok := c.Locals("userName").(string); ok && name != "" {
		assignedBy = name
	}

	assign := models.EnquiryAssign{
		Priority:   reqData.Priority,
		AdminNotes: reqData.AdminNotes,
		AssignedBy: assignedBy,
	}
	var link models.EnquiryAssignMapping

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&assign).Error; err != nil {
			return err
		}
		link = models.EnquiryAssignMapping{
			EnquiryID:    reqData.EnquiryID,
			ChildAdminID: reqData.ChildAdminID,
			AssignID:     assign.ID,
		}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
		return tx.Model(&enquiry).Update("status", models.EnquiryInProgress).Error
	})
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to assign enquiry!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, "Enquiry assigned successfully", fiber.Map{
		"assign":  assign,
		"mapping": link,
	})
}

// ReassignEnquiry retires the active assignment and creates a fresh one,
// in a single transaction. The old link keeps its history via ValidTo.
func ReassignEnquiry(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAssign").(*enquiryValidator.AssignEnquiryRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db

	var enquiry models.CourseEnquiry
	if err := db.Where("id = ? AND is_deleted = ?", reqData.EnquiryID, false).First(&enquiry).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Enquiry not found")
	}

	var childAdmin models.User
	err := db.Where("id = ? AND role = ? AND is_deleted = ?", reqData.ChildAdminID, models.RoleChildAdmin, false).
		First(&childAdmin).Error
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Child admin not found")
	}

	var activeLink models.EnquiryAssignMapping
	err = db.Where("enquiry_id = ? AND is_deleted = ?", reqData.EnquiryID, false).First(&activeLink).Error
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Enquiry has no active assignment")
	}

	assignedBy := "admin"
	if name, ok := c.Locals("userName").(string); ok && name != "" {
		assignedBy = name
	}

	assign := models.EnquiryAssign{
		Priority:   reqData.Priority,
		AdminNotes: reqData.AdminNotes,
		AssignedBy: assignedBy,
	}
	var link models.EnquiryAssignMapping

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&activeLink).Updates(map[string]interface{}{
			"is_deleted": true,
			"valid_to":   time.Now(),
		}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.EnquiryAssign{}).Where("id = ?", activeLink.AssignID).
			Update("is_deleted", true).Error; err != nil {
			return err
		}

		if err := tx.Create(&assign).Error; err != nil {
			return err
		}
		link = models.EnquiryAssignMapping{
			EnquiryID:    reqData.EnquiryID,
			ChildAdminID: reqData.ChildAdminID,
			AssignID:     assign.ID,
		}
		return tx.Create(&link).Error
	})
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to reassign enquiry!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Enquiry reassigned successfully", fiber.Map{
		"assign":  assign,
		"mapping": link,
	})
}

// GetAssignedEnquiries lists the logged-in child admin's work queue.
func GetAssignedEnquiries(c *fiber.Ctx) error {
	childAdminID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	return respondAssignedEnquiries(c, childAdminID)
}

// GetAssignedEnquiriesByChildAdminId lets an admin inspect any child
// admin's work queue.
func GetAssignedEnquiriesByChildAdminId(c *fiber.Ctx) error {
	childAdminID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid child admin id!")
	}

	return respondAssignedEnquiries(c, uint(childAdminID))
}

// GetSingleAssignedEnquiry fetches the active assignment view for one
// enquiry.
func GetSingleAssignedEnquiry(c *fiber.Ctx) error {
	enquiryID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid enquiry id!")
	}

	db := database.Database.Db

	var link models.EnquiryAssignMapping
	err = db.Where("enquiry_id = ? AND is_deleted = ?", enquiryID, false).First(&link).Error
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Assignment not found")
	}

	links := []models.EnquiryAssignMapping{link}
	views := buildAssignedEnquiryViews(links, loadAssigns(db, links), loadLinkedEnquiries(db, links), loadEnquiryCourseNames(db, links))
	if len(views) == 0 {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Assignment not found")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Assigned enquiry details", views[0])
}

func respondAssignedEnquiries(c *fiber.Ctx, childAdminID uint) error {
	db := database.Database.Db

	var links []models.EnquiryAssignMapping
	err := db.Where("child_admin_id = ? AND is_deleted = ?", childAdminID, false).
		Order("created_at desc").
		Find(&links).Error
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch assignments!")
	}
	if len(links) == 0 {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "No assigned enquiries found")
	}

	views := buildAssignedEnquiryViews(links, loadAssigns(db, links), loadLinkedEnquiries(db, links), loadEnquiryCourseNames(db, links))
	return middleware.JsonResponse(c, fiber.StatusOK, "Assigned enquiries", views)
}

func loadAssigns(db *gorm.DB, links []models.EnquiryAssignMapping) map[uint]models.EnquiryAssign {
	ids := make([]uint, 0, len(links))
	for _, link := range links {
		ids = append(ids, link.AssignID)
	}

	var assigns []models.EnquiryAssign
	db.Where("id IN ? AND is_deleted = ?", ids, false).Find(&assigns)

	byID := make(map[uint]models.EnquiryAssign, len(assigns))
	for _, assign := range assigns {
		byID[assign.ID] = assign
	}
	return byID
}

func loadLinkedEnquiries(db *gorm.DB, links []models.EnquiryAssignMapping) map[uint]models.CourseEnquiry {
	ids := make([]uint, 0, len(links))
	for _, link := range links {
		ids = append(ids, link.EnquiryID)
	}

	var enquiries []models.CourseEnquiry
	db.Where("id IN ? AND is_deleted = ?", ids, false).Find(&enquiries)

	byID := make(map[uint]models.CourseEnquiry, len(enquiries))
	for _, enquiry := range enquiries {
		byID[enquiry.ID] = enquiry
	}
	return byID
}

// loadEnquiryCourseNames resolves enquiry id to course name through the
// course-enquiry mapping.
func loadEnquiryCourseNames(db *gorm.DB, links []models.EnquiryAssignMapping) map[uint]string {
	ids := make([]uint, 0, len(links))
	for _, link := range links {
		ids = append(ids, link.EnquiryID)
	}

	var mappings []models.CourseEnquiryMapping
	db.Where("enquiry_id IN ? AND is_deleted = ?", ids, false).Find(&mappings)

	names := make(map[uint]string, len(mappings))
	for _, mapping := range mappings {
		var course models.Course
		if err := db.First(&course, mapping.CourseID).Error; err == nil {
			names[mapping.EnquiryID] = course.CourseName
		}
	}
	return names
}
