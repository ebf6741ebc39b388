package enquiryController

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"ccrm/config"
	"ccrm/database"
	"ccrm/middleware"
	"ccrm/models"
	enquiryValidator "ccrm/validators/enquiry"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupEnquiryTest(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.LoadConfig()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()

	app.Post("/api/v1/course-enquiry/create", middleware.JWTMiddleware, middleware.CheckPermission(models.CapEnquiryCreate), enquiryValidator.CreateCourseEnquiry(), CreateCourseEnquiry)
	app.Get("/api/v1/course-enquiry/list", middleware.JWTMiddleware, middleware.CheckPermission(models.CapEnquiryRead), GetAllCourseEnquiries)
	app.Put("/api/v1/course-enquiry/status/:id", middleware.JWTMiddleware, middleware.CheckPermission(models.CapEnquiryManage), enquiryValidator.UpdateEnquiryStatus(), UpdateCourseEnquiryStatus)
	app.Delete("/api/v1/course-enquiry/:id", middleware.JWTMiddleware, middleware.CheckPermission(models.CapEnquiryManage), DeleteCourseEnquiry)

	app.Post("/api/v1/enquiry-assign/assign", middleware.JWTMiddleware, middleware.CheckPermission(models.CapEnquiryAssign), enquiryValidator.AssignEnquiry(), AssignEnquiry)
	app.Post("/api/v1/enquiry-assign/reassign", middleware.JWTMiddleware, middleware.CheckPermission(models.CapEnquiryAssign), enquiryValidator.AssignEnquiry(), ReassignEnquiry)
	app.Get("/api/v1/enquiry-assign/mine", middleware.JWTMiddleware, middleware.CheckPermission(models.CapEnquiryRead), GetAssignedEnquiries)

	app.Post("/api/v1/follow-up/create", middleware.JWTMiddleware, middleware.CheckPermission(models.CapEnquiryFollowUp), enquiryValidator.CreateFollowUp(), CreateFollowUp)
	app.Get("/api/v1/follow-up/by-enquiry/:id", middleware.JWTMiddleware, middleware.CheckPermission(models.CapEnquiryRead), GetFollowUpsByEnquiry)

	return app, db
}

func createTestUser(t *testing.T, db *gorm.DB, role, email string) (models.User, string) {
	t.Helper()

	user := models.User{
		UserName: "Test " + role,
		Email:    email,
		Phone:    "9876543210",
		Password: "not-a-real-hash",
		Role:     role,
	}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, middleware.SeedPermissions(db, role, user.ID))

	token, err := middleware.GenerateJWT(user.ID, user.Role, user.UserName)
	require.NoError(t, err)

	return user, token
}

func createTestCourse(t *testing.T, db *gorm.DB) models.Course {
	t.Helper()

	course := models.Course{
		CourseName:  "Go Fundamentals",
		Description: "Intro course",
		VideoUrl:    "https://example.com/v",
		Duration:    "6 weeks",
		Language:    "English",
	}
	require.NoError(t, db.Create(&course).Error)
	return course
}

func doRequest(t *testing.T, app *fiber.App, method, url, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}

	return resp, decoded
}

func seedEnquiry(t *testing.T, db *gorm.DB, courseID, userID uint) models.CourseEnquiry {
	t.Helper()

	enquiry := models.CourseEnquiry{
		Name:    "Asha",
		Email:   "asha@example.com",
		Phone:   "9812345678",
		Message: "Interested in the evening batch",
		Status:  models.EnquiryPending,
	}
	require.NoError(t, db.Create(&enquiry).Error)
	require.NoError(t, db.Create(&models.CourseEnquiryMapping{
		CourseID:  courseID,
		UserID:    userID,
		EnquiryID: enquiry.ID,
	}).Error)
	return enquiry
}

func TestCreateCourseEnquiry(t *testing.T) {
	app, db := setupEnquiryTest(t)
	course := createTestCourse(t, db)
	student, token := createTestUser(t, db, models.RoleStudent, "student@example.com")

	resp, _ := doRequest(t, app, "POST", "/api/v1/course-enquiry/create", token, fiber.Map{
		"name":     "Asha",
		"email":    "asha@example.com",
		"phone":    "9812345678",
		"message":  "Interested in the evening batch",
		"courseId": course.ID,
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var enquiry models.CourseEnquiry
	require.NoError(t, db.First(&enquiry).Error)
	assert.Equal(t, models.EnquiryPending, enquiry.Status)

	var mappingCount int64
	db.Model(&models.CourseEnquiryMapping{}).
		Where("enquiry_id = ? AND course_id = ? AND user_id = ?", enquiry.ID, course.ID, student.ID).
		Count(&mappingCount)
	assert.Equal(t, int64(1), mappingCount)
}

func TestCreateCourseEnquiryUnknownCourse(t *testing.T) {
	app, db := setupEnquiryTest(t)
	_, token := createTestUser(t, db, models.RoleStudent, "student@example.com")

	resp, _ := doRequest(t, app, "POST", "/api/v1/course-enquiry/create", token, fiber.Map{
		"name":     "Asha",
		"email":    "asha@example.com",
		"message":  "Hello",
		"courseId": 999,
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var count int64
	db.Model(&models.CourseEnquiry{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestUpdateEnquiryStatus(t *testing.T) {
	app, db := setupEnquiryTest(t)
	course := createTestCourse(t, db)
	admin, token := createTestUser(t, db, models.RoleAdmin, "admin@example.com")
	enquiry := seedEnquiry(t, db, course.ID, admin.ID)

	resp, _ := doRequest(t, app, "PUT", fmt.Sprintf("/api/v1/course-enquiry/status/%d", enquiry.ID), token, fiber.Map{
		"status":         models.EnquiryClosedAndWon,
		"closureMessage": "Enrolled in March batch",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated models.CourseEnquiry
	require.NoError(t, db.First(&updated, enquiry.ID).Error)
	assert.Equal(t, models.EnquiryClosedAndWon, updated.Status)
	assert.Equal(t, "Enrolled in March batch", updated.ClosureMessage)
}

func TestUpdateEnquiryStatusRejectsUnknownValue(t *testing.T) {
	app, db := setupEnquiryTest(t)
	course := createTestCourse(t, db)
	admin, token := createTestUser(t, db, models.RoleAdmin, "admin@example.com")
	enquiry := seedEnquiry(t, db, course.ID, admin.ID)

	resp, _ := doRequest(t, app, "PUT", fmt.Sprintf("/api/v1/course-enquiry/status/%d", enquiry.ID), token, fiber.Map{
		"status": "done",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var unchanged models.CourseEnquiry
	require.NoError(t, db.First(&unchanged, enquiry.ID).Error)
	assert.Equal(t, models.EnquiryPending, unchanged.Status)
}

func TestDeleteCourseEnquiryCascades(t *testing.T) {
	app, db := setupEnquiryTest(t)
	course := createTestCourse(t, db)
	admin, token := createTestUser(t, db, models.RoleAdmin, "admin@example.com")
	childAdmin, _ := createTestUser(t, db, models.RoleChildAdmin, "child@example.com")
	enquiry := seedEnquiry(t, db, course.ID, admin.ID)

	assign := models.EnquiryAssign{Priority: models.PriorityHigh, AssignedBy: admin.UserName}
	require.NoError(t, db.Create(&assign).Error)
	require.NoError(t, db.Create(&models.EnquiryAssignMapping{
		EnquiryID:    enquiry.ID,
		ChildAdminID: childAdmin.ID,
		AssignID:     assign.ID,
	}).Error)

	followUp := models.FollowUp{Mode: models.ModeCall, Message: "Called, no answer"}
	require.NoError(t, db.Create(&followUp).Error)
	require.NoError(t, db.Create(&models.FollowUpMapping{
		FollowUpID:   followUp.ID,
		EnquiryID:    enquiry.ID,
		ChildAdminID: childAdmin.ID,
	}).Error)

	resp, _ := doRequest(t, app, "DELETE", fmt.Sprintf("/api/v1/course-enquiry/%d", enquiry.ID), token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var deletedEnquiry models.CourseEnquiry
	require.NoError(t, db.First(&deletedEnquiry, enquiry.ID).Error)
	assert.True(t, deletedEnquiry.IsDeleted)

	var mapping models.CourseEnquiryMapping
	require.NoError(t, db.Where("enquiry_id = ?", enquiry.ID).First(&mapping).Error)
	assert.True(t, mapping.IsDeleted)
	assert.NotNil(t, mapping.ValidTo)

	var assignLink models.EnquiryAssignMapping
	require.NoError(t, db.Where("enquiry_id = ?", enquiry.ID).First(&assignLink).Error)
	assert.True(t, assignLink.IsDeleted)

	var deletedAssign models.EnquiryAssign
	require.NoError(t, db.First(&deletedAssign, assign.ID).Error)
	assert.True(t, deletedAssign.IsDeleted)

	var deletedFollowUp models.FollowUp
	require.NoError(t, db.First(&deletedFollowUp, followUp.ID).Error)
	assert.True(t, deletedFollowUp.IsDeleted)

	// A second delete finds nothing.
	resp, _ = doRequest(t, app, "DELETE", fmt.Sprintf("/api/v1/course-enquiry/%d", enquiry.ID), token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestAssignEnquiry(t *testing.T) {
	app, db := setupEnquiryTest(t)
	course := createTestCourse(t, db)
	admin, adminToken := createTestUser(t, db, models.RoleAdmin, "admin@example.com")
	childAdmin, childToken := createTestUser(t, db, models.RoleChildAdmin, "child@example.com")
	enquiry := seedEnquiry(t, db, course.ID, admin.ID)

	resp, _ := doRequest(t, app, "POST", "/api/v1/enquiry-assign/assign", adminToken, fiber.Map{
		"enquiryId":    enquiry.ID,
		"childAdminId": childAdmin.ID,
		"priority":     models.PriorityHigh,
		"adminNotes":   "Hot lead",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var updated models.CourseEnquiry
	require.NoError(t, db.First(&updated, enquiry.ID).Error)
	assert.Equal(t, models.EnquiryInProgress, updated.Status)

	// One active assignment per enquiry.
	resp, _ = doRequest(t, app, "POST", "/api/v1/enquiry-assign/assign", adminToken, fiber.Map{
		"enquiryId":    enquiry.ID,
		"childAdminId": childAdmin.ID,
		"priority":     models.PriorityLow,
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp, body := doRequest(t, app, "GET", "/api/v1/enquiry-assign/mine", childToken, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	views, ok := body["data"].([]interface{})
	require.True(t, ok)
	require.Len(t, views, 1)
	view := views[0].(map[string]interface{})
	assert.Equal(t, "Asha", view["name"])
	assert.Equal(t, "Go Fundamentals", view["courseName"])
	assert.Equal(t, models.PriorityHigh, view["priority"])
}

func TestReassignEnquiry(t *testing.T) {
	app, db := setupEnquiryTest(t)
	course := createTestCourse(t, db)
	admin, adminToken := createTestUser(t, db, models.RoleAdmin, "admin@example.com")
	firstChild, _ := createTestUser(t, db, models.RoleChildAdmin, "child1@example.com")
	secondChild, _ := createTestUser(t, db, models.RoleChildAdmin, "child2@example.com")
	enquiry := seedEnquiry(t, db, course.ID, admin.ID)

	// Reassign before any assignment exists.
	resp, _ := doRequest(t, app, "POST", "/api/v1/enquiry-assign/reassign", adminToken, fiber.Map{
		"enquiryId":    enquiry.ID,
		"childAdminId": firstChild.ID,
		"priority":     models.PriorityMedium,
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, _ = doRequest(t, app, "POST", "/api/v1/enquiry-assign/assign", adminToken, fiber.Map{
		"enquiryId":    enquiry.ID,
		"childAdminId": firstChild.ID,
		"priority":     models.PriorityMedium,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, _ = doRequest(t, app, "POST", "/api/v1/enquiry-assign/reassign", adminToken, fiber.Map{
		"enquiryId":    enquiry.ID,
		"childAdminId": secondChild.ID,
		"priority":     models.PriorityHigh,
		"adminNotes":   "Escalated",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var activeLinks []models.EnquiryAssignMapping
	db.Where("enquiry_id = ? AND is_deleted = ?", enquiry.ID, false).Find(&activeLinks)
	require.Len(t, activeLinks, 1)
	assert.Equal(t, secondChild.ID, activeLinks[0].ChildAdminID)

	var retired models.EnquiryAssignMapping
	require.NoError(t, db.Where("enquiry_id = ? AND is_deleted = ?", enquiry.ID, true).First(&retired).Error)
	assert.Equal(t, firstChild.ID, retired.ChildAdminID)
	assert.NotNil(t, retired.ValidTo)
}

func TestFollowUpRoundTrip(t *testing.T) {
	app, db := setupEnquiryTest(t)
	course := createTestCourse(t, db)
	admin, _ := createTestUser(t, db, models.RoleAdmin, "admin@example.com")
	childAdmin, childToken := createTestUser(t, db, models.RoleChildAdmin, "child@example.com")
	_, otherToken := createTestUser(t, db, models.RoleChildAdmin, "other@example.com")
	enquiry := seedEnquiry(t, db, course.ID, admin.ID)

	assign := models.EnquiryAssign{Priority: models.PriorityMedium, AssignedBy: admin.UserName}
	require.NoError(t, db.Create(&assign).Error)
	require.NoError(t, db.Create(&models.EnquiryAssignMapping{
		EnquiryID:    enquiry.ID,
		ChildAdminID: childAdmin.ID,
		AssignID:     assign.ID,
	}).Error)

	resp, _ := doRequest(t, app, "POST", "/api/v1/follow-up/create", childToken, fiber.Map{
		"enquiryId":        enquiry.ID,
		"mode":             models.ModeCall,
		"message":          "Discussed pricing, call back Friday",
		"nextFollowUpDate": "2026-09-04",
		"nextFollowUpTime": "15:30",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Only the assigned child admin can log follow-ups.
	resp, _ = doRequest(t, app, "POST", "/api/v1/follow-up/create", otherToken, fiber.Map{
		"enquiryId":        enquiry.ID,
		"mode":             models.ModeCall,
		"message":          "Trying to poach",
		"nextFollowUpDate": "2026-09-04",
		"nextFollowUpTime": "16:00",
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, body := doRequest(t, app, "GET", fmt.Sprintf("/api/v1/follow-up/by-enquiry/%d", enquiry.ID), childToken, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	followUps, ok := body["data"].([]interface{})
	require.True(t, ok)
	require.Len(t, followUps, 1)
	first := followUps[0].(map[string]interface{})
	assert.Equal(t, models.ModeCall, first["mode"])
	assert.Equal(t, "15:30", first["nextFollowUpTime"])
	assert.Equal(t, false, first["reminderSent"])
}

func TestPermissionGate(t *testing.T) {
	app, db := setupEnquiryTest(t)
	course := createTestCourse(t, db)
	admin, _ := createTestUser(t, db, models.RoleAdmin, "admin@example.com")
	_, studentToken := createTestUser(t, db, models.RoleStudent, "student@example.com")
	enquiry := seedEnquiry(t, db, course.ID, admin.ID)

	// Students cannot read the full enquiry queue or manage statuses.
	resp, _ := doRequest(t, app, "GET", "/api/v1/course-enquiry/list", studentToken, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, _ = doRequest(t, app, "PUT", fmt.Sprintf("/api/v1/course-enquiry/status/%d", enquiry.ID), studentToken, fiber.Map{
		"status": models.EnquiryInProgress,
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
