package enquiryValidator

import (
	"regexp"
	"strings"

	"ccrm/middleware"
	"ccrm/models"

	"github.com/gofiber/fiber/v2"
)

func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)
	return re.MatchString(email)
}

type CreateEnquiryRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Message  string `json:"message"`
	CourseID uint   `json:"courseId"`
}

// CreateCourseEnquiry validator middleware
func CreateCourseEnquiry() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateEnquiryRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}
		if reqData.Email == "" || !isValidEmail(reqData.Email) {
			errors["email"] = "Invalid email format!"
		}
		if strings.TrimSpace(reqData.Message) == "" {
			errors["message"] = "Message is required!"
		}
		if reqData.CourseID == 0 {
			errors["courseId"] = "courseId is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEnquiry", reqData)
		return c.Next()
	}
}

type UpdateStatusRequest struct {
	Status         string `json:"status"`
	ClosureMessage string `json:"closureMessage"`
}

// UpdateEnquiryStatus validator middleware
func UpdateEnquiryStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateStatusRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		if !models.ValidEnquiryStatus(reqData.Status) {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid status value")
		}

		c.Locals("validatedStatus", reqData)
		return c.Next()
	}
}

type AssignEnquiryRequest struct {
	EnquiryID    uint   `json:"enquiryId"`
	ChildAdminID uint   `json:"childAdminId"`
	Priority     string `json:"priority"`
	AdminNotes   string `json:"adminNotes"`
}

// AssignEnquiry validator middleware, shared by assign and reassign
func AssignEnquiry() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AssignEnquiryRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := make(map[string]string)

		if reqData.EnquiryID == 0 {
			errors["enquiryId"] = "enquiryId is required!"
		}
		if reqData.ChildAdminID == 0 {
			errors["childAdminId"] = "childAdminId is required!"
		}
		if reqData.Priority == "" {
			errors["priority"] = "priority is required!"
		} else if !models.ValidPriority(reqData.Priority) {
			errors["priority"] = "Invalid priority"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAssign", reqData)
		return c.Next()
	}
}

type CreateFollowUpRequest struct {
	EnquiryID        uint   `json:"enquiryId"`
	Mode             string `json:"mode"`
	Message          string `json:"message"`
	NextFollowUpDate string `json:"nextFollowUpDate"` // "2006-01-02"
	NextFollowUpTime string `json:"nextFollowUpTime"` // "HH:MM"
}

// CreateFollowUp validator middleware
func CreateFollowUp() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateFollowUpRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := make(map[string]string)

		if reqData.EnquiryID == 0 {
			errors["enquiryId"] = "enquiryId is required!"
		}
		if reqData.Mode == "" {
			errors["mode"] = "mode is required!"
		} else if !models.ValidFollowUpMode(reqData.Mode) {
			errors["mode"] = "Invalid mode value"
		}
		if strings.TrimSpace(reqData.Message) == "" {
			errors["message"] = "message is required!"
		}
		if reqData.NextFollowUpDate == "" {
			errors["nextFollowUpDate"] = "nextFollowUpDate is required!"
		}
		if reqData.NextFollowUpTime == "" {
			errors["nextFollowUpTime"] = "nextFollowUpTime is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedFollowUp", reqData)
		return c.Next()
	}
}

type CreateGeneralEnquiryRequest struct {
	Email    string `json:"email"`
	CourseID uint   `json:"courseId"`
}

// CreateGeneralEnquiry validator middleware (public endpoint)
func CreateGeneralEnquiry() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateGeneralEnquiryRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := make(map[string]string)

		if reqData.Email == "" || !isValidEmail(reqData.Email) {
			errors["email"] = "Invalid email format!"
		}
		if reqData.CourseID == 0 {
			errors["courseId"] = "courseId is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedGeneralEnquiry", reqData)
		return c.Next()
	}
}

type UpdateGeneralStatusRequest struct {
	Status string `json:"status"`
}

// UpdateGeneralEnquiryStatus validator middleware
func UpdateGeneralEnquiryStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateGeneralStatusRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		if !models.ValidGeneralEnquiryStatus(reqData.Status) {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid status value")
		}

		c.Locals("validatedGeneralStatus", reqData)
		return c.Next()
	}
}
