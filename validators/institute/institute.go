package instituteValidator

import (
	"regexp"
	"strings"

	"ccrm/middleware"

	"github.com/gofiber/fiber/v2"
)

func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)
	return re.MatchString(email)
}

type CreateInstituteRequest struct {
	InstituteName string `json:"instituteName"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
}

// CreateInstitute validator middleware
func CreateInstitute() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateInstituteRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.InstituteName) == "" {
			errors["instituteName"] = "instituteName is required!"
		}
		if strings.TrimSpace(reqData.ContactPerson) == "" {
			errors["contactPerson"] = "contactPerson is required!"
		}
		if reqData.Email == "" || !isValidEmail(reqData.Email) {
			errors["email"] = "Invalid email!"
		}
		if reqData.Phone == "" {
			errors["phone"] = "phone is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedInstitute", reqData)
		return c.Next()
	}
}

type SendInvitesRequest struct {
	Emails []string `json:"emails"`
}

// SendInvites validator middleware
func SendInvites() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SendInvitesRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		if len(reqData.Emails) == 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Please provide at least one email")
		}

		var invalid []string
		for _, email := range reqData.Emails {
			if !isValidEmail(email) {
				invalid = append(invalid, email)
			}
		}
		if len(invalid) > 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest,
				"Invalid email(s): "+strings.Join(invalid, ", "))
		}

		c.Locals("validatedInvites", reqData)
		return c.Next()
	}
}

type RegisterViaInviteRequest struct {
	UserName string `json:"userName"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// RegisterViaInvite validator middleware
func RegisterViaInvite() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RegisterViaInviteRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.UserName) == "" {
			errors["userName"] = "userName is required!"
		}
		if !regexp.MustCompile(`^[6-9]\d{9}$`).MatchString(reqData.Phone) {
			errors["phone"] = "Invalid phone number format!"
		}
		if len(strings.TrimSpace(reqData.Password)) < 6 {
			errors["password"] = "Password must be at least 6 characters!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRegistration", reqData)
		return c.Next()
	}
}
