package courseValidator

import (
	"strings"

	"ccrm/middleware"

	"github.com/gofiber/fiber/v2"
)

type ModuleInput struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Content  string `json:"content"`
	Order    int    `json:"order"`
}

type CreateCourseRequest struct {
	CourseName      string        `json:"courseName"`
	Description     string        `json:"description"`
	CourseThumbnail string        `json:"courseThumbnail"`
	VideoUrl        string        `json:"videoUrl"`
	PdfUrl          string        `json:"pdfUrl"`
	Duration        string        `json:"duration"`
	Language        string        `json:"language"`
	Category        string        `json:"category"`
	CreatedBy       string        `json:"createdBy"`
	IsFree          *bool         `json:"isFree"`
	Price           float64       `json:"price"`
	SpecialPrice    float64       `json:"specialPrice"`
	Modules         []ModuleInput `json:"modules"`
}

// CreateCourse validator middleware
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.CourseName) == "" {
			errors["courseName"] = "courseName is required!"
		}
		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "description is required!"
		}
		if reqData.VideoUrl == "" {
			errors["videoUrl"] = "videoUrl is required!"
		}
		if reqData.Duration == "" {
			errors["duration"] = "duration is required!"
		}
		if reqData.Language == "" {
			errors["language"] = "language is required!"
		}
		if reqData.IsFree == nil {
			errors["isFree"] = "isFree is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

type UpdateCourseRequest struct {
	CourseName   string        `json:"courseName"`
	Description  string        `json:"description"`
	VideoUrl     string        `json:"videoUrl"`
	PdfUrl       string        `json:"pdfUrl"`
	Duration     string        `json:"duration"`
	Language     string        `json:"language"`
	Category     string        `json:"category"`
	IsFree       *bool         `json:"isFree"`
	Price        float64       `json:"price"`
	SpecialPrice float64       `json:"specialPrice"`
	Modules      []ModuleInput `json:"modules"`
}

// UpdateCourse validator middleware; fields optional
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

type CreateModuleRequest struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Content  string `json:"content"`
	Order    int    `json:"order"`
	CourseID uint   `json:"courseId"`
}

// CreateModule validator middleware
func CreateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateModuleRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "title is required!"
		}
		if reqData.CourseID == 0 {
			errors["courseId"] = "courseId is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}
