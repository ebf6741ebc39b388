package enquiryRoutes

import (
	enquiryController "ccrm/controllers/enquiry"
	"ccrm/middleware"
	"ccrm/models"
	enquiryValidator "ccrm/validators/enquiry"

	"github.com/gofiber/fiber/v2"
)

func SetupEnquiryRoutes(app *fiber.App) {
	courseEnquiryGroup := app.Group("/api/v1/course-enquiry")

	courseEnquiryGroup.Post("/create", middleware.JWTMiddleware, middleware.CheckPermission(models.CapEnquiryCreate), enquiryValidator.CreateCourseEnquiry(), enquiryController.CreateCourseEnquiry)
	courseEnquiryGroup.Get("/list", middleware.JWTMiddleware, middleware.CheckPermission(models.CapEnquiryRead), enquiryController.GetAllCourseEnquiries)
	courseEnquiryGroup.Get("/mine", middleware.JWTMiddleware, enquiryController.GetCourseEnquiriesByUser)
	courseEnquiryGroup.Get("/by-course/:id", middleware.JWTMiddleware, middleware.CheckPermission(models.CapEnquiryRead), enquiryController.GetCourseEnquiriesByCourse)
	courseEnquiryGroup.Get("/:id", middleware.JWTMiddleware, middleware.CheckPermission(models.CapEnquiryRead), enquiryController.GetSingleCourseEnquiry)
	courseEnquiryGroup.Put("/status/:id", middleware.JWTMiddleware, middleware.CheckPermission(models.CapEnquiryManage), enquiryValidator.UpdateEnquiryStatus(), enquiryController.UpdateCourseEnquiryStatus)
	courseEnquiryGroup.Delete("/:id", middleware.JWTMiddleware, middleware.CheckPermission(models.CapEnquiryManage), enquiryController.DeleteCourseEnquiry)

	genEnquiryGroup := app.Group("/api/v1/gen-enquiry")

	// Create is public: no account is needed to register interest.
	genEnquiryGroup.Post("/create", enquiryValidator.CreateGeneralEnquiry(), enquiryController.CreateGeneralEnquiry)
	genEnquiryGroup.Get("/list", middleware.JWTMiddleware, middleware.CheckPermission(models.CapEnquiryRead), enquiryController.GetAllGeneralEnquiries)
	genEnquiryGroup.Get("/:id", middleware.JWTMiddleware, middleware.CheckPermission(models.CapEnquiryRead), enquiryController.GetSingleGeneralEnquiry)
	genEnquiryGroup.Put("/status/:id", middleware.JWTMiddleware, middleware.CheckPermission(models.CapEnquiryManage), enquiryValidator.UpdateGeneralEnquiryStatus(), enquiryController.UpdateGeneralEnquiryStatus)
	genEnquiryGroup.Delete("/:id", middleware.JWTMiddleware, middleware.CheckPermission(models.CapEnquiryManage), enquiryController.DeleteGeneralEnquiry)

	assignGroup := app.Group("/api/v1/enquiry-assign", middleware.JWTMiddleware)

	assignGroup.Post("/assign", middleware.CheckPermission(models.CapEnquiryAssign), enquiryValidator.AssignEnquiry(), enquiryController.AssignEnquiry)
	assignGroup.Post("/reassign", middleware.CheckPermission(models.CapEnquiryAssign), enquiryValidator.AssignEnquiry(), enquiryController.ReassignEnquiry)
	assignGroup.Get("/mine", middleware.CheckPermission(models.CapEnquiryRead), enquiryController.GetAssignedEnquiries)
	assignGroup.Get("/by-child-admin/:id", middleware.CheckPermission(models.CapEnquiryAssign), enquiryController.GetAssignedEnquiriesByChildAdminId)
	assignGroup.Get("/:id", middleware.CheckPermission(models.CapEnquiryRead), enquiryController.GetSingleAssignedEnquiry)

	followUpGroup := app.Group("/api/v1/follow-up", middleware.JWTMiddleware)

	followUpGroup.Post("/create", middleware.CheckPermission(models.CapEnquiryFollowUp), enquiryValidator.CreateFollowUp(), enquiryController.CreateFollowUp)
	followUpGroup.Get("/by-enquiry/:id", middleware.CheckPermission(models.CapEnquiryRead), enquiryController.GetFollowUpsByEnquiry)
	followUpGroup.Get("/mine", middleware.CheckPermission(models.CapEnquiryFollowUp), enquiryController.GetFollowUpsByChildAdmin)
}
