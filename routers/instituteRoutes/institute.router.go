package instituteRoutes

import (
	instituteController "ccrm/controllers/institute"
	inviteController "ccrm/controllers/invite"
	"ccrm/middleware"
	"ccrm/models"
	instituteValidator "ccrm/validators/institute"

	"github.com/gofiber/fiber/v2"
)

func SetupInstituteRoutes(app *fiber.App) {
	instituteGroup := app.Group("/api/v1/institute")

	instituteGroup.Post("/create", middleware.JWTMiddleware, instituteValidator.CreateInstitute(), instituteController.CreateInstitute)
	instituteGroup.Get("/list", middleware.JWTMiddleware, instituteController.GetAllInstitutes)
	instituteGroup.Get("/students/:id", middleware.JWTMiddleware, instituteController.GetStudentsByInstitute)
	instituteGroup.Get("/:id", middleware.JWTMiddleware, instituteController.GetSingleInstitute)
	instituteGroup.Put("/:id", middleware.JWTMiddleware, instituteController.UpdateInstitute)
	instituteGroup.Delete("/:id", middleware.JWTMiddleware, middleware.CheckPermission(models.CapUserManage), instituteController.DeleteInstitute)

	inviteGroup := app.Group("/api/v1/student-invite")

	inviteGroup.Post("/send/:id", middleware.JWTMiddleware, middleware.CheckPermission(models.CapInviteSend), instituteValidator.SendInvites(), inviteController.SendStudentInvites)
	// Public: the invite token itself is the credential.
	inviteGroup.Post("/register", instituteValidator.RegisterViaInvite(), inviteController.RegisterViaInvite)
}
