package mentorRoutes

import (
	mentorController "ccrm/controllers/mentor"
	"ccrm/middleware"
	"ccrm/models"
	mentorValidator "ccrm/validators/mentor"

	"github.com/gofiber/fiber/v2"
)

func SetupMentorRoutes(app *fiber.App) {
	mentorGroup := app.Group("/api/v1/mentor")

	mentorGroup.Post("/create", middleware.JWTMiddleware, middleware.CheckPermission(models.CapMentorWrite), mentorValidator.CreateMentor(), mentorController.CreateMentor)
	mentorGroup.Get("/list", mentorController.GetAllMentors)
	mentorGroup.Get("/:id", mentorController.GetSingleMentor)
	mentorGroup.Put("/:id", middleware.JWTMiddleware, middleware.CheckPermission(models.CapMentorWrite), mentorController.UpdateMentor)
	mentorGroup.Delete("/:id", middleware.JWTMiddleware, middleware.CheckPermission(models.CapMentorWrite), mentorController.DeleteMentor)
}
