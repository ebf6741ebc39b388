package courseRoutes

import (
	courseController "ccrm/controllers/course"
	"ccrm/middleware"
	"ccrm/models"
	courseValidator "ccrm/validators/course"

	"github.com/gofiber/fiber/v2"
)

func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/api/v1/course")

	courseGroup.Post("/create", middleware.JWTMiddleware, middleware.CheckPermission(models.CapCourseWrite), courseValidator.CreateCourse(), courseController.CreateCourse)
	courseGroup.Get("/list", courseController.GetAllCourses)
	courseGroup.Get("/:id", courseController.GetSingleCourseById)
	courseGroup.Put("/:id", middleware.JWTMiddleware, middleware.CheckPermission(models.CapCourseWrite), courseValidator.UpdateCourse(), courseController.UpdateCourse)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, middleware.CheckPermission(models.CapCourseWrite), courseController.DeleteCourse)

	moduleGroup := app.Group("/api/v1/module")

	moduleGroup.Post("/create", middleware.JWTMiddleware, middleware.CheckPermission(models.CapCourseWrite), courseValidator.CreateModule(), courseController.CreateModule)
	moduleGroup.Get("/by-course/:courseId", courseController.GetModulesByCourseId)
	moduleGroup.Get("/:id", courseController.GetSingleModule)
	moduleGroup.Put("/:id", middleware.JWTMiddleware, middleware.CheckPermission(models.CapCourseWrite), courseController.UpdateModule)
	moduleGroup.Delete("/:id", middleware.JWTMiddleware, middleware.CheckPermission(models.CapCourseWrite), courseController.DeleteModule)
}
