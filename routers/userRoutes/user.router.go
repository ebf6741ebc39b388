package userRoutes

import (
	userController "ccrm/controllers/user"
	"ccrm/middleware"
	"ccrm/models"
	userValidator "ccrm/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/api/v1/user")

	userGroup.Post("/signup", userValidator.Signup(), userController.Signup)
	userGroup.Post("/login", userValidator.Login(), userController.Login)

	userGroup.Post("/child-admin", middleware.JWTMiddleware, middleware.CheckPermission(models.CapUserManage), userValidator.CreateChildAdmin(), userController.CreateChildAdmin)
	userGroup.Get("/institutes", middleware.JWTMiddleware, middleware.CheckPermission(models.CapUserManage), userController.GetAllInstitutes)
	userGroup.Get("/students", middleware.JWTMiddleware, middleware.CheckPermission(models.CapUserManage), userController.GetAllStudents)
	userGroup.Get("/:id", middleware.JWTMiddleware, userController.GetSingleUserById)
	userGroup.Put("/:id", middleware.JWTMiddleware, userValidator.UpdateUser(), userController.UpdateUser)
	userGroup.Delete("/:id", middleware.JWTMiddleware, middleware.CheckPermission(models.CapUserManage), userController.DeleteUser)
}
