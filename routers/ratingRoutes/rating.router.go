package ratingRoutes

import (
	ratingController "ccrm/controllers/rating"
	"ccrm/middleware"
	"ccrm/models"
	ratingValidator "ccrm/validators/rating"

	"github.com/gofiber/fiber/v2"
)

func SetupRatingRoutes(app *fiber.App) {
	ratingGroup := app.Group("/api/v1/rating")

	ratingGroup.Post("/create", middleware.JWTMiddleware, middleware.CheckPermission(models.CapRatingWrite), ratingValidator.CreateRating(), ratingController.CreateRating)
	ratingGroup.Get("/by-course/:id", ratingController.GetRatingsByCourseId)
	ratingGroup.Get("/mine", middleware.JWTMiddleware, ratingController.GetRatingsByUser)
	ratingGroup.Put("/:id", middleware.JWTMiddleware, middleware.CheckPermission(models.CapRatingWrite), ratingValidator.UpdateRating(), ratingController.UpdateRating)
	ratingGroup.Delete("/:id", middleware.JWTMiddleware, middleware.CheckPermission(models.CapRatingWrite), ratingController.DeleteRating)
}
