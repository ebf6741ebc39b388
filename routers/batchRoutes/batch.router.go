package batchRoutes

import (
	batchController "ccrm/controllers/batch"
	"ccrm/middleware"
	"ccrm/models"
	batchValidator "ccrm/validators/batch"

	"github.com/gofiber/fiber/v2"
)

func SetupBatchRoutes(app *fiber.App) {
	batchGroup := app.Group("/api/v1/batch")

	batchGroup.Post("/create", middleware.JWTMiddleware, middleware.CheckPermission(models.CapBatchWrite), batchValidator.CreateBatch(), batchController.CreateBatch)
	batchGroup.Get("/list", batchController.GetAllBatches)
	batchGroup.Get("/by-course/:id", batchController.GetBatchesByCourseId)
	batchGroup.Get("/:id", batchController.GetBatchById)
	batchGroup.Put("/:id", middleware.JWTMiddleware, middleware.CheckPermission(models.CapBatchWrite), batchController.UpdateBatch)
	batchGroup.Delete("/:id", middleware.JWTMiddleware, middleware.CheckPermission(models.CapBatchWrite), batchController.DeleteBatch)
}
