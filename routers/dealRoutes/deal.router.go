package dealRoutes

import (
	dealController "ccrm/controllers/deal"
	"ccrm/middleware"
	"ccrm/models"
	dealValidator "ccrm/validators/deal"

	"github.com/gofiber/fiber/v2"
)

func SetupDealRoutes(app *fiber.App) {
	dealGroup := app.Group("/api/v1/raised-deal", middleware.JWTMiddleware)

	dealGroup.Post("/create", middleware.CheckPermission(models.CapDealRaise), dealValidator.CreateRaisedDeal(), dealController.CreateRaisedDeal)
	dealGroup.Get("/list", middleware.CheckPermission(models.CapDealManage), dealController.GetAllRaisedDeals)
	dealGroup.Get("/mine", dealController.GetRaisedDealsByUser)
	dealGroup.Get("/:id", dealController.GetSingleRaisedDeal)
	dealGroup.Put("/status/:id", middleware.CheckPermission(models.CapDealManage), dealValidator.UpdateDealStatus(), dealController.UpdateDealStatus)
	dealGroup.Delete("/:id", middleware.CheckPermission(models.CapDealManage), dealController.DeleteRaisedDeal)
}
