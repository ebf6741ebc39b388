package main

import (
	"log"

	"ccrm/config"
	"ccrm/database"
	batchRoutes "ccrm/routers/batchRoutes"
	courseRoutes "ccrm/routers/courseRoutes"
	dealRoutes "ccrm/routers/dealRoutes"
	enquiryRoutes "ccrm/routers/enquiryRoutes"
	instituteRoutes "ccrm/routers/instituteRoutes"
	mentorRoutes "ccrm/routers/mentorRoutes"
	ratingRoutes "ccrm/routers/ratingRoutes"
	userRoutes "ccrm/routers/userRoutes"
	"ccrm/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	userRoutes.SetupUserRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	batchRoutes.SetupBatchRoutes(app)
	ratingRoutes.SetupRatingRoutes(app)
	dealRoutes.SetupDealRoutes(app)
	instituteRoutes.SetupInstituteRoutes(app)
	mentorRoutes.SetupMentorRoutes(app)
	enquiryRoutes.SetupEnquiryRoutes(app)

	utils.InitializeReminderScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
