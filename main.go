package main

import (
	"log"

	"hotel_roomservice/config"
	"hotel_roomservice/database"
	"hotel_roomservice/helper"
	"hotel_roomservice/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigOrDefault("CORS_ORIGIN", "http://localhost:5173"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()
	database.ConnectRedis()

	helper.StartOrderSweeper()
	defer helper.StopOrderSweeper()
	helper.StartDailyReportScheduler()
	defer helper.StopDailyReportScheduler()

	router.SetupRoutes(app)

	log.Fatal(app.Listen(":" + config.ConfigOrDefault("PORT", "5000")))
}
