package main

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/gofiber/fiber/v2/middleware/cors"

	"sahayak/config"
	"sahayak/cron"
	"sahayak/db"
	"sahayak/redis"
	"sahayak/routes"
)

func main() {
	cfg := config.Load()
	db.Init()
	db.Migrate()
	redis.InitRedis()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Sahayak backend")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupCustomerRoutes(app)
	routes.SetupProviderRoutes(app)

	if cfg.PaymentsEnabled {
		cron.StartCronJobs()
	}

	log.Fatal(app.Listen(":" + cfg.Port))
}
