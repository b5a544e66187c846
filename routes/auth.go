package routes

import (
	"github.com/gofiber/fiber/v2"

	"sahayak/controllers"
	"sahayak/middleware"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Public routes; the two registries have separate entry points
	auth.Post("/register", controllers.RegisterUser)
	auth.Post("/login", controllers.LoginUser)
	auth.Post("/provider/register", controllers.RegisterProvider)
	auth.Post("/provider/login", controllers.LoginProvider)
	auth.Post("/refresh", controllers.RefreshToken)

	// Protected routes
	auth.Post("/logout", middleware.Protected(), controllers.Logout)
}
