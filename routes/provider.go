package routes

import (
	"github.com/gofiber/fiber/v2"

	"sahayak/controllers/provider"
	"sahayak/middleware"
)

// SetupProviderRoutes configures all provider related routes
func SetupProviderRoutes(app *fiber.App) {
	providerGroup := app.Group("/provider", middleware.Protected(), middleware.RequireRole(middleware.RoleProvider))
	providerGroup.Get("/dashboard", provider.GetDashboard)
	providerGroup.Get("/history", provider.GetHistory)
	providerGroup.Post("/requests/:id/accept", provider.AcceptRequest)
	providerGroup.Post("/requests/:id/reject", provider.RejectRequest)
}
