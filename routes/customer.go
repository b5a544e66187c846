package routes

import (
	"github.com/gofiber/fiber/v2"

	"sahayak/controllers/customer"
	"sahayak/middleware"
)

// SetupCustomerRoutes configures all customer related routes
func SetupCustomerRoutes(app *fiber.App) {
	customerGroup := app.Group("/customer", middleware.Protected(), middleware.RequireRole(middleware.RoleCustomer))
	customerGroup.Get("/profile", customer.GetProfile)
	customerGroup.Post("/requests", customer.CreateServiceRequest)
	customerGroup.Post("/requests/:id/payment", customer.ConfirmPayment)
}
