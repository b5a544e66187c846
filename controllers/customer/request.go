package customer

import (
	"github.com/gofiber/fiber/v2"

	"sahayak/db"
	"sahayak/models"
)

// CreateServiceRequest files a new request for the logged-in customer.
// It starts life pending and unclaimed.
func CreateServiceRequest(c *fiber.Ctx) error {
	username := c.Locals("username").(string)

	type RequestInput struct {
		ServiceType string `json:"service_type"`
		Date        string `json:"date"`
		Time        string `json:"time"`
	}

	input := new(RequestInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if input.ServiceType == "" || input.Date == "" || input.Time == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}

	request := models.ServiceRequest{
		Username:    username,
		ServiceType: input.ServiceType,
		Date:        input.Date,
		Time:        input.Time,
		Status:      models.StatusPending,
	}

	if err := db.DB.Create(&request).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create service request",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(request)
}

// GetProfile returns the customer's record and full request history.
// When any request is awaiting payment the response says so up front,
// so the frontend can force the payment flow before anything else.
func GetProfile(c *fiber.Ctx) error {
	username := c.Locals("username").(string)

	var user models.User
	if err := db.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}
	user.Password = ""

	var history []models.ServiceRequest
	if err := db.DB.Where("username = ?", username).Order("id asc").Find(&history).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch request history",
		})
	}

	unpaid := []models.ServiceRequest{}
	for _, req := range history {
		if req.RequiresPayment() {
			unpaid = append(unpaid, req)
		}
	}

	return c.JSON(fiber.Map{
		"user":            user,
		"history":         history,
		"payment_due":     len(unpaid) > 0,
		"unpaid_requests": unpaid,
	})
}
