package provider

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sahayak/config"
	"sahayak/db"
	"sahayak/models"
	"sahayak/utils"
)

// GetDashboard returns the provider's record plus the pending requests
// that match their trade and locality.
func GetDashboard(c *fiber.Ctx) error {
	providerID := c.Locals("accountID").(uint)

	var prov models.Provider
	if err := db.DB.First(&prov, providerID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Provider not found",
		})
	}
	prov.Password = ""

	jobs, err := utils.FindJobs(db.DB, &prov)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch available jobs",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"provider": prov,
		"jobs":     jobs,
		"count":    len(jobs),
	})
}

// AcceptRequest claims a pending request for the logged-in provider.
// In the payment variant it also stamps the fixed cost and creates the
// request's single Transaction row; both writes commit or roll back
// together. The status guard in the WHERE clause is the only defence
// against two providers accepting at once: the loser matches zero rows
// and gets a 404.
func AcceptRequest(c *fiber.Ctx) error {
	providerID := c.Locals("accountID").(uint)
	id := c.Params("id")
	cfg := config.Get()

	var request models.ServiceRequest
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		target := models.StatusAccepted
		updates := map[string]interface{}{
			"status":      models.StatusAccepted,
			"provider_id": providerID,
		}
		if cfg.PaymentsEnabled {
			target = models.StatusAcceptedUnpaid
			updates["status"] = models.StatusAcceptedUnpaid
			updates["cost"] = cfg.ServiceCost
		}

		res := tx.Model(&models.ServiceRequest{}).
			Where("id = ? AND status = ?", id, models.StatusPending).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Where("id = ?", id).First(&request).Error; err != nil {
			return err
		}

		if target == models.StatusAcceptedUnpaid {
			txn := models.Transaction{
				ServiceRequestID: request.ID,
				ProviderID:       providerID,
				Amount:           cfg.ServiceCost,
				Status:           models.TxnPending,
			}
			if err := tx.Create(&txn).Error; err != nil {
				return err
			}
		}
		return nil
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No pending request found",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to accept request",
		})
	}

	notifyAcceptance(&request)

	return c.JSON(request)
}

// RejectRequest turns down a pending request. No transaction row is
// created and the job disappears from every dashboard.
func RejectRequest(c *fiber.Ctx) error {
	id := c.Params("id")

	// Rejection records no provider: the request simply leaves the
	// pending pool and other providers stop seeing it.
	res := db.DB.Model(&models.ServiceRequest{}).
		Where("id = ? AND status = ?", id, models.StatusPending).
		Update("status", models.StatusRejected)
	if res.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to reject request",
		})
	}
	if res.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No pending request found",
		})
	}

	var request models.ServiceRequest
	if err := db.DB.Where("id = ?", id).First(&request).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch request",
		})
	}

	return c.JSON(request)
}

// GetHistory returns the requests this provider has acted on, newest
// first.
func GetHistory(c *fiber.Ctx) error {
	providerID := c.Locals("accountID").(uint)

	var requests []models.ServiceRequest
	if err := db.DB.Preload("Client").
		Where("provider_id = ?", providerID).
		Order("id desc").
		Find(&requests).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch history",
			Error:   err.Error(),
		})
	}

	for i := range requests {
		requests[i].Client.Password = ""
	}

	return c.JSON(fiber.Map{
		"requests": requests,
		"count":    len(requests),
	})
}

// notifyAcceptance emails the request's owner. In the payment variant
// the mail doubles as the payment-due notice. Failures are logged and
// otherwise ignored.
func notifyAcceptance(request *models.ServiceRequest) {
	var user models.User
	if err := db.DB.Where("username = ?", request.Username).First(&user).Error; err != nil {
		log.Printf("Failed to load owner of request %d for notification: %v", request.ID, err)
		return
	}
	if user.Email == "" {
		return
	}

	subject := fmt.Sprintf("Your %s request was accepted", request.ServiceType)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>A provider has accepted your %s request scheduled for %s at %s.</p>
	`, user.Username, request.ServiceType, request.Date, request.Time)
	if request.RequiresPayment() && request.Cost != nil {
		body += fmt.Sprintf(`<p>Please log in and complete the payment of %.2f to confirm.</p>`, *request.Cost)
	}

	if err := utils.SendEmail(user.Email, subject, body); err != nil {
		log.Printf("Failed to send acceptance mail for request %d: %v", request.ID, err)
	}
}
