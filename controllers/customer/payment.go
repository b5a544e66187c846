package customer

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sahayak/db"
	"sahayak/models"
	"sahayak/payment"
)

// ConfirmPayment settles an accepted_unpaid request owned by the
// logged-in customer. The request and its transaction row move
// together inside one database transaction; a storage failure rolls
// both back.
func ConfirmPayment(c *fiber.Ctx) error {
	username := c.Locals("username").(string)
	id := c.Params("id")

	type PaymentInput struct {
		// SimulateFailure exercises the declined branch of the dummy
		// gateway, which otherwise always succeeds.
		SimulateFailure bool `json:"simulate_failure"`
	}
	input := new(PaymentInput)
	// The body is optional; no body means a normal confirmation.
	_ = c.BodyParser(input)

	var request models.ServiceRequest
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND username = ? AND status = ?",
			id, username, models.StatusAcceptedUnpaid).First(&request).Error; err != nil {
			return err
		}

		var txn models.Transaction
		if err := tx.Where("service_request_id = ?", request.ID).First(&txn).Error; err != nil {
			return err
		}

		if input.SimulateFailure {
			if err := request.UpdateStatus(tx, models.StatusPaymentFailed); err != nil {
				return err
			}
			txn.Status = models.TxnFailed
			return tx.Save(&txn).Error
		}

		transactionID, err := payment.Charge(txn.Amount)
		if err != nil {
			if updateErr := request.UpdateStatus(tx, models.StatusPaymentFailed); updateErr != nil {
				return updateErr
			}
			txn.Status = models.TxnFailed
			return tx.Save(&txn).Error
		}

		if err := request.UpdateStatus(tx, models.StatusPaymentSuccess); err != nil {
			return err
		}
		txn.Status = models.TxnSuccess
		txn.TransactionID = transactionID
		return tx.Save(&txn).Error
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No payable request found",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to process payment",
		})
	}

	return c.JSON(request)
}
