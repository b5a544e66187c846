package cron

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"sahayak/db"
	"sahayak/models"
	"sahayak/utils"
)

// StartCronJobs initializes and starts the cron scheduler for payment reminders
func StartCronJobs() {
	c := cron.New()
	// Every 10 minutes, nag customers who owe a payment
	_, err := c.AddFunc("*/10 * * * *", sendPaymentReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for payment reminders")
}

// sendPaymentReminders checks for unpaid accepted requests and mails their owners
func sendPaymentReminders() {
	var requests []models.ServiceRequest
	err := db.DB.Preload("Client").
		Where("status = ?", models.StatusAcceptedUnpaid).
		Find(&requests).Error
	if err != nil {
		log.Printf("Error fetching unpaid requests for reminders: %v", err)
		return
	}

	for _, request := range requests {
		if request.Client.Email == "" {
			continue
		}
		if err := sendReminderEmail(&request); err != nil {
			log.Printf("Failed to send reminder for request %d: %v", request.ID, err)
			continue
		}
		log.Printf("Sent payment reminder for request %d to %s", request.ID, request.Client.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(request *models.ServiceRequest) error {
	subject := fmt.Sprintf("Payment due: %s request", request.ServiceType)
	cost := 0.0
	if request.Cost != nil {
		cost = *request.Cost
	}
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your %s request scheduled for %s at %s has been accepted and is
		waiting on payment.</p>
		<p><strong>Amount due:</strong> %.2f</p>
		<p>Please log in to complete the payment and confirm the booking.</p>
	`, request.Client.Username, request.ServiceType, request.Date, request.Time, cost)

	return utils.SendEmail(request.Client.Email, subject, body)
}
