package models

import (
	"time"
)

type TransactionStatus string

const (
	TxnPending TransactionStatus = "pending"
	TxnSuccess TransactionStatus = "success"
	TxnFailed  TransactionStatus = "failed"
)

// Transaction is the payment-stub ledger row. It is created exactly
// once, when a provider accepts a request in the payment variant, and
// updated in place when the customer confirms.
type Transaction struct {
	ID               uint              `json:"id" gorm:"primaryKey"`
	ServiceRequestID uint              `json:"service_request_id" gorm:"index"`
	ServiceRequest   ServiceRequest    `json:"service_request,omitempty" gorm:"foreignKey:ServiceRequestID"`
	ProviderID       uint              `json:"provider_id"`
	Amount           float64           `json:"amount"`
	Status           TransactionStatus `json:"status"`
	TransactionID    string            `json:"transaction_id"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}
