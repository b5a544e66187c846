package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type RequestStatus string

const (
	StatusPending        RequestStatus = "pending"
	StatusAccepted       RequestStatus = "accepted"
	StatusRejected       RequestStatus = "rejected"
	StatusAcceptedUnpaid RequestStatus = "accepted_unpaid"
	StatusPaymentSuccess RequestStatus = "payment_success"
	StatusPaymentFailed  RequestStatus = "payment_failed"
)

// ServiceRequest is a customer's job ticket. Rows are never deleted;
// the status field carries the whole lifecycle.
type ServiceRequest struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	Username    string        `json:"username" gorm:"index"`
	Client      User          `json:"client,omitempty" gorm:"foreignKey:Username;references:Username"`
	ProviderID  *uint         `json:"provider_id"`
	Provider    *Provider     `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
	ServiceType string        `json:"service_type"`
	Date        string        `json:"date"`
	Time        string        `json:"time"`
	Status      RequestStatus `json:"status"`
	Cost        *float64      `json:"cost"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func (r *ServiceRequest) BeforeCreate(tx *gorm.DB) error {
	if r.Status == "" {
		r.Status = StatusPending
	}
	return nil
}

// UpdateStatus applies a lifecycle transition. Accepted, rejected and
// both payment outcomes are terminal; any move out of them is an error.
func (r *ServiceRequest) UpdateStatus(tx *gorm.DB, newStatus RequestStatus) error {
	switch r.Status {
	case StatusPending:
		if newStatus != StatusAccepted && newStatus != StatusAcceptedUnpaid && newStatus != StatusRejected {
			return fmt.Errorf("invalid transition from pending to %s", newStatus)
		}
	case StatusAcceptedUnpaid:
		if newStatus != StatusPaymentSuccess && newStatus != StatusPaymentFailed {
			return fmt.Errorf("invalid transition from accepted_unpaid to %s", newStatus)
		}
	case StatusAccepted, StatusRejected, StatusPaymentSuccess, StatusPaymentFailed:
		return fmt.Errorf("no transitions allowed from %s", r.Status)
	}

	r.Status = newStatus
	return tx.Save(r).Error
}

// RequiresPayment reports whether the owning user must complete the
// payment flow before anything else is shown to them.
func (r *ServiceRequest) RequiresPayment() bool {
	return r.Status == StatusAcceptedUnpaid
}
