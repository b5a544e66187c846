package models

import (
	"time"
)

// Provider lives in its own registry: usernames are unique among
// providers but independent of the user table.
type Provider struct {
	ID               uint             `json:"id" gorm:"primaryKey"`
	Username         string           `json:"username" gorm:"unique"`
	Password         string           `json:"password,omitempty"`
	ServiceType      string           `json:"service_type"`
	Address          string           `json:"address"`
	Phone            string           `json:"phone"`
	Email            string           `json:"email"`
	AcceptedRequests []ServiceRequest `json:"accepted_requests,omitempty" gorm:"foreignKey:ProviderID"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}
