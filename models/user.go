package models

import (
	"time"
)

type User struct {
	ID              uint             `json:"id" gorm:"primaryKey"`
	Username        string           `json:"username" gorm:"unique"`
	Password        string           `json:"password,omitempty"`
	Address         string           `json:"address"`
	Phone           string           `json:"phone"`
	Email           string           `json:"email"`
	ServiceRequests []ServiceRequest `json:"service_requests,omitempty" gorm:"foreignKey:Username;references:Username"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}
