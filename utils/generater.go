package utils

import (
	"github.com/google/uuid"
)

// GenerateTransactionID returns the identifier recorded on a settled
// payment.
func GenerateTransactionID() string {
	return uuid.New().String()
}
