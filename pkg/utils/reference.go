package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewRequestID generates an id used to correlate log lines for one request
func NewRequestID() string {
	return uuid.New().String()
}

// GenerateSaleReference generates a unique reference for a finalized sale
func GenerateSaleReference() string {
	return "SALE-" + strings.ToUpper(uuid.New().String()[:8])
}
