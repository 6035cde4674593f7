package utils

import (
	"github.com/google/uuid"
)

// GenerateRequestID returns a new unique identifier used to tag request logs.
func GenerateRequestID() string {
	return uuid.New().String()
}
