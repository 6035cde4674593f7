package utils

import (
	"github.com/gin-gonic/gin"
)

// Every auction endpoint answers with the same envelope: the HTTP status
// repeated in the body, a short human-readable message, and either a data
// payload (plates, bids, tokens) or an error string. Clients can branch on
// the presence of "error" without inspecting the message text.

// JSONResponse writes a success envelope carrying the given payload.
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// JSONError writes a failure envelope. The error text is the sentinel's
// message, already safe to show to clients.
func JSONError(c *gin.Context, status int, err error, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"error":   err.Error(),
	})
}
