package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"autoplate/internal/auctionerrors"
	"autoplate/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// ParseIDParam parses a numeric path parameter.
func ParseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s parameter: %w", name, err)
	}
	return uint(id), nil
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message.
// Conflicts map to 400 rather than 409 to match the reference API surface.
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid username or password"
	case errors.Is(err, auctionerrors.ErrTokenExpired):
		return http.StatusUnauthorized, "token expired"
	case errors.Is(err, auctionerrors.ErrTokenInvalid):
		return http.StatusUnauthorized, "invalid token"
	case errors.Is(err, auctionerrors.ErrUserNotFound):
		return http.StatusUnauthorized, "user not found"

	case errors.Is(err, auctionerrors.ErrBidForbidden):
		return http.StatusForbidden, "no access to this bid"
	case errors.Is(err, auctionerrors.ErrDeadlinePassed):
		return http.StatusForbidden, "plate deadline has passed"

	case errors.Is(err, auctionerrors.ErrPlateNotFound):
		return http.StatusNotFound, "plate not found"

	case errors.Is(err, auctionerrors.ErrDuplicateUsername):
		return http.StatusBadRequest, "username already taken"
	case errors.Is(err, auctionerrors.ErrDuplicatePlate):
		return http.StatusBadRequest, "plate number already exists"
	case errors.Is(err, auctionerrors.ErrAlreadyBid):
		return http.StatusBadRequest, "bid already placed on this plate"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusBadRequest, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrBiddingClosed):
		return http.StatusBadRequest, "bidding is closed for this plate"
	case errors.Is(err, auctionerrors.ErrPastDeadline):
		return http.StatusBadRequest, "deadline must be in the future"
	case errors.Is(err, auctionerrors.ErrPlateHasBids):
		return http.StatusBadRequest, "plate has existing bids"
	case errors.Is(err, auctionerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"

	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
