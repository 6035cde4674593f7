package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrPlateNotFound = errors.New("plate not found")
	ErrBidNotFound   = errors.New("bid not found")
	ErrNoBids        = errors.New("no bids found for plate")

	ErrDuplicateUsername = errors.New("username already taken")
	ErrDuplicatePlate    = errors.New("plate number already exists")
	ErrAlreadyBid        = errors.New("user already placed a bid on this plate")
	ErrPlateHasBids      = errors.New("plate has existing bids")
)

// Business logic errors
var (
	ErrInvalidBid     = errors.New("invalid bid")
	ErrBidTooLow      = errors.New("bid amount too low")
	ErrBiddingClosed  = errors.New("bidding is closed for this plate")
	ErrPastDeadline   = errors.New("deadline must be in the future")
	ErrDeadlinePassed = errors.New("plate deadline has passed")
	ErrBidForbidden   = errors.New("no access to this bid")
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
)
