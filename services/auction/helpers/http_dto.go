package helpers

import (
	"time"

	model "autoplate/internal/models"

	"github.com/shopspring/decimal"
)

// Request/Response DTOs
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	IsAdmin  bool   `json:"is_admin"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

type PlateCreateRequest struct {
	PlateNumber string    `json:"plate_number" binding:"required"`
	Description string    `json:"description"`
	Deadline    time.Time `json:"deadline" binding:"required"`
}

// PlateUpdateRequest replaces every field of a plate. IsActive is a pointer
// so an explicit false (archiving) is distinguishable from an omitted field,
// which defaults to keeping the plate active.
type PlateUpdateRequest struct {
	PlateNumber string    `json:"plate_number" binding:"required"`
	Description string    `json:"description"`
	Deadline    time.Time `json:"deadline" binding:"required"`
	IsActive    *bool     `json:"is_active"`
}

type PlateResponse struct {
	ID          uint   `json:"id"`
	PlateNumber string `json:"plate_number"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
	IsActive    bool   `json:"is_active"`
	OwnerID     uint   `json:"owner_id"`
}

type PlaceBidRequest struct {
	PlateID uint            `json:"plate_id" binding:"required"`
	Amount  decimal.Decimal `json:"amount" binding:"required"`
}

type UpdateBidRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

type BidResponse struct {
	ID        uint   `json:"id"`
	PlateID   uint   `json:"plate_id"`
	UserID    uint   `json:"user_id"`
	Amount    string `json:"amount"`
	CreatedAt string `json:"created_at"`
}

// FromPlate converts a stored plate into its response shape.
func FromPlate(p model.Plate) PlateResponse {
	return PlateResponse{
		ID:          p.ID,
		PlateNumber: p.PlateNumber,
		Description: p.Description,
		Deadline:    p.Deadline.UTC().Format(time.RFC3339),
		IsActive:    p.IsActive,
		OwnerID:     p.OwnerID,
	}
}

// FromBid converts a stored bid into its response shape. Amounts are
// rendered with two decimal places.
func FromBid(b model.Bid) BidResponse {
	return BidResponse{
		ID:        b.ID,
		PlateID:   b.PlateID,
		UserID:    b.UserID,
		Amount:    b.Amount.StringFixed(2),
		CreatedAt: b.CreatedAt.UTC().Format(time.RFC3339),
	}
}
