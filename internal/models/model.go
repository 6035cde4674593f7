package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents a registered auction participant. Admins may manage
// plate listings; everyone else may only bid.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:150;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:320;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"`
	IsAdmin      bool      `json:"is_admin" gorm:"not null;default:false"`
	CreatedAt    time.Time `json:"created_at"`
}

// Plate is an auctionable vehicle registration number with a bidding deadline.
type Plate struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	PlateNumber string    `json:"plate_number" gorm:"uniqueIndex;size:16;not null"`
	Description string    `json:"description"`
	Deadline    time.Time `json:"deadline" gorm:"not null"`
	IsActive    bool      `json:"is_active" gorm:"not null;default:true"`
	OwnerID     uint      `json:"owner_id" gorm:"index;not null"`
	Owner       User      `json:"-" gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedAt   time.Time `json:"created_at"`
}

// Open reports whether the plate still accepts bids at the given instant.
// The lifecycle is derived, never stored: Active (is_active, deadline ahead)
// -> Closed (deadline passed) -> Archived (is_active cleared via update).
func (p Plate) Open(now time.Time) bool {
	return p.IsActive && now.Before(p.Deadline)
}

// Bid is a user's monetary offer against a specific plate. The bids table
// carries a composite unique index on (user_id, plate_id): one bid per user
// per plate, revisions go through update.
type Bid struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	Amount    decimal.Decimal `json:"amount" gorm:"type:numeric(10,2);not null"`
	UserID    uint            `json:"user_id" gorm:"not null;uniqueIndex:idx_bids_user_plate"`
	User      User            `json:"-" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	PlateID   uint            `json:"plate_id" gorm:"not null;uniqueIndex:idx_bids_user_plate"`
	Plate     Plate           `json:"-" gorm:"foreignKey:PlateID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedAt time.Time       `json:"created_at"`
}
