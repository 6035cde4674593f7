package repository

import (
	"errors"
	"fmt"

	"autoplate/internal/auctionerrors"
	model "autoplate/internal/models"

	"gorm.io/gorm"
)

// PlateFilter narrows and orders plate listings.
type PlateFilter struct {
	NumberContains  string
	OrderByDeadline bool
}

// AuctionDB defines the storage interface for the plate auction.
type AuctionDB interface {
	CreateUser(user *model.User) error
	GetUserByUsername(username string) (model.User, error)
	GetUserByID(id uint) (model.User, error)

	ListPlates(filter PlateFilter) ([]model.Plate, error)
	CreatePlate(plate *model.Plate) error
	GetPlate(id uint) (model.Plate, error)
	UpdatePlate(plate *model.Plate) error
	DeletePlate(id uint) error

	ListBidsByUser(userID uint) ([]model.Bid, error)
	GetBid(id uint) (model.Bid, error)
	GetBidByUserAndPlate(userID, plateID uint) (model.Bid, error)
	GetWinningBid(plateID uint) (model.Bid, error)
	RecordBidForPlate(bid *model.Bid) error
	UpdateBid(bid *model.Bid) error
	DeleteBid(id uint) error
}

// GormRepo is the relational implementation of AuctionDB. The unique indexes
// on users.username, plates.plate_number and bids(user_id, plate_id) are the
// source of truth for the uniqueness rules; the application-level checks only
// produce friendlier errors.
type GormRepo struct {
	db *gorm.DB
}

// NewGormRepo creates a repository over an open gorm connection.
func NewGormRepo(db *gorm.DB) *GormRepo {
	return &GormRepo{db: db}
}

// Migrate creates or updates the users, plates and bids tables.
func (r *GormRepo) Migrate() error {
	return r.db.AutoMigrate(&model.User{}, &model.Plate{}, &model.Bid{})
}

func (r *GormRepo) CreateUser(user *model.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("create user %s: %w", user.Username, auctionerrors.ErrDuplicateUsername)
		}
		return err
	}
	return nil
}

func (r *GormRepo) GetUserByUsername(username string) (model.User, error) {
	var user model.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.User{}, fmt.Errorf("get user %s: %w", username, auctionerrors.ErrUserNotFound)
		}
		return model.User{}, err
	}
	return user, nil
}

func (r *GormRepo) GetUserByID(id uint) (model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.User{}, fmt.Errorf("get user %d: %w", id, auctionerrors.ErrUserNotFound)
		}
		return model.User{}, err
	}
	return user, nil
}

func (r *GormRepo) ListPlates(filter PlateFilter) ([]model.Plate, error) {
	q := r.db.Where("is_active = ?", true)
	if filter.NumberContains != "" {
		q = q.Where("plate_number LIKE ?", "%"+filter.NumberContains+"%")
	}
	if filter.OrderByDeadline {
		q = q.Order("deadline ASC")
	}
	var plates []model.Plate
	if err := q.Find(&plates).Error; err != nil {
		return nil, err
	}
	return plates, nil
}

func (r *GormRepo) CreatePlate(plate *model.Plate) error {
	if err := r.db.Create(plate).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("create plate %s: %w", plate.PlateNumber, auctionerrors.ErrDuplicatePlate)
		}
		return err
	}
	return nil
}

func (r *GormRepo) GetPlate(id uint) (model.Plate, error) {
	var plate model.Plate
	if err := r.db.First(&plate, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Plate{}, fmt.Errorf("get plate %d: %w", id, auctionerrors.ErrPlateNotFound)
		}
		return model.Plate{}, err
	}
	return plate, nil
}

func (r *GormRepo) UpdatePlate(plate *model.Plate) error {
	// Save writes every field, matching the full-replace semantics of PUT.
	res := r.db.Save(plate)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("update plate %d: %w", plate.ID, auctionerrors.ErrDuplicatePlate)
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update plate %d: %w", plate.ID, auctionerrors.ErrPlateNotFound)
	}
	return nil
}

func (r *GormRepo) DeletePlate(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Bid{}).Where("plate_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("delete plate %d: %w", id, auctionerrors.ErrPlateHasBids)
		}
		res := tx.Delete(&model.Plate{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("delete plate %d: %w", id, auctionerrors.ErrPlateNotFound)
		}
		return nil
	})
}

func (r *GormRepo) ListBidsByUser(userID uint) ([]model.Bid, error) {
	var bids []model.Bid
	if err := r.db.Where("user_id = ?", userID).Find(&bids).Error; err != nil {
		return nil, err
	}
	return bids, nil
}

func (r *GormRepo) GetBid(id uint) (model.Bid, error) {
	var bid model.Bid
	if err := r.db.First(&bid, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Bid{}, fmt.Errorf("get bid %d: %w", id, auctionerrors.ErrBidNotFound)
		}
		return model.Bid{}, err
	}
	return bid, nil
}

func (r *GormRepo) GetBidByUserAndPlate(userID, plateID uint) (model.Bid, error) {
	var bid model.Bid
	err := r.db.Where("user_id = ? AND plate_id = ?", userID, plateID).First(&bid).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Bid{}, fmt.Errorf("get bid for user %d plate %d: %w", userID, plateID, auctionerrors.ErrBidNotFound)
		}
		return model.Bid{}, err
	}
	return bid, nil
}

func (r *GormRepo) GetWinningBid(plateID uint) (model.Bid, error) {
	var bid model.Bid
	err := r.db.Where("plate_id = ?", plateID).Order("amount DESC").First(&bid).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Bid{}, fmt.Errorf("get winning bid for plate %d: %w", plateID, auctionerrors.ErrNoBids)
		}
		return model.Bid{}, err
	}
	return bid, nil
}

// RecordBidForPlate inserts a bid with a guarded compare-and-insert: the row
// only lands when the amount strictly exceeds the current maximum for the
// plate, so concurrent placements cannot break monotonicity. The composite
// unique index rejects a second bid by the same user. The bound amount is a
// decimal that drivers bind as text; the CAST forces a numeric comparison on
// SQLite, where a bare text parameter would compare by storage class and
// defeat the guard.
func (r *GormRepo) RecordBidForPlate(bid *model.Bid) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(
			`INSERT INTO bids (amount, user_id, plate_id, created_at)
			 SELECT ?, ?, ?, ?
			 WHERE CAST(? AS NUMERIC) > COALESCE((SELECT MAX(CAST(amount AS NUMERIC)) FROM bids WHERE plate_id = ?), 0)`,
			bid.Amount, bid.UserID, bid.PlateID, bid.CreatedAt,
			bid.Amount, bid.PlateID,
		)
		if res.Error != nil {
			if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("record bid for plate %d: %w", bid.PlateID, auctionerrors.ErrAlreadyBid)
			}
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("record bid for plate %d: %w", bid.PlateID, auctionerrors.ErrBidTooLow)
		}
		return tx.Where("user_id = ? AND plate_id = ?", bid.UserID, bid.PlateID).First(bid).Error
	})
}

func (r *GormRepo) UpdateBid(bid *model.Bid) error {
	res := r.db.Save(bid)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update bid %d: %w", bid.ID, auctionerrors.ErrBidNotFound)
	}
	return nil
}

func (r *GormRepo) DeleteBid(id uint) error {
	res := r.db.Delete(&model.Bid{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete bid %d: %w", id, auctionerrors.ErrBidNotFound)
	}
	return nil
}
