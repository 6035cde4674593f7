package repository

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"autoplate/internal/auctionerrors"
	model "autoplate/internal/models"

	"github.com/shopspring/decimal"
)

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB.
// It enforces the same uniqueness and monotonicity rules as the relational
// schema, which keeps tests and local runs honest.
type MemoryRepo struct {
	mu     sync.RWMutex
	users  map[uint]model.User
	plates map[uint]model.Plate
	bids   map[uint]model.Bid

	nextUserID  uint
	nextPlateID uint
	nextBidID   uint
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		users:  make(map[uint]model.User),
		plates: make(map[uint]model.Plate),
		bids:   make(map[uint]model.Bid),
	}
}

func (r *MemoryRepo) CreateUser(user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return fmt.Errorf("create user %s: %w", user.Username, auctionerrors.ErrDuplicateUsername)
		}
	}

	r.nextUserID++
	user.ID = r.nextUserID
	r.users[user.ID] = *user
	return nil
}

func (r *MemoryRepo) GetUserByUsername(username string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return model.User{}, fmt.Errorf("get user %s: %w", username, auctionerrors.ErrUserNotFound)
}

func (r *MemoryRepo) GetUserByID(id uint) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return model.User{}, fmt.Errorf("get user %d: %w", id, auctionerrors.ErrUserNotFound)
	}
	return user, nil
}

func (r *MemoryRepo) ListPlates(filter PlateFilter) ([]model.Plate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plates := make([]model.Plate, 0, len(r.plates))
	for _, p := range r.plates {
		if !p.IsActive {
			continue
		}
		if filter.NumberContains != "" && !strings.Contains(p.PlateNumber, filter.NumberContains) {
			continue
		}
		plates = append(plates, p)
	}

	if filter.OrderByDeadline {
		sort.Slice(plates, func(i, j int) bool { return plates[i].Deadline.Before(plates[j].Deadline) })
	} else {
		sort.Slice(plates, func(i, j int) bool { return plates[i].ID < plates[j].ID })
	}
	return plates, nil
}

func (r *MemoryRepo) CreatePlate(plate *model.Plate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.plates {
		if p.PlateNumber == plate.PlateNumber {
			return fmt.Errorf("create plate %s: %w", plate.PlateNumber, auctionerrors.ErrDuplicatePlate)
		}
	}

	r.nextPlateID++
	plate.ID = r.nextPlateID
	r.plates[plate.ID] = *plate
	return nil
}

func (r *MemoryRepo) GetPlate(id uint) (model.Plate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plate, ok := r.plates[id]
	if !ok {
		return model.Plate{}, fmt.Errorf("get plate %d: %w", id, auctionerrors.ErrPlateNotFound)
	}
	return plate, nil
}

func (r *MemoryRepo) UpdatePlate(plate *model.Plate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.plates[plate.ID]; !ok {
		return fmt.Errorf("update plate %d: %w", plate.ID, auctionerrors.ErrPlateNotFound)
	}
	for _, p := range r.plates {
		if p.ID != plate.ID && p.PlateNumber == plate.PlateNumber {
			return fmt.Errorf("update plate %d: %w", plate.ID, auctionerrors.ErrDuplicatePlate)
		}
	}
	r.plates[plate.ID] = *plate
	return nil
}

func (r *MemoryRepo) DeletePlate(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.plates[id]; !ok {
		return fmt.Errorf("delete plate %d: %w", id, auctionerrors.ErrPlateNotFound)
	}
	for _, b := range r.bids {
		if b.PlateID == id {
			return fmt.Errorf("delete plate %d: %w", id, auctionerrors.ErrPlateHasBids)
		}
	}
	delete(r.plates, id)
	return nil
}

func (r *MemoryRepo) ListBidsByUser(userID uint) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids := make([]model.Bid, 0)
	for _, b := range r.bids {
		if b.UserID == userID {
			bids = append(bids, b)
		}
	}
	sort.Slice(bids, func(i, j int) bool { return bids[i].ID < bids[j].ID })
	return bids, nil
}

func (r *MemoryRepo) GetBid(id uint) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bid, ok := r.bids[id]
	if !ok {
		return model.Bid{}, fmt.Errorf("get bid %d: %w", id, auctionerrors.ErrBidNotFound)
	}
	return bid, nil
}

func (r *MemoryRepo) GetBidByUserAndPlate(userID, plateID uint) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.bids {
		if b.UserID == userID && b.PlateID == plateID {
			return b, nil
		}
	}
	return model.Bid{}, fmt.Errorf("get bid for user %d plate %d: %w", userID, plateID, auctionerrors.ErrBidNotFound)
}

func (r *MemoryRepo) GetWinningBid(plateID uint) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bid, ok := r.winningBidLocked(plateID)
	if !ok {
		return model.Bid{}, fmt.Errorf("get winning bid for plate %d: %w", plateID, auctionerrors.ErrNoBids)
	}
	return bid, nil
}

func (r *MemoryRepo) winningBidLocked(plateID uint) (model.Bid, bool) {
	var winning model.Bid
	found := false
	for _, b := range r.bids {
		if b.PlateID != plateID {
			continue
		}
		if !found || b.Amount.GreaterThan(winning.Amount) {
			winning = b
			found = true
		}
	}
	return winning, found
}

// RecordBidForPlate applies the same compare-and-insert rule as the SQL
// implementation under a single lock: the amount must strictly exceed the
// current maximum for the plate (or zero when no bids exist), and a user may
// hold at most one bid per plate.
func (r *MemoryRepo) RecordBidForPlate(bid *model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.plates[bid.PlateID]; !ok {
		return fmt.Errorf("record bid for plate %d: %w", bid.PlateID, auctionerrors.ErrPlateNotFound)
	}
	for _, b := range r.bids {
		if b.UserID == bid.UserID && b.PlateID == bid.PlateID {
			return fmt.Errorf("record bid for plate %d: %w", bid.PlateID, auctionerrors.ErrAlreadyBid)
		}
	}

	floor := decimal.Zero
	if winning, ok := r.winningBidLocked(bid.PlateID); ok {
		floor = winning.Amount
	}
	if !bid.Amount.GreaterThan(floor) {
		return fmt.Errorf("record bid for plate %d: %w", bid.PlateID, auctionerrors.ErrBidTooLow)
	}

	r.nextBidID++
	bid.ID = r.nextBidID
	r.bids[bid.ID] = *bid
	return nil
}

func (r *MemoryRepo) UpdateBid(bid *model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bids[bid.ID]; !ok {
		return fmt.Errorf("update bid %d: %w", bid.ID, auctionerrors.ErrBidNotFound)
	}
	r.bids[bid.ID] = *bid
	return nil
}

func (r *MemoryRepo) DeleteBid(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bids[id]; !ok {
		return fmt.Errorf("delete bid %d: %w", id, auctionerrors.ErrBidNotFound)
	}
	delete(r.bids, id)
	return nil
}
