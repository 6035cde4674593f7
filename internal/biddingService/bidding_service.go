package bidding

import (
	"errors"
	"fmt"
	"time"

	"autoplate/internal/auctionerrors"
	model "autoplate/internal/models"
	"autoplate/internal/repository"

	"github.com/shopspring/decimal"
)

// BiddingService defines the business logic for bidding on plates
type BiddingService struct {
	repo repository.AuctionDB
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(repo repository.AuctionDB) *BiddingService {
	return &BiddingService{repo: repo}
}

// PlaceBid validates and records a user's bid on a plate. The repository
// re-checks monotonicity and per-user uniqueness atomically, so the checks
// here only exist to produce precise errors before the write.
func (s *BiddingService) PlaceBid(userID, plateID uint, amount decimal.Decimal) (model.Bid, error) {
	if userID == 0 || plateID == 0 {
		return model.Bid{}, fmt.Errorf("service: %w - missing user or plate id", auctionerrors.ErrInvalidBid)
	}
	if !amount.IsPositive() {
		return model.Bid{}, fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidBid)
	}

	plate, err := s.repo.GetPlate(plateID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to place bid: %w", err)
	}
	if !plate.Open(time.Now().UTC()) {
		return model.Bid{}, fmt.Errorf("service: plate %d: %w", plateID, auctionerrors.ErrBiddingClosed)
	}

	if _, err := s.repo.GetBidByUserAndPlate(userID, plateID); err == nil {
		return model.Bid{}, fmt.Errorf("service: plate %d: %w", plateID, auctionerrors.ErrAlreadyBid)
	} else if !errors.Is(err, auctionerrors.ErrBidNotFound) {
		return model.Bid{}, fmt.Errorf("service: failed to check existing bid: %w", err)
	}

	winning, err := s.repo.GetWinningBid(plateID)
	if err == nil {
		if amount.LessThanOrEqual(winning.Amount) {
			return model.Bid{}, fmt.Errorf("service: %w - current highest bid is %s", auctionerrors.ErrBidTooLow, winning.Amount.StringFixed(2))
		}
	} else if !errors.Is(err, auctionerrors.ErrNoBids) {
		return model.Bid{}, fmt.Errorf("service: failed to check winning bid: %w", err)
	}

	bid := model.Bid{
		Amount:    amount,
		UserID:    userID,
		PlateID:   plateID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.RecordBidForPlate(&bid); err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to record bid for plate %d by user %d: %w", plateID, userID, err)
	}
	return bid, nil
}

// ListBidsForUser returns all bids placed by the given user.
func (s *BiddingService) ListBidsForUser(userID uint) ([]model.Bid, error) {
	if userID == 0 {
		return nil, fmt.Errorf("service: %w - empty user id", auctionerrors.ErrInvalidBid)
	}

	bids, err := s.repo.ListBidsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list bids for user %d: %w", userID, err)
	}
	return bids, nil
}

// GetBid returns one of the caller's bids. A bid belonging to another user
// and a missing bid are reported identically, so ids cannot be probed.
func (s *BiddingService) GetBid(callerID, id uint) (model.Bid, error) {
	bid, err := s.repo.GetBid(id)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrBidNotFound) {
			return model.Bid{}, fmt.Errorf("service: bid %d: %w", id, auctionerrors.ErrBidForbidden)
		}
		return model.Bid{}, fmt.Errorf("service: failed to get bid %d: %w", id, err)
	}
	if bid.UserID != callerID {
		return model.Bid{}, fmt.Errorf("service: bid %d: %w", id, auctionerrors.ErrBidForbidden)
	}
	return bid, nil
}

// UpdateBid replaces the amount of the caller's bid before the plate
// deadline. The new amount is deliberately not re-checked against the
// current highest bid, matching the reference behavior of bid revision.
func (s *BiddingService) UpdateBid(callerID, id uint, amount decimal.Decimal) (model.Bid, error) {
	if !amount.IsPositive() {
		return model.Bid{}, fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidBid)
	}

	bid, err := s.GetBid(callerID, id)
	if err != nil {
		return model.Bid{}, err
	}

	plate, err := s.repo.GetPlate(bid.PlateID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to get plate %d: %w", bid.PlateID, err)
	}
	if !time.Now().UTC().Before(plate.Deadline) {
		return model.Bid{}, fmt.Errorf("service: bid %d: %w", id, auctionerrors.ErrDeadlinePassed)
	}

	bid.Amount = amount
	if err := s.repo.UpdateBid(&bid); err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to update bid %d: %w", id, err)
	}
	return bid, nil
}

// DeleteBid withdraws the caller's bid before the plate deadline.
func (s *BiddingService) DeleteBid(callerID, id uint) error {
	bid, err := s.GetBid(callerID, id)
	if err != nil {
		return err
	}

	plate, err := s.repo.GetPlate(bid.PlateID)
	if err != nil {
		return fmt.Errorf("service: failed to get plate %d: %w", bid.PlateID, err)
	}
	if !time.Now().UTC().Before(plate.Deadline) {
		return fmt.Errorf("service: bid %d: %w", id, auctionerrors.ErrDeadlinePassed)
	}

	if err := s.repo.DeleteBid(bid.ID); err != nil {
		return fmt.Errorf("service: failed to delete bid %d: %w", id, err)
	}
	return nil
}
