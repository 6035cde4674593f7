package plates

import (
	"fmt"
	"time"

	"autoplate/internal/auctionerrors"
	model "autoplate/internal/models"
	"autoplate/internal/repository"
)

// PlateService defines the business logic for plate listings. Admin-only
// access to the mutating operations is enforced by the API layer.
type PlateService struct {
	repo repository.AuctionDB
}

// NewPlateService creates a new PlateService instance
func NewPlateService(repo repository.AuctionDB) *PlateService {
	return &PlateService{repo: repo}
}

// ListPlates returns active plates, optionally filtered by a plate-number
// substring and ordered by ascending deadline.
func (s *PlateService) ListPlates(filter repository.PlateFilter) ([]model.Plate, error) {
	plates, err := s.repo.ListPlates(filter)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list plates: %w", err)
	}
	return plates, nil
}

// CreatePlate registers a new listing owned by the calling admin. The
// deadline must be strictly in the future.
func (s *PlateService) CreatePlate(ownerID uint, number, description string, deadline time.Time) (model.Plate, error) {
	if !deadline.After(time.Now().UTC()) {
		return model.Plate{}, fmt.Errorf("service: plate %s: %w", number, auctionerrors.ErrPastDeadline)
	}

	plate := model.Plate{
		PlateNumber: number,
		Description: description,
		Deadline:    deadline,
		IsActive:    true,
		OwnerID:     ownerID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.CreatePlate(&plate); err != nil {
		return model.Plate{}, fmt.Errorf("service: failed to create plate %s: %w", number, err)
	}
	return plate, nil
}

// GetPlate returns a single plate by id.
func (s *PlateService) GetPlate(id uint) (model.Plate, error) {
	plate, err := s.repo.GetPlate(id)
	if err != nil {
		return model.Plate{}, fmt.Errorf("service: failed to get plate %d: %w", id, err)
	}
	return plate, nil
}

// UpdatePlate replaces the mutable fields of a plate wholesale. Clearing
// is_active archives the listing.
func (s *PlateService) UpdatePlate(id uint, number, description string, deadline time.Time, isActive bool) (model.Plate, error) {
	plate, err := s.repo.GetPlate(id)
	if err != nil {
		return model.Plate{}, fmt.Errorf("service: failed to get plate %d: %w", id, err)
	}

	plate.PlateNumber = number
	plate.Description = description
	plate.Deadline = deadline
	plate.IsActive = isActive
	if err := s.repo.UpdatePlate(&plate); err != nil {
		return model.Plate{}, fmt.Errorf("service: failed to update plate %d: %w", id, err)
	}
	return plate, nil
}

// DeletePlate removes a listing. Deletion is blocked while any bid
// references the plate.
func (s *PlateService) DeletePlate(id uint) error {
	if err := s.repo.DeletePlate(id); err != nil {
		return fmt.Errorf("service: failed to delete plate %d: %w", id, err)
	}
	return nil
}
