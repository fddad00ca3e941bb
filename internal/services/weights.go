package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/weighttrack/internal/common"
	"github.com/dmitrijs2005/weighttrack/internal/logging"
	"github.com/dmitrijs2005/weighttrack/internal/models"
	"github.com/dmitrijs2005/weighttrack/internal/repositories/weights"
	"github.com/dmitrijs2005/weighttrack/internal/validate"
)

// WeightService manages weight entries on behalf of an authenticated user.
type WeightService struct {
	weights weights.Repository
	log     logging.Logger
}

func NewWeightService(repo weights.Repository, log logging.Logger) *WeightService {
	return &WeightService{weights: repo, log: log}
}

func checkEntry(value float64, notes string) error {
	if !validate.Weight(value) {
		return fmt.Errorf("%w: weight must be greater than 0 and less than 1000", common.ErrorValidation)
	}
	if !validate.Note(notes) {
		return fmt.Errorf("%w: notes exceed %d characters", common.ErrorValidation, validate.MaxNoteLength)
	}
	return nil
}

// Add stores a new entry for userID and returns its id. The date is stored
// as supplied (YYYY-MM-DD by convention; format enforcement is the caller's
// concern).
func (s *WeightService) Add(ctx context.Context, userID int64, value float64, date, notes string) (int64, error) {
	if err := checkEntry(value, notes); err != nil {
		return 0, err
	}

	id, err := s.weights.Create(ctx, &models.WeightEntry{
		UserID: userID,
		Weight: value,
		Date:   date,
		Notes:  notes,
	})
	if err != nil {
		return 0, err
	}

	s.log.Debug(ctx, "weight entry added", "user_id", userID, "weight_id", id)
	return id, nil
}

// Update rewrites an existing entry and returns the number of rows changed
// (0 when no entry has the given id).
func (s *WeightService) Update(ctx context.Context, weightID int64, value float64, date, notes string) (int64, error) {
	if err := checkEntry(value, notes); err != nil {
		return 0, err
	}

	return s.weights.Update(ctx, &models.WeightEntry{
		ID:     weightID,
		Weight: value,
		Date:   date,
		Notes:  notes,
	})
}

// Delete removes an entry by id, returning the number of rows deleted.
func (s *WeightService) Delete(ctx context.Context, weightID int64) (int64, error) {
	return s.weights.Delete(ctx, weightID)
}

// List returns all entries of userID, newest date first.
func (s *WeightService) List(ctx context.Context, userID int64) ([]models.WeightEntry, error) {
	return s.weights.ListByUser(ctx, userID)
}

// Get returns a single entry or common.ErrorNotFound.
func (s *WeightService) Get(ctx context.Context, weightID int64) (*models.WeightEntry, error) {
	return s.weights.GetByID(ctx, weightID)
}
