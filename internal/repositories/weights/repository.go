package weights

import (
	"context"

	"github.com/dmitrijs2005/weighttrack/internal/models"
)

// Repository describes persistence operations for weight entries.
type Repository interface {
	// Create inserts a new entry and returns the assigned id. An unknown
	// owner surfaces as common.ErrorNotFound, an out-of-range value hitting
	// the CHECK constraints as common.ErrorValidation.
	Create(ctx context.Context, entry *models.WeightEntry) (int64, error)

	// Update rewrites weight, date and notes of the entry with the given id.
	// Returns the number of rows changed (0 or 1).
	Update(ctx context.Context, entry *models.WeightEntry) (int64, error)

	// Delete removes an entry by id, returning the number of rows deleted.
	Delete(ctx context.Context, id int64) (int64, error)

	// GetByID returns a single entry or common.ErrorNotFound.
	GetByID(ctx context.Context, id int64) (*models.WeightEntry, error)

	// ListByUser returns all entries owned by userID, newest date first.
	ListByUser(ctx context.Context, userID int64) ([]models.WeightEntry, error)
}
