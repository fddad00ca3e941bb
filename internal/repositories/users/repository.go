package users

import (
	"context"

	"github.com/dmitrijs2005/weighttrack/internal/models"
)

// Repository describes persistence operations for user accounts.
type Repository interface {
	// Create inserts a new user and returns the assigned id.
	// Returns common.ErrorAlreadyExists if the username is taken.
	Create(ctx context.Context, user *models.User) (int64, error)

	// GetByUsername returns the user with the given username, or
	// common.ErrorNotFound.
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// DeleteByID removes a user; owned weight entries are removed by the
	// cascade. Returns the number of rows deleted (0 or 1).
	DeleteByID(ctx context.Context, id int64) (int64, error)
}
