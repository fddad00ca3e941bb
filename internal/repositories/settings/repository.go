package settings

import "context"

// Well-known setting keys.
const (
	// KeyInstallationID is a random identifier assigned on first open.
	KeyInstallationID = "installation_id"

	// KeyLastUsername is the username of the last successful login, used to
	// pre-fill the login prompt.
	KeyLastUsername = "last_username"
)

// Repository is a small key/value store for local application state.
type Repository interface {
	// Get returns the value for key, or "" if the key is not set.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key if present.
	Delete(ctx context.Context, key string) error
}
