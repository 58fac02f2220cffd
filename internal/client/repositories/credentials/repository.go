// Package credentials persists the bearer token and the last-known user
// profile across restarts. It is the only shared mutable state in the client.
package credentials

import (
	"context"

	"github.com/carebook/carebook/internal/client/models"
)

// Repository is the credential store contract.
//
// Save and Clear are atomic from the caller's perspective: there is no window
// where a token exists without a profile or vice versa.
type Repository interface {
	// Token returns the stored access token, or "" when none is stored.
	Token(ctx context.Context) (string, error)

	// Profile returns the stored user profile, or nil when none is stored.
	// A stored value that fails to deserialize is reported as an error.
	Profile(ctx context.Context) (*models.User, error)

	// Save writes token and profile together.
	Save(ctx context.Context, token string, profile *models.User) error

	// Clear removes both entries together.
	Clear(ctx context.Context) error
}
