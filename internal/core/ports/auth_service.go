package ports

import (
	"context"

	"github.com/fancyapps/users-service/internal/core/domain"
)

type AuthService interface {
	// Register creates a CLIENT account. The role is never caller-supplied.
	Register(ctx context.Context, email, password string) (*domain.PublicUser, error)
	// Login verifies credentials and returns a signed access token.
	Login(ctx context.Context, email, password string) (string, error)
	// ValidateRoleClaim re-checks a token's embedded role against the store,
	// rejecting tokens whose role has since been changed.
	ValidateRoleClaim(ctx context.Context, userID, claimedRole string) (*domain.PublicUser, error)
}
