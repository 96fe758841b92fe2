package ports

import (
	"context"

	"github.com/fancyapps/users-service/internal/core/domain"
)

// UserRepository is the credential store consumed by the auth core.
//
// Lookups return domain.ErrUserNotFound for an absent record and a
// domain.StorageError when the store itself fails; implementations must never
// return the same value for both. Create must rely on the store's unique
// email constraint and surface a duplicate as domain.ErrEmailExists, which is
// what makes concurrent registration race-safe.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
