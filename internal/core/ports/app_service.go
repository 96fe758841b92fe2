package ports

import (
	"context"

	"github.com/fancyapps/users-service/internal/core/domain"
)

// CreateAppInput is the payload for adding an application to the catalog.
type CreateAppInput struct {
	Name        string
	Description string
	URL         string
}

// UpdateAppInput patches an existing application; nil fields are untouched.
type UpdateAppInput struct {
	Name        *string
	Description *string
	URL         *string
}

// AppService manages the applications catalog. The Create/List/Get/Update/
// Delete operations expose the full record and are admin-only; the Discover
// operations return listings with the URL structurally withheld and are open
// to clients as well.
type AppService interface {
	Create(ctx context.Context, input CreateAppInput) (*domain.Application, error)
	List(ctx context.Context) ([]domain.Application, error)
	Get(ctx context.Context, id string) (*domain.Application, error)
	Update(ctx context.Context, id string, input UpdateAppInput) (*domain.Application, error)
	Delete(ctx context.Context, id string) (*domain.Application, error)
	DiscoverAll(ctx context.Context) ([]domain.AppListing, error)
	DiscoverOne(ctx context.Context, id string) (*domain.AppListing, error)
}
