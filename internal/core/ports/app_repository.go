package ports

import (
	"context"

	"github.com/fancyapps/users-service/internal/core/domain"
)

// AppRepository persists the applications catalog.
// Lookups return domain.ErrAppNotFound for absent entries and a
// domain.StorageError on store failure.
type AppRepository interface {
	Create(ctx context.Context, app *domain.Application) (*domain.Application, error)
	FindAll(ctx context.Context) ([]domain.Application, error)
	FindByID(ctx context.Context, id string) (*domain.Application, error)
	Update(ctx context.Context, id string, patch AppPatch) (*domain.Application, error)
	Delete(ctx context.Context, id string) (*domain.Application, error)
}

// AppPatch carries the mutable fields of an application. Nil means "leave
// unchanged" so partial updates do not clobber existing values.
type AppPatch struct {
	Name        *string
	Description *string
	URL         *string
}
