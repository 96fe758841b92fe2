package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/fancyapps/users-service/internal/api/metrics"
	"github.com/fancyapps/users-service/internal/core/domain"
	"github.com/fancyapps/users-service/internal/core/ports"
)

// AppService manages the applications catalog. It is a thin orchestration
// over the repository; the interesting part is the discovery views, which
// return domain.AppListing so the launch URL never reaches a client.
type AppService struct {
	repo   ports.AppRepository
	logger zerolog.Logger
}

func NewAppService(repo ports.AppRepository, logger zerolog.Logger) *AppService {
	return &AppService{repo: repo, logger: logger}
}

func (s *AppService) Create(ctx context.Context, input ports.CreateAppInput) (*domain.Application, error) {
	app, err := s.repo.Create(ctx, &domain.Application{
		Name:        input.Name,
		Description: input.Description,
		URL:         input.URL,
	})
	if err != nil {
		return nil, err
	}

	metrics.AppsCreatedTotal.Inc()
	s.logger.Info().Str("app_id", app.ID).Str("name", app.Name).Msg("application created")
	return app, nil
}

func (s *AppService) List(ctx context.Context) ([]domain.Application, error) {
	return s.repo.FindAll(ctx)
}

func (s *AppService) Get(ctx context.Context, id string) (*domain.Application, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AppService) Update(ctx context.Context, id string, input ports.UpdateAppInput) (*domain.Application, error) {
	app, err := s.repo.Update(ctx, id, ports.AppPatch{
		Name:        input.Name,
		Description: input.Description,
		URL:         input.URL,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("app_id", app.ID).Msg("application updated")
	return app, nil
}

func (s *AppService) Delete(ctx context.Context, id string) (*domain.Application, error) {
	app, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("app_id", app.ID).Msg("application deleted")
	return app, nil
}

// DiscoverAll lists the catalog for non-admin consumption.
func (s *AppService) DiscoverAll(ctx context.Context) ([]domain.AppListing, error) {
	apps, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	listings := make([]domain.AppListing, 0, len(apps))
	for i := range apps {
		listings = append(listings, *apps[i].Listing())
	}
	return listings, nil
}

// DiscoverOne returns a single catalog entry without its URL.
func (s *AppService) DiscoverOne(ctx context.Context, id string) (*domain.AppListing, error) {
	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return app.Listing(), nil
}
