// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"math"
	"time"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/constants"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/seed"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// locationService implements the LocationUsecase interface.
type locationService struct {
	txManager    repository.TransactionManager
	locationRepo repository.LocationRepository
	config       *config.Config
	logger       *slog.Logger
}

// LocationServiceParams holds dependencies for LocationService, injected by Fx.
type LocationServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	LocationRepo repository.LocationRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewLocationService is the constructor for locationService.
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	return &locationService{
		txManager:    params.TxManager,
		locationRepo: params.LocationRepo,
		config:       params.Config,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *locationService) Create(ctx context.Context, input *usecase.CreateLocationInput) (*entity.Location, error) {
	locationType := entity.LocationType(input.Type)
	if !locationType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown location type: " + input.Type)
	}

	now := time.Now()
	location := &entity.Location{
		ID:           uuid.New(),
		Name:         input.Name,
		Type:         locationType,
		State:        input.State,
		Lga:          input.Lga,
		Area:         input.Area,
		Address:      input.Address,
		Description:  input.Description,
		IsActive:     true,
		Images:       input.Images,
		OpeningHours: input.OpeningHours,
		ContactPhone: input.ContactPhone,
		ContactEmail: input.ContactEmail,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if input.Coordinates != nil {
		location.Point = orb.Point{input.Coordinates.Longitude, input.Coordinates.Latitude}
	}

	if err := srv.locationRepo.Create(ctx, location); err != nil {
		srv.log(ctx).Error("Failed to create location", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create location")
	}

	srv.log(ctx).Debug("Location created", slog.Any("locationID", location.ID))

	return location, nil
}

func (srv *locationService) FindAll(ctx context.Context, query *usecase.LocationQuery) (*usecase.LocationPage, error) {
	page, limit := normalizePagination(query.Page, query.Limit, constants.DefaultLimitWide)

	filter := repository.LocationFilter{
		Page:   page,
		Limit:  limit,
		Type:   entity.LocationType(query.Type),
		State:  query.State,
		Lga:    query.Lga,
		Area:   query.Area,
		Search: query.Search,
	}
	if query.Latitude != nil && query.Longitude != nil {
		radius := query.RadiusKm
		if radius <= 0 {
			radius = constants.DefaultRadiusKm
		}
		filter.Near = &repository.GeoFilter{
			Point:    orb.Point{*query.Longitude, *query.Latitude},
			RadiusKm: radius,
		}
	}

	locations, total, err := srv.locationRepo.FindAll(ctx, filter)
	if err != nil {
		srv.log(ctx).Error("Failed to list locations", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list locations")
	}

	return &usecase.LocationPage{
		Locations: locations,
		Total:     total,
		Pages:     totalPages(total, limit),
	}, nil
}

func (srv *locationService) FindOne(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	location, err := srv.locationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by ID")
	}

	return location, nil
}

func (srv *locationService) FindByState(ctx context.Context, state string) ([]*entity.Location, error) {
	locations, err := srv.locationRepo.FindByState(ctx, state)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find locations by state")
	}

	return locations, nil
}

func (srv *locationService) FindNearby(ctx context.Context, longitude, latitude, radiusKm float64) ([]*entity.Location, error) {
	if radiusKm <= 0 {
		radiusKm = constants.DefaultRadiusKm
	}

	locations, err := srv.locationRepo.FindNearby(ctx, orb.Point{longitude, latitude}, radiusKm)
	if err != nil {
		srv.log(ctx).Error("Failed to find nearby locations", slog.Float64("radiusKm", radiusKm), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find nearby locations")
	}

	return locations, nil
}

func (srv *locationService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateLocationInput) (*entity.Location, error) {
	location, err := srv.locationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by ID")
	}

	if err := applyLocationUpdates(location, input); err != nil {
		return nil, err
	}
	location.UpdatedAt = time.Now()

	if err := srv.locationRepo.Update(ctx, location); err != nil {
		srv.log(ctx).Error("Failed to update location", slog.Any("locationID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update location")
	}

	return location, nil
}

func applyLocationUpdates(location *entity.Location, input *usecase.UpdateLocationInput) error {
	if input.Type != nil {
		locationType := entity.LocationType(*input.Type)
		if !locationType.IsValid() {
			return domainerrors.ErrValidationFailed.WrapMessage("unknown location type: " + *input.Type)
		}
		location.Type = locationType
	}
	if input.Name != nil {
		location.Name = *input.Name
	}
	if input.State != nil {
		location.State = *input.State
	}
	if input.Lga != nil {
		location.Lga = *input.Lga
	}
	if input.Area != nil {
		location.Area = *input.Area
	}
	if input.Address != nil {
		location.Address = *input.Address
	}
	if input.Description != nil {
		location.Description = *input.Description
	}
	if input.Coordinates != nil {
		location.Point = orb.Point{input.Coordinates.Longitude, input.Coordinates.Latitude}
	}
	if input.IsActive != nil {
		location.IsActive = *input.IsActive
	}
	if input.OpeningHours != nil {
		location.OpeningHours = *input.OpeningHours
	}
	if input.ContactPhone != nil {
		location.ContactPhone = *input.ContactPhone
	}
	if input.ContactEmail != nil {
		location.ContactEmail = *input.ContactEmail
	}

	return nil
}

func (srv *locationService) Remove(ctx context.Context, id uuid.UUID) error {
	if err := srv.locationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return domainerrors.ErrLocationNotFound
		}

		return errors.Wrap(err, "failed to delete location")
	}

	return nil
}

func (srv *locationService) States() []string {
	return seed.States
}

func (srv *locationService) StateStats(ctx context.Context) ([]entity.StateCount, error) {
	stats, err := srv.locationRepo.StateStats(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate state stats")
	}

	return stats, nil
}

func (srv *locationService) IncrementVendorCount(ctx context.Context, id uuid.UUID, delta int) error {
	if err := srv.locationRepo.IncrementVendorCount(ctx, id, delta); err != nil {
		return errors.Wrap(err, "failed to increment vendor count")
	}

	return nil
}

// Seed bulk-inserts the reference dataset when the registry is empty. The
// emptiness check is re-done inside the transaction so concurrent starters
// cannot double-seed.
func (srv *locationService) Seed(ctx context.Context) error {
	count, err := srv.locationRepo.Count(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to count locations before seeding")
	}
	if count > 0 {
		return nil
	}

	srv.log(ctx).Info("Seeding locations", slog.Int("count", len(seed.Locations)))

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		locationRepo := repoFactory.LocationRepo()

		current, err := locationRepo.Count(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to count locations")
		}
		if current > 0 {
			return nil
		}

		now := time.Now()
		locations := make([]*entity.Location, 0, len(seed.Locations))
		for i := range seed.Locations {
			location := seed.Locations[i]
			location.ID = uuid.New()
			location.CreatedAt = now
			location.UpdatedAt = now
			locations = append(locations, &location)
		}

		return locationRepo.BulkCreate(ctx, locations)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to seed locations", slog.Any("error", err))

		return errors.Wrap(err, "failed to seed locations")
	}

	return nil
}

// normalizePagination clamps page and limit to the accepted bounds.
func normalizePagination(page, limit, defaultLimit int) (int, int) {
	if page < constants.DefaultPage {
		page = constants.DefaultPage
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > constants.MaxLimit {
		limit = constants.MaxLimit
	}

	return page, limit
}

// totalPages computes the page count for a listing.
func totalPages(total int64, limit int) int64 {
	if limit <= 0 {
		return 0
	}

	return int64(math.Ceil(float64(total) / float64(limit)))
}
