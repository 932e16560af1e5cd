package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bazaar/config"
	"bazaar/internal/domain/constants"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	"bazaar/internal/seed"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type locationServiceMocks struct {
	txManager    *mockRepo.MockTransactionManager
	locationRepo *mockRepo.MockLocationRepository
}

func newLocationServiceForTest(t *testing.T) (usecase.LocationUsecase, *locationServiceMocks) {
	t.Helper()

	m := &locationServiceMocks{
		txManager:    mockRepo.NewMockTransactionManager(t),
		locationRepo: mockRepo.NewMockLocationRepository(t),
	}

	service := NewLocationService(LocationServiceParams{
		TxManager:    m.txManager,
		LocationRepo: m.locationRepo,
		Config:       &config.Config{},
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return service, m
}

func TestLocationService_Create_Success(t *testing.T) {
	service, m := newLocationServiceForTest(t)

	ctx := context.Background()

	m.locationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Location")).
		Return(nil)

	location, err := service.Create(ctx, &usecase.CreateLocationInput{
		Name:  "Wuse Market",
		Type:  entity.LocationTypeMarket.String(),
		State: "FCT",
		Lga:   "Abuja Municipal",
		Area:  "Wuse",
		Coordinates: &usecase.CoordinatesInput{
			Longitude: 7.4627,
			Latitude:  9.0765,
		},
	})
	require.NoError(t, err)
	require.NotNil(t, location)
	assert.Equal(t, entity.LocationTypeMarket, location.Type)
	assert.True(t, location.IsActive)
	assert.Equal(t, orb.Point{7.4627, 9.0765}, location.Point)
}

func TestLocationService_Create_UnknownType(t *testing.T) {
	service, _ := newLocationServiceForTest(t)

	location, err := service.Create(context.Background(), &usecase.CreateLocationInput{
		Name: "Nowhere",
		Type: "asteroid",
	})
	require.Error(t, err)
	assert.Nil(t, location)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestLocationService_FindAll_ClampsPagination(t *testing.T) {
	service, m := newLocationServiceForTest(t)

	ctx := context.Background()

	m.locationRepo.EXPECT().
		FindAll(ctx, repository.LocationFilter{
			Page:  constants.DefaultPage,
			Limit: constants.MaxLimit,
			State: "Lagos",
		}).
		Return([]*entity.Location{{ID: uuid.New()}}, 1, nil)

	page, err := service.FindAll(ctx, &usecase.LocationQuery{
		Page:  -3,
		Limit: 9999,
		State: "Lagos",
	})
	require.NoError(t, err)
	assert.Len(t, page.Locations, 1)
}

func TestLocationService_FindAll_DefaultLimit(t *testing.T) {
	service, m := newLocationServiceForTest(t)

	ctx := context.Background()

	m.locationRepo.EXPECT().
		FindAll(ctx, repository.LocationFilter{
			Page:  constants.DefaultPage,
			Limit: constants.DefaultLimitWide,
		}).
		Return([]*entity.Location{}, 0, nil)

	page, err := service.FindAll(ctx, &usecase.LocationQuery{})
	require.NoError(t, err)
	assert.Empty(t, page.Locations)
	assert.Equal(t, int64(0), page.Pages)
}

func TestLocationService_FindAll_ProximityFilter(t *testing.T) {
	service, m := newLocationServiceForTest(t)

	ctx := context.Background()
	latitude := 6.5244
	longitude := 3.3792

	m.locationRepo.EXPECT().
		FindAll(ctx, repository.LocationFilter{
			Page:  constants.DefaultPage,
			Limit: constants.DefaultLimitWide,
			Near: &repository.GeoFilter{
				Point:    orb.Point{longitude, latitude},
				RadiusKm: constants.DefaultRadiusKm,
			},
		}).
		Return([]*entity.Location{}, 0, nil)

	_, err := service.FindAll(ctx, &usecase.LocationQuery{
		Latitude:  &latitude,
		Longitude: &longitude,
	})
	require.NoError(t, err)
}

func TestLocationService_FindNearby_DefaultRadius(t *testing.T) {
	service, m := newLocationServiceForTest(t)

	ctx := context.Background()
	point := orb.Point{3.3792, 6.5244}

	m.locationRepo.EXPECT().
		FindNearby(ctx, point, constants.DefaultRadiusKm).
		Return([]*entity.Location{{ID: uuid.New()}}, nil)

	locations, err := service.FindNearby(ctx, point[0], point[1], -5)
	require.NoError(t, err)
	assert.Len(t, locations, 1)
}

func TestLocationService_Update_NotFound(t *testing.T) {
	service, m := newLocationServiceForTest(t)

	ctx := context.Background()
	locationID := uuid.New()

	m.locationRepo.EXPECT().
		FindByID(ctx, locationID).
		Return(nil, repository.ErrLocationNotFound)

	name := "Renamed"
	location, err := service.Update(ctx, locationID, &usecase.UpdateLocationInput{Name: &name})
	require.Error(t, err)
	assert.Nil(t, location)
	assert.ErrorIs(t, err, domainerrors.ErrLocationNotFound)
}

func TestLocationService_States_CoversFederation(t *testing.T) {
	service, _ := newLocationServiceForTest(t)

	states := service.States()
	assert.Len(t, states, len(seed.States))
	assert.Contains(t, states, "Lagos")
	assert.Contains(t, states, "FCT")
}

func TestLocationService_Seed_SkipsWhenPopulated(t *testing.T) {
	service, m := newLocationServiceForTest(t)

	ctx := context.Background()

	m.locationRepo.EXPECT().
		Count(ctx).
		Return(42, nil)

	err := service.Seed(ctx)
	require.NoError(t, err)
}

func TestLocationService_Seed_BulkInsertsWhenEmpty(t *testing.T) {
	service, m := newLocationServiceForTest(t)

	ctx := context.Background()

	m.locationRepo.EXPECT().
		Count(ctx).
		Return(0, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().LocationRepo().Return(m.locationRepo)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	m.locationRepo.EXPECT().
		BulkCreate(ctx, mock.MatchedBy(func(locations []*entity.Location) bool {
			return len(locations) == len(seed.Locations)
		})).
		Return(nil)

	err := service.Seed(ctx)
	require.NoError(t, err)
}

func TestLocationService_IncrementVendorCount(t *testing.T) {
	service, m := newLocationServiceForTest(t)

	ctx := context.Background()
	locationID := uuid.New()

	m.locationRepo.EXPECT().
		IncrementVendorCount(ctx, locationID, 1).
		Return(nil)

	err := service.IncrementVendorCount(ctx, locationID, 1)
	require.NoError(t, err)
}

func TestNormalizePagination(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{name: "defaults", page: 0, limit: 0, wantPage: 1, wantLimit: 10},
		{name: "negative page", page: -1, limit: 5, wantPage: 1, wantLimit: 5},
		{name: "over max limit", page: 3, limit: 500, wantPage: 3, wantLimit: 100},
		{name: "within bounds", page: 2, limit: 25, wantPage: 2, wantLimit: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := normalizePagination(tt.page, tt.limit, constants.DefaultLimit)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, int64(0), totalPages(0, 10))
	assert.Equal(t, int64(1), totalPages(1, 10))
	assert.Equal(t, int64(1), totalPages(10, 10))
	assert.Equal(t, int64(2), totalPages(11, 10))
	assert.Equal(t, int64(0), totalPages(5, 0))
}
