package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// ErrLocationNotFound is returned when a location record does not exist.
var ErrLocationNotFound = errors.New("location not found")

// GeoFilter restricts a listing to entities within RadiusKm of a point.
// Results must come back ordered by ascending distance from the point.
type GeoFilter struct {
	Point    orb.Point // [longitude, latitude]
	RadiusKm float64
}

// LocationFilter narrows and paginates location listings.
type LocationFilter struct {
	Page   int
	Limit  int
	Type   entity.LocationType
	State  string
	Lga    string
	Area   string
	Search string
	Near   *GeoFilter
}

// LocationRepository is the persistence contract for geocoded places.
type LocationRepository interface {
	Create(ctx context.Context, location *entity.Location) error
	BulkCreate(ctx context.Context, locations []*entity.Location) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)
	FindAll(ctx context.Context, filter LocationFilter) ([]*entity.Location, int64, error)
	FindByState(ctx context.Context, state string) ([]*entity.Location, error)
	// FindNearby returns active locations within radiusKm of point, ordered by
	// ascending geodesic distance. Ordering and the cutoff are delegated to the
	// store's geospatial index.
	FindNearby(ctx context.Context, point orb.Point, radiusKm float64) ([]*entity.Location, error)
	Update(ctx context.Context, location *entity.Location) error
	Delete(ctx context.Context, id uuid.UUID) error
	// IncrementVendorCount applies an atomic delta to the denormalized vendor
	// counter. It must never be implemented as read-modify-write.
	IncrementVendorCount(ctx context.Context, id uuid.UUID, delta int) error
	Count(ctx context.Context) (int64, error)
	StateStats(ctx context.Context) ([]entity.StateCount, error)
	// RecountVendors recomputes every location's vendor counter from the vendor
	// table. Used by the operator-triggered reconciliation path.
	RecountVendors(ctx context.Context) error
}
