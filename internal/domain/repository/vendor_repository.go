package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// ErrVendorNotFound is returned when a vendor record does not exist.
var ErrVendorNotFound = errors.New("vendor not found")

// ErrDuplicateVendor is returned when the one-vendor-per-user constraint is violated.
var ErrDuplicateVendor = errors.New("vendor profile already exists for this user")

// VendorFilter narrows and paginates vendor listings.
type VendorFilter struct {
	Page       int
	Limit      int
	Status     entity.VendorStatus
	VendorType entity.VendorType
	LocationID *uuid.UUID
	State      string
	Lga        string
	Area       string
	Search     string
	Category   string
	IsOpen     *bool
	Near       *GeoFilter
}

// VendorRepository is the persistence contract for vendor profiles.
type VendorRepository interface {
	Create(ctx context.Context, vendor *entity.Vendor) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error)
	// FindByUserID returns nil, ErrVendorNotFound when the user has no profile.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Vendor, error)
	FindAll(ctx context.Context, filter VendorFilter) ([]*entity.Vendor, int64, error)
	FindByLocation(ctx context.Context, locationID uuid.UUID, status entity.VendorStatus) ([]*entity.Vendor, error)
	// FindNearby returns vendors of the given status with coordinates within
	// radiusKm of point, ordered by ascending geodesic distance.
	FindNearby(ctx context.Context, point orb.Point, radiusKm float64, status entity.VendorStatus) ([]*entity.Vendor, error)
	Update(ctx context.Context, vendor *entity.Vendor) error
	Delete(ctx context.Context, id uuid.UUID) error
	// IncrementGoodsCount applies an atomic delta to the denormalized goods counter.
	IncrementGoodsCount(ctx context.Context, id uuid.UUID, delta int) error
	DistinctCategories(ctx context.Context, status entity.VendorStatus) ([]string, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status entity.VendorStatus) (int64, error)
	// RecountGoods recomputes every vendor's goods counter from the goods table.
	RecountGoods(ctx context.Context) error
}
