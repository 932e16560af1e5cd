// Package usecase defines the application's business-logic interfaces and
// their input/output types.
package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// CoordinatesInput is a latitude/longitude pair as callers supply it.
type CoordinatesInput struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// CreateLocationInput carries the fields for registering a new place.
type CreateLocationInput struct {
	Name         string            `json:"name"`
	Type         string            `json:"type"`
	State        string            `json:"state"`
	Lga          string            `json:"lga"`
	Area         string            `json:"area"`
	Address      string            `json:"address,omitempty"`
	Description  string            `json:"description,omitempty"`
	Coordinates  *CoordinatesInput `json:"coordinates,omitempty"`
	Images       []string          `json:"images,omitempty"`
	OpeningHours string            `json:"opening_hours,omitempty"`
	ContactPhone string            `json:"contact_phone,omitempty"`
	ContactEmail string            `json:"contact_email,omitempty"`
}

// UpdateLocationInput carries a partial patch; nil fields are untouched.
type UpdateLocationInput struct {
	Name         *string           `json:"name,omitempty"`
	Type         *string           `json:"type,omitempty"`
	State        *string           `json:"state,omitempty"`
	Lga          *string           `json:"lga,omitempty"`
	Area         *string           `json:"area,omitempty"`
	Address      *string           `json:"address,omitempty"`
	Description  *string           `json:"description,omitempty"`
	Coordinates  *CoordinatesInput `json:"coordinates,omitempty"`
	IsActive     *bool             `json:"is_active,omitempty"`
	OpeningHours *string           `json:"opening_hours,omitempty"`
	ContactPhone *string           `json:"contact_phone,omitempty"`
	ContactEmail *string           `json:"contact_email,omitempty"`
}

// LocationQuery carries the listing filters accepted by FindAll.
type LocationQuery struct {
	Page      int      `json:"page"`
	Limit     int      `json:"limit"`
	Type      string   `json:"type,omitempty"`
	State     string   `json:"state,omitempty"`
	Lga       string   `json:"lga,omitempty"`
	Area      string   `json:"area,omitempty"`
	Search    string   `json:"search,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	RadiusKm  float64  `json:"radius_km,omitempty"`
}

// LocationPage is one page of a location listing.
type LocationPage struct {
	Locations []*entity.Location `json:"locations"`
	Total     int64              `json:"total"`
	Pages     int64              `json:"pages"`
}

// LocationUsecase defines the location registry operations.
type LocationUsecase interface {
	Create(ctx context.Context, input *CreateLocationInput) (*entity.Location, error)
	FindAll(ctx context.Context, query *LocationQuery) (*LocationPage, error)
	FindOne(ctx context.Context, id uuid.UUID) (*entity.Location, error)
	FindByState(ctx context.Context, state string) ([]*entity.Location, error)
	// FindNearby returns active locations within radiusKm of the point,
	// ordered by ascending distance.
	FindNearby(ctx context.Context, longitude, latitude, radiusKm float64) ([]*entity.Location, error)
	Update(ctx context.Context, id uuid.UUID, input *UpdateLocationInput) (*entity.Location, error)
	Remove(ctx context.Context, id uuid.UUID) error
	// States returns the static reference list of Nigerian states.
	States() []string
	StateStats(ctx context.Context) ([]entity.StateCount, error)
	IncrementVendorCount(ctx context.Context, id uuid.UUID, delta int) error
	// Seed bulk-inserts the reference dataset when the registry is empty.
	// It is idempotent and safe to call once per process at startup.
	Seed(ctx context.Context) error
}
