package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// PlacementInput describes where a vendor operates. Which fields are
// required depends on the vendor type.
type PlacementInput struct {
	LocationID  *uuid.UUID        `json:"location_id,omitempty"`
	ShopNumber  string            `json:"shop_number,omitempty"`
	ShopFloor   string            `json:"shop_floor,omitempty"`
	ShopBlock   string            `json:"shop_block,omitempty"`
	HomeAddress string            `json:"home_address,omitempty"`
	HomeState   string            `json:"home_state,omitempty"`
	HomeLga     string            `json:"home_lga,omitempty"`
	HomeArea    string            `json:"home_area,omitempty"`
	Coordinates *CoordinatesInput `json:"coordinates,omitempty"`
}

// CreateVendorInput carries the fields for opening a vendor profile.
type CreateVendorInput struct {
	BusinessName        string         `json:"business_name" validate:"required"`
	BusinessDescription string         `json:"business_description,omitempty"`
	VendorType          string         `json:"vendor_type" validate:"required"`
	Placement           PlacementInput `json:"placement"`
	BusinessPhone       string         `json:"business_phone,omitempty"`
	BusinessEmail       string         `json:"business_email,omitempty"`
	Logo                string         `json:"logo,omitempty"`
	Documents           []string       `json:"documents,omitempty"`
	Images              []string       `json:"images,omitempty"`
	Categories          []string       `json:"categories,omitempty"`
	WhatsappNumber      string         `json:"whatsapp_number,omitempty"`
	InstagramHandle     string         `json:"instagram_handle,omitempty"`
	FacebookPage        string         `json:"facebook_page,omitempty"`
	OpeningHours        string         `json:"opening_hours,omitempty"`
}

// UpdateVendorInput carries a partial patch; nil fields are untouched.
// Status and verification fields are deliberately absent, moderation owns
// those.
type UpdateVendorInput struct {
	BusinessName        *string         `json:"business_name,omitempty"`
	BusinessDescription *string         `json:"business_description,omitempty"`
	Placement           *PlacementInput `json:"placement,omitempty"`
	BusinessPhone       *string         `json:"business_phone,omitempty"`
	BusinessEmail       *string         `json:"business_email,omitempty"`
	Logo                *string         `json:"logo,omitempty"`
	Documents           []string        `json:"documents,omitempty"`
	Images              []string        `json:"images,omitempty"`
	Categories          []string        `json:"categories,omitempty"`
	WhatsappNumber      *string         `json:"whatsapp_number,omitempty"`
	InstagramHandle     *string         `json:"instagram_handle,omitempty"`
	FacebookPage        *string         `json:"facebook_page,omitempty"`
	IsOpen              *bool           `json:"is_open,omitempty"`
	OpeningHours        *string         `json:"opening_hours,omitempty"`
}

// UpdateVendorStatusInput drives the moderation state machine.
type UpdateVendorStatusInput struct {
	Status          string `json:"status" validate:"required"`
	RejectionReason string `json:"rejection_reason,omitempty"`
}

// VendorQuery carries the listing filters accepted by FindAll.
type VendorQuery struct {
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
	Status     string     `json:"status,omitempty"`
	VendorType string     `json:"vendor_type,omitempty"`
	LocationID *uuid.UUID `json:"location_id,omitempty"`
	State      string     `json:"state,omitempty"`
	Lga        string     `json:"lga,omitempty"`
	Area       string     `json:"area,omitempty"`
	Search     string     `json:"search,omitempty"`
	Category   string     `json:"category,omitempty"`
	IsOpen     *bool      `json:"is_open,omitempty"`
	Latitude   *float64   `json:"latitude,omitempty"`
	Longitude  *float64   `json:"longitude,omitempty"`
	RadiusKm   float64    `json:"radius_km,omitempty"`
	// PublicOnly forces the status filter to verified regardless of what
	// the query asked for. Set by unauthenticated routes.
	PublicOnly bool `json:"-"`
}

// VendorPage is one page of a vendor listing.
type VendorPage struct {
	Vendors []*entity.Vendor `json:"vendors"`
	Total   int64            `json:"total"`
	Pages   int64            `json:"pages"`
}

// VendorUsecase defines the vendor lifecycle operations.
type VendorUsecase interface {
	// Create opens a vendor profile for the user. A user may hold at most
	// one profile; a second attempt fails with a conflict.
	Create(ctx context.Context, userID uuid.UUID, input *CreateVendorInput) (*entity.Vendor, error)
	FindAll(ctx context.Context, query *VendorQuery) (*VendorPage, error)
	FindOne(ctx context.Context, id uuid.UUID, publicOnly bool) (*entity.Vendor, error)
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Vendor, error)
	FindByLocation(ctx context.Context, locationID uuid.UUID, publicOnly bool) ([]*entity.Vendor, error)
	FindNearby(ctx context.Context, longitude, latitude, radiusKm float64) ([]*entity.Vendor, error)
	// Update applies a profile patch. Only the owning user or an admin may
	// call it.
	Update(ctx context.Context, id, actorID uuid.UUID, isAdmin bool, input *UpdateVendorInput) (*entity.Vendor, error)
	// UpdateStatus moves the vendor through the moderation state machine
	// and publishes a moderation event on success.
	UpdateStatus(ctx context.Context, id, adminID uuid.UUID, input *UpdateVendorStatusInput) (*entity.Vendor, error)
	Remove(ctx context.Context, id, actorID uuid.UUID, isAdmin bool) error
	Categories(ctx context.Context, publicOnly bool) ([]string, error)
	// QRCode renders the vendor's storefront QR as a PNG.
	QRCode(ctx context.Context, id uuid.UUID) ([]byte, error)
}
