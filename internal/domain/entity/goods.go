// Package entity contains the core business objects of the marketplace.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Goods is a listing owned by a Vendor, created by a User, with a moderation
// state machine of its own.
type Goods struct {
	ID             uuid.UUID      // The Global Unique Identifier (GUID) for the listing.
	Title          string         // Listing title; part of the free-text search index.
	Description    string         // Listing description; part of the free-text search index.
	Price          float64        // Asking price, never negative.
	Type           GoodsType      // Kind of listing: product, service, digital.
	Category       string         // Optional category label.
	Images         []string       // URLs of listing photos.
	Status         GoodsStatus    // Moderation status: pending, approved, flagged, dropped.
	VendorID       uuid.UUID      // Owning vendor.
	CreatedBy      uuid.UUID      // User that created the listing; sole editor.
	Specifications map[string]any // Optional free-form specification map.
	Views          int64          // Detail-fetch counter, incremented atomically.
	FlagReason     string         // Set when an admin flags or drops the listing.
	FlaggedBy      *uuid.UUID     // Admin who flagged/dropped the listing.
	FlaggedAt      *time.Time     // When the listing was flagged/dropped.
	ApprovedAt     *time.Time     // Set when an admin approves the listing.
	ApprovedBy     *uuid.UUID     // Admin who approved the listing.
	IsAvailable    bool           // Availability toggle; forced false when dropped.
	Condition      string         // Optional condition label, e.g. "new", "used".
	Brand          string         // Optional brand name.
	Tags           []string       // Free-text tags; part of the search index.
	CreatedAt      time.Time      // Timestamp of when this listing was created.
	UpdatedAt      time.Time      // Timestamp of the last modification.
}

// GoodsType represents the kind of listing.
type GoodsType string

const (
	// GoodsTypeProduct is a physical product.
	GoodsTypeProduct GoodsType = "product"
	// GoodsTypeService is a service offering.
	GoodsTypeService GoodsType = "service"
	// GoodsTypeDigital is a digital/downloadable item.
	GoodsTypeDigital GoodsType = "digital"
)

// String returns the string representation of the GoodsType.
func (t GoodsType) String() string {
	return string(t)
}

// IsValid checks if the GoodsType is a valid value.
func (t GoodsType) IsValid() bool {
	switch t {
	case GoodsTypeProduct, GoodsTypeService, GoodsTypeDigital:
		return true
	default:
		return false
	}
}
