// Package entity contains the core business objects of the marketplace.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Location is a named, geocoded physical place vendors can be attached to,
// such as a market or a mall.
type Location struct {
	ID           uuid.UUID    // The Global Unique Identifier (GUID) for the location.
	Name         string       // The display name, e.g. "Computer Village".
	Type         LocationType // The kind of place: market, mall, plaza, shopping-center.
	State        string       // Nigerian state the location sits in.
	Lga          string       // Local Government Area.
	Area         string       // Neighbourhood / district within the LGA.
	Address      string       // Optional free-form street address.
	Description  string       // Optional free-form description.
	Point        orb.Point    // Geographic position as [longitude, latitude].
	IsActive     bool         // Inactive locations are hidden from listings.
	Images       []string     // URLs of uploaded photos.
	OpeningHours string       // Optional opening hours text.
	ContactPhone string       // Optional contact phone.
	ContactEmail string       // Optional contact email.
	TotalVendors int64        // Denormalized count of vendors attached here.
	CreatedAt    time.Time    // Timestamp of when this location was created.
	UpdatedAt    time.Time    // Timestamp of the last modification.
}

// LocationType represents the kind of physical place a Location describes.
type LocationType string

const (
	// LocationTypeMarket is an open or covered traditional market.
	LocationTypeMarket LocationType = "market"
	// LocationTypeMall is an enclosed shopping mall.
	LocationTypeMall LocationType = "mall"
	// LocationTypePlaza is a commercial plaza of shops.
	LocationTypePlaza LocationType = "plaza"
	// LocationTypeShoppingCenter is a mixed shopping center.
	LocationTypeShoppingCenter LocationType = "shopping-center"
)

// String returns the string representation of the LocationType.
func (t LocationType) String() string {
	return string(t)
}

// IsValid checks if the LocationType is a valid value.
func (t LocationType) IsValid() bool {
	switch t {
	case LocationTypeMarket, LocationTypeMall, LocationTypePlaza, LocationTypeShoppingCenter:
		return true
	default:
		return false
	}
}

// StateCount is one row of the per-state location aggregation.
type StateCount struct {
	State string `json:"state"`
	Count int64  `json:"count"`
}
