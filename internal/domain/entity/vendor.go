// Package entity contains the core business objects of the marketplace.
package entity

import (
	"time"

	"bazaar/internal/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Vendor is a seller profile tied 1:1 to a User, with a verification state
// machine. Where the vendor physically sits is described by Placement, whose
// required fields depend on VendorType.
type Vendor struct {
	ID                  uuid.UUID    // The Global Unique Identifier (GUID) for the vendor.
	UserID              uuid.UUID    // Owning user; unique, one vendor profile per user.
	BusinessName        string       // Registered or trading business name.
	BusinessDescription string       // Free-form description of the business.
	VendorType          VendorType   // Where the vendor operates from; governs Placement.
	Placement           Placement    // Type-dependent physical placement.
	BusinessPhone       string       // Optional business phone.
	BusinessEmail       string       // Optional business email.
	Logo                string       // Optional URL of the business logo.
	Documents           []string     // URLs of verification documents.
	Images              []string     // URLs of shop photos.
	Categories          []string     // Categories of goods the vendor deals in.
	WhatsappNumber      string       // Optional WhatsApp contact.
	InstagramHandle     string       // Optional Instagram handle.
	FacebookPage        string       // Optional Facebook page.
	IsOpen              bool         // Whether the shop is currently open for business.
	OpeningHours        string       // Optional opening hours text.
	Status              VendorStatus // Moderation status: pending, verified, rejected, suspended.
	VerifiedAt          *time.Time   // Set when an admin verifies the vendor.
	VerifiedBy          *uuid.UUID   // Admin who verified the vendor.
	RejectionReason     string       // Set when an admin rejects or suspends the vendor.
	TotalGoods          int64        // Denormalized count of goods owned by this vendor.
	Rating              float64      // Average review rating.
	TotalReviews        int64        // Number of reviews behind Rating.
	CreatedAt           time.Time    // Timestamp of when this profile was created.
	UpdatedAt           time.Time    // Timestamp of the last modification.
}

// Placement carries the type-dependent location fields of a vendor.
// Market/mall vendors reference a Location; home-based vendors carry a
// free-form home address with optional coordinates; online-only vendors
// carry neither.
type Placement struct {
	LocationID  *uuid.UUID // Referenced Location for market/mall vendors.
	ShopNumber  string     // Optional shop number within the market/mall.
	ShopFloor   string     // Optional floor within the mall.
	ShopBlock   string     // Optional block within the market.
	HomeAddress string     // Street address for home-based vendors.
	HomeState   string     // State for home-based vendors.
	HomeLga     string     // LGA for home-based vendors.
	HomeArea    string     // Area for home-based vendors.
	Point       *orb.Point // Optional coordinates as [longitude, latitude].
}

// ValidatePlacement checks the conditional required-field set for the given
// vendor type. This single table owns the "required field missing for this
// type" class of errors.
func ValidatePlacement(vendorType VendorType, p Placement) error {
	switch {
	case vendorType.RequiresLocation():
		if p.LocationID == nil {
			return errors.Errorf("%s vendors must reference a location", vendorType)
		}
	case vendorType == VendorTypeHomeBased:
		if p.HomeAddress == "" || p.HomeState == "" || p.HomeLga == "" || p.HomeArea == "" {
			return errors.New("home-based vendors must provide home address, state, LGA and area")
		}
	}

	return nil
}
