// Package entity contains the core business objects of the marketplace.
package entity

// VendorType represents where a vendor operates from. It decides which
// Placement fields are required at creation time.
type VendorType string

const (
	// VendorTypeMarketBased indicates a vendor with a shop inside a market Location.
	VendorTypeMarketBased VendorType = "market-based"
	// VendorTypeMallBased indicates a vendor with a shop inside a mall Location.
	VendorTypeMallBased VendorType = "mall-based"
	// VendorTypeHomeBased indicates a vendor selling from a home address.
	VendorTypeHomeBased VendorType = "home-based"
	// VendorTypeOnlineOnly indicates a vendor with no physical presence.
	VendorTypeOnlineOnly VendorType = "online-only"
)

// String returns the string representation of the VendorType.
func (t VendorType) String() string {
	return string(t)
}

// IsValid checks if the VendorType is a valid value.
func (t VendorType) IsValid() bool {
	switch t {
	case VendorTypeMarketBased, VendorTypeMallBased, VendorTypeHomeBased, VendorTypeOnlineOnly:
		return true
	default:
		return false
	}
}

// RequiresLocation reports whether vendors of this type must reference a Location.
func (t VendorType) RequiresLocation() bool {
	return t == VendorTypeMarketBased || t == VendorTypeMallBased
}
