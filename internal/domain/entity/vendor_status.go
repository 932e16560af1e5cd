// Package entity contains the core business objects of the marketplace.
package entity

// VendorStatus represents the moderation state of a vendor profile.
type VendorStatus string

const (
	// VendorStatusPending is the initial state of every new vendor profile.
	VendorStatusPending VendorStatus = "pending"
	// VendorStatusVerified marks a vendor approved by an admin.
	VendorStatusVerified VendorStatus = "verified"
	// VendorStatusRejected marks a vendor turned down by an admin.
	VendorStatusRejected VendorStatus = "rejected"
	// VendorStatusSuspended marks a previously verified vendor taken offline.
	VendorStatusSuspended VendorStatus = "suspended"
)

// vendorTransitions is the legal transition table, enforced only when strict
// moderation mode is enabled. Admin override is otherwise always allowed.
var vendorTransitions = map[VendorStatus][]VendorStatus{
	VendorStatusPending:   {VendorStatusVerified, VendorStatusRejected},
	VendorStatusVerified:  {VendorStatusSuspended},
	VendorStatusRejected:  {},
	VendorStatusSuspended: {VendorStatusVerified},
}

// String returns the string representation of the VendorStatus.
func (s VendorStatus) String() string {
	return string(s)
}

// IsValid checks if the VendorStatus is a valid value.
func (s VendorStatus) IsValid() bool {
	switch s {
	case VendorStatusPending, VendorStatusVerified, VendorStatusRejected, VendorStatusSuspended:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the transition table permits moving from s
// to target.
func (s VendorStatus) CanTransitionTo(target VendorStatus) bool {
	for _, allowed := range vendorTransitions[s] {
		if allowed == target {
			return true
		}
	}

	return false
}
