// Package entity contains the core business objects of the marketplace.
package entity

// Role represents the authorization role of a user account.
type Role string

const (
	// RoleUser indicates a regular buyer account.
	RoleUser Role = "user"
	// RoleVendor indicates an account with a vendor profile.
	RoleVendor Role = "vendor"
	// RoleAdmin indicates a moderation/administration account.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleVendor, RoleAdmin:
		return true
	default:
		return false
	}
}
