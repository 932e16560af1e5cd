// Package entity contains the core business objects of the marketplace,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system. Every caller, including vendors and
// admins, is a User; the Role field decides what they are allowed to do.
type User struct {
	ID           uuid.UUID  // The Global Unique Identifier (GUID) for the user.
	FirstName    string     // The user's first name.
	LastName     string     // The user's last name.
	Email        string     // Unique login identifier, always stored lowercase.
	PasswordHash string     // bcrypt hash of the user's password. Never serialized to callers.
	Phone        string     // Optional contact phone number.
	Avatar       string     // Optional URL of the user's avatar image.
	Role         Role       // The user's role: user, vendor, or admin.
	IsActive     bool       // Whether the account is active.
	LastLogin    *time.Time // Timestamp of the most recent successful login.
	CreatedAt    time.Time  // Timestamp of when this account was created.
	UpdatedAt    time.Time  // Timestamp of the last modification.
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
