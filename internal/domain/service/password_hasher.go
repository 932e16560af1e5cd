// Package service defines the contracts for infrastructure-backed domain services.
package service

// PasswordHasher abstracts password hashing so the business logic never
// depends on a concrete algorithm.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash.
	Check(password, hash string) bool
}
