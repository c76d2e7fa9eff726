// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for credential hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted, one-way hash from a plaintext password.
	// Each call uses a fresh random salt, so hashing the same password twice
	// yields different stored values.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash in constant time.
	// It returns false on mismatch and on a malformed hash; it never reveals
	// which of the two occurred.
	Check(password, hash string) bool
}
