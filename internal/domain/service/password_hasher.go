// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying adaptive-cost algorithm (bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	// The comparison cost is the same whether or not they match.
	Check(password, hash string) bool

	// DummyCheck burns the same work as a failed Check against a real hash.
	// Login paths call it when no user record exists so that "unknown user"
	// and "wrong password" take comparable time.
	DummyCheck(password string)
}
