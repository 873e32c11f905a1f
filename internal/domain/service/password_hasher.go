// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (Argon2id), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password. The salt and
	// the algorithm parameters are embedded in the returned string, so
	// verification needs no separate salt storage.
	Hash(password string) (string, error)

	// Verify compares a plaintext password with an encoded hash in constant
	// time. A mismatch is (false, nil); a non-nil error means the encoded
	// string itself is malformed, not that the credential was wrong.
	Verify(password, encodedHash string) (bool, error)
}
