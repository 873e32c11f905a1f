package service

import "catalog/internal/domain/entity"

// TokenCodec issues and validates the stateless session tokens that are the
// sole means of establishing caller identity. Tokens are opaque, encrypted,
// tamper-evident and time-bounded; there is no server-side session store and
// no revocation before expiry.
type TokenCodec interface {
	// Issue builds a claim set for the account valid from now until now+TTL,
	// encrypts and authenticates it with the server key, and returns an
	// opaque URL-safe string. Each call draws fresh encryption randomness.
	Issue(accountID int) (string, error)

	// Validate decrypts and authenticates the token. It fails with
	// domainerrors.ErrTokenInvalid when the ciphertext or claim shape does
	// not verify, and with domainerrors.ErrTokenExpired when the claims are
	// outside their validity window.
	Validate(token string) (*entity.Session, error)
}
