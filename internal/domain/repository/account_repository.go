// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"catalog/internal/domain/entity"
)

// ErrAccountNotFound is a domain-specific error returned when no account
// matches the given username.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete implementation.
type AccountRepository interface {
	// Create persists a new account. The password field must already be hashed.
	// A duplicate username fails with domainerrors.ErrUsernameTaken.
	Create(ctx context.Context, account *entity.Account) error

	// FindByUsername retrieves the single account with the given username,
	// or ErrAccountNotFound when no row matches.
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)
}
