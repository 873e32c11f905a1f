package repository

import (
	"context"

	"catalog/internal/domain/entity"
)

// ProductRepository defines the persistence operations for catalog products.
//
// Every mutate-by-id operation takes the owner id as part of its filter
// predicate, never as a post-hoc check: the affected-row count is itself the
// authorization proof at the storage layer. Callers are expected to gate with
// IsOwner first, which makes the filter the second, independent half of the
// double gate.
type ProductRepository interface {
	// List returns products ordered by id. A nil limit means no limit clause;
	// offset is applied unconditionally.
	List(ctx context.Context, limit *int, offset int) ([]*entity.Product, error)

	// Create persists a new product with product.SellerID already set and
	// fills in the server-assigned ID.
	Create(ctx context.Context, product *entity.Product) error

	// IsOwner reports whether the product exists and is owned by the account.
	// A missing row and a non-owner both report false; the error return is
	// reserved for I/O failures.
	IsOwner(ctx context.Context, productID, accountID int) (bool, error)

	// Update rewrites name and price of the product matching id AND owner.
	// Zero rows affected fails with domainerrors.ErrProductNotFound.
	Update(ctx context.Context, productID, ownerID int, update *entity.NewProduct) (*entity.Product, error)

	// Delete removes the product matching id AND owner. Deleting a row that
	// is already gone affects zero rows and is still success.
	Delete(ctx context.Context, productID, ownerID int) error
}
