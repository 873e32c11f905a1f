package usecase

import (
	"context"

	"catalog/internal/domain/entity"
)

// --- Input DTOs ---

// ListProductsInput carries already-validated pagination. A nil Limit means
// the whole catalog from Offset onward.
type ListProductsInput struct {
	Limit  *int
	Offset int
}

// CreateProductInput defines the caller-supplied fields of a new product.
// The seller is never part of the input; it comes from the session.
type CreateProductInput struct {
	Name  string
	Price int
}

// UpdateProductInput defines the replacement fields for an existing product.
type UpdateProductInput struct {
	ProductID int
	Name      string
	Price     int
}

// ProductUsecase defines the interface for product-related business operations.
// Mutations take the acting account's id separately from the input so the
// ownership check can never be forged through the request body.
type ProductUsecase interface {
	List(ctx context.Context, input ListProductsInput) ([]*entity.Product, error)
	Create(ctx context.Context, sellerID int, input CreateProductInput) (*entity.Product, error)
	Update(ctx context.Context, actorID int, input UpdateProductInput) (*entity.Product, error)
	Delete(ctx context.Context, actorID, productID int) error
}
