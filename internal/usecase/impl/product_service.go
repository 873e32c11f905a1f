package impl

import (
	"context"
	"log/slog"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/usecase"

	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for productService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns a page of the catalog. Pagination is validated at the
// delivery layer; this layer passes it through unchanged.
func (srv *productService) List(ctx context.Context, input usecase.ListProductsInput) ([]*entity.Product, error) {
	return srv.productRepo.List(ctx, input.Limit, input.Offset)
}

// Create records a new product owned by the authenticated seller.
func (srv *productService) Create(ctx context.Context, sellerID int, input usecase.CreateProductInput) (*entity.Product, error) {
	product := &entity.Product{
		Name:     input.Name,
		Price:    input.Price,
		SellerID: sellerID,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Product created",
		slog.Int("product_id", product.ID),
		slog.Int("seller_id", sellerID))

	return product, nil
}

// Update replaces a product's name and price. Ownership is checked twice:
// once here so a non-owner gets an explicit refusal, and again inside the
// repository statement so a race between check and write cannot slip a
// foreign mutation through.
func (srv *productService) Update(ctx context.Context, actorID int, input usecase.UpdateProductInput) (*entity.Product, error) {
	ok, err := srv.productRepo.IsOwner(ctx, input.ProductID, actorID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domainerrors.ErrNotProductOwner
	}

	updated, err := srv.productRepo.Update(ctx, input.ProductID, actorID, &entity.NewProduct{
		Name:  input.Name,
		Price: input.Price,
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Product updated",
		slog.Int("product_id", updated.ID),
		slog.Int("seller_id", actorID))

	return updated, nil
}

// Delete removes a product, subject to the same double ownership gate as
// Update. Once past the gate, a zero-row delete still counts as success.
func (srv *productService) Delete(ctx context.Context, actorID, productID int) error {
	ok, err := srv.productRepo.IsOwner(ctx, productID, actorID)
	if err != nil {
		return err
	}
	if !ok {
		return domainerrors.ErrNotProductOwner
	}

	if err := srv.productRepo.Delete(ctx, productID, actorID); err != nil {
		return err
	}

	srv.log(ctx).Info("Product deleted",
		slog.Int("product_id", productID),
		slog.Int("seller_id", actorID))

	return nil
}
