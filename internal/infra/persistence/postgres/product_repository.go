package postgres

import (
	"context"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// List returns products ordered by id. A nil limit leaves the statement
// without a LIMIT clause.
func (repo *productRepository) List(ctx context.Context, limit *int, offset int) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).Model(&model.ProductModel{}).Order("id")
	if limit != nil {
		query = query.Limit(*limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var productsM []model.ProductModel
	if err := query.Find(&productsM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productsM))
	for i := range productsM {
		products = append(products, toProductDomain(&productsM[i]))
	}

	return products, nil
}

// Create persists a new product and fills in the server-assigned id.
// SellerID must already be set by the caller; it is fixed here for the
// lifetime of the row.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "seller does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID

	return nil
}

// IsOwner reports whether the product exists and belongs to the account.
// "Not found" and "not owner" both report false; only I/O failures error.
func (repo *productRepository) IsOwner(ctx context.Context, productID, accountID int) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND seller_id = ?", productID, accountID).
		Count(&count).Error

	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check product ownership")
	}

	return count > 0, nil
}

// Update rewrites name and price of the row matching id AND owner. The owner
// filter in the statement is the storage-layer half of the double gate: a
// zero affected-row count means the caller was not authorized for (or raced
// the deletion of) this row.
func (repo *productRepository) Update(ctx context.Context, productID, ownerID int, update *entity.NewProduct) (*entity.Product, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND seller_id = ?", productID, ownerID).
		Updates(map[string]any{
			"name":  update.Name,
			"price": update.Price,
		})

	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrProductNotFound.WrapMessage("update matched no row")
	}

	return &entity.Product{
		ID:       productID,
		Name:     update.Name,
		Price:    update.Price,
		SellerID: ownerID,
	}, nil
}

// Delete removes the row matching id AND owner. Zero rows affected is
// success: the row is gone either way.
func (repo *productRepository) Delete(ctx context.Context, productID, ownerID int) error {
	err := repo.db.WithContext(ctx).
		Where("id = ? AND seller_id = ?", productID, ownerID).
		Delete(&model.ProductModel{}).Error

	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product")
	}

	return nil
}

// --- Mapper functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:       data.ID,
		Name:     data.Name,
		Price:    data.Price,
		SellerID: data.SellerID,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:       data.ID,
		Name:     data.Name,
		Price:    data.Price,
		SellerID: data.SellerID,
	}
}
