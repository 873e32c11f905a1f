package impl

import (
	"context"

	"catalog/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// Hand-written testify mocks for the repository and service interfaces the
// usecase layer depends on.

type mockAccountRepository struct {
	mock.Mock
}

func (m *mockAccountRepository) Create(ctx context.Context, account *entity.Account) error {
	args := m.Called(ctx, account)

	return args.Error(0)
}

func (m *mockAccountRepository) FindByUsername(ctx context.Context, username string) (*entity.Account, error) {
	args := m.Called(ctx, username)
	if account, ok := args.Get(0).(*entity.Account); ok {
		return account, args.Error(1)
	}

	return nil, args.Error(1)
}

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) List(ctx context.Context, limit *int, offset int) ([]*entity.Product, error) {
	args := m.Called(ctx, limit, offset)
	if products, ok := args.Get(0).([]*entity.Product); ok {
		return products, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)

	return args.Error(0)
}

func (m *mockProductRepository) IsOwner(ctx context.Context, productID, accountID int) (bool, error) {
	args := m.Called(ctx, productID, accountID)

	return args.Bool(0), args.Error(1)
}

func (m *mockProductRepository) Update(ctx context.Context, productID, ownerID int, update *entity.NewProduct) (*entity.Product, error) {
	args := m.Called(ctx, productID, ownerID, update)
	if product, ok := args.Get(0).(*entity.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockProductRepository) Delete(ctx context.Context, productID, ownerID int) error {
	args := m.Called(ctx, productID, ownerID)

	return args.Error(0)
}

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Verify(password, encodedHash string) (bool, error) {
	args := m.Called(password, encodedHash)

	return args.Bool(0), args.Error(1)
}

type mockTokenCodec struct {
	mock.Mock
}

func (m *mockTokenCodec) Issue(accountID int) (string, error) {
	args := m.Called(accountID)

	return args.String(0), args.Error(1)
}

func (m *mockTokenCodec) Validate(token string) (*entity.Session, error) {
	args := m.Called(token)
	if session, ok := args.Get(0).(*entity.Session); ok {
		return session, args.Error(1)
	}

	return nil, args.Error(1)
}
