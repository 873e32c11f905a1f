// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	"catalog/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	tokenCodec  service.TokenCodec
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	TokenCodec  service.TokenCodec
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		tokenCodec:  params.TokenCodec,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register hashes the plaintext password and persists the new account.
// The plaintext never crosses into the repository layer.
func (srv *accountService) Register(ctx context.Context, input usecase.RegisterInput) error {
	srv.log(ctx).Info("Registering account", slog.String("username", input.Username))

	encodedHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	account := &entity.Account{
		Username: input.Username,
		Password: encodedHash,
		Role:     input.Role,
	}

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		return err
	}

	srv.log(ctx).Info("Account registered", slog.Int("account_id", account.ID))

	return nil
}

// Login verifies the credentials and issues a session token. Unknown username
// and wrong password collapse into the same ErrInvalidCredentials so the
// response never reveals whether the account exists.
func (srv *accountService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	account, err := srv.accountRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, err
	}

	ok, err := srv.hasher.Verify(input.Password, account.Password)
	if err != nil {
		// The stored hash could not be parsed. This is a server-side data
		// problem, not a caller mistake.
		srv.log(ctx).Error("Stored password hash is malformed",
			slog.Int("account_id", account.ID),
			slog.Any("error", err))

		return nil, domainerrors.ErrHashMalformed
	}
	if !ok {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenCodec.Issue(account.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Info("Account logged in", slog.Int("account_id", account.ID))

	return &usecase.LoginOutput{Token: token}, nil
}
