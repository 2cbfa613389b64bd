// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"gamehub/internal/domain/entity"
	domainerrors "gamehub/internal/domain/errors"
	"gamehub/internal/domain/repository"
	"gamehub/internal/domain/service"
	"gamehub/internal/usecase"

	"github.com/pkg/errors"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	accounts     repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(
	accounts repository.AccountRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		accounts:     accounts,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Register orchestrates the account registration process.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.logger.Info("Starting account registration", "email", input.Email)

	// 1. Check whether the email is already taken. This pre-check is
	// best-effort: a concurrent registration slipping past it is caught by
	// the unique index at insert time.
	_, err := srv.accounts.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.ErrAccountExists.WrapMessage("account registration failed")
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		srv.logger.Error("Failed to look up account during registration", "error", err, "email", input.Email)

		return nil, errors.Wrap(err, "failed to look up account")
	}

	// 2. Hash the password and persist the new account.
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", "error", err)

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	account := &entity.Account{
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}
	if err := srv.accounts.Create(ctx, account); err != nil {
		srv.logger.Error("Failed to create account", "error", err, "email", input.Email)

		return nil, errors.Wrap(err, "failed to create account")
	}

	srv.logger.Debug("Account registered successfully", "accountID", account.ID)

	return &usecase.RegisterOutput{
		Email:     account.Email,
		CreatedAt: account.CreatedAt,
	}, nil
}

// Login orchestrates the credential check and token issuance.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.logger.Debug("Starting login", "email", input.Email)

	// 1. Find the account. An unknown email is logged distinctly but turned
	// into the same generic error as a wrong password, so responses never
	// reveal whether the email is registered.
	account, err := srv.accounts.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.logger.Warn("Login failed: account not found", "email", input.Email)

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}
		srv.logger.Error("Failed to look up account during login", "error", err, "email", input.Email)

		return nil, errors.Wrap(err, "failed to look up account")
	}

	// 2. Check the password.
	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.logger.Warn("Login failed: password mismatch", "email", input.Email)

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	// 3. Issue the access token.
	token, err := srv.tokenService.Issue(account.Email)
	if err != nil {
		srv.logger.Error("Failed to issue access token", "error", err)

		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.logger.Debug("Login successful", "accountID", account.ID)

	return &usecase.LoginOutput{
		Email: account.Email,
		Token: token,
		TTL:   srv.tokenService.AccessTokenTTL(),
	}, nil
}

// Logout has no server-side state to discard; token validity ends only with
// its expiry. The boundary layer clears the client-held cookie.
func (srv *accountService) Logout(_ context.Context) error {
	return nil
}
