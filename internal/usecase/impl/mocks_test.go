package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"gamehub/internal/domain/entity"
	"gamehub/internal/domain/repository"
	"gamehub/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockAccountRepository struct {
	mock.Mock
}

func (m *mockAccountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	args := m.Called(ctx, email)
	if account, ok := args.Get(0).(*entity.Account); ok {
		return account, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAccountRepository) Create(ctx context.Context, account *entity.Account) error {
	args := m.Called(ctx, account)

	return args.Error(0)
}

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Issue(email string) (string, error) {
	args := m.Called(email)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) Verify(token string) (*service.Claims, error) {
	args := m.Called(token)
	if claims, ok := args.Get(0).(*service.Claims); ok {
		return claims, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockTokenService) Decode(token string) (*service.Claims, bool) {
	args := m.Called(token)
	if claims, ok := args.Get(0).(*service.Claims); ok {
		return claims, args.Bool(1)
	}

	return nil, args.Bool(1)
}

func (m *mockTokenService) AccessTokenTTL() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}

type mockGameRepository struct {
	mock.Mock
}

func (m *mockGameRepository) List(ctx context.Context, filter repository.GameFilter) ([]*entity.Game, int64, error) {
	args := m.Called(ctx, filter)
	games, _ := args.Get(0).([]*entity.Game)

	return games, args.Get(1).(int64), args.Error(2)
}

func (m *mockGameRepository) FindByID(ctx context.Context, id string) (*entity.Game, error) {
	args := m.Called(ctx, id)
	if game, ok := args.Get(0).(*entity.Game); ok {
		return game, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockGameRepository) Create(ctx context.Context, game *entity.Game) error {
	args := m.Called(ctx, game)

	return args.Error(0)
}

func (m *mockGameRepository) Update(ctx context.Context, id string, changes map[string]any) error {
	args := m.Called(ctx, id, changes)

	return args.Error(0)
}

func (m *mockGameRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *mockGameRepository) ReplaceAll(ctx context.Context, games []*entity.Game) error {
	args := m.Called(ctx, games)

	return args.Error(0)
}

type mockCatalogSource struct {
	mock.Mock
}

func (m *mockCatalogSource) TopRated(ctx context.Context) ([]*entity.Game, error) {
	args := m.Called(ctx)
	games, _ := args.Get(0).([]*entity.Game)

	return games, args.Error(1)
}

func (m *mockCatalogSource) Genres(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	genres, _ := args.Get(0).([]string)

	return genres, args.Error(1)
}

func (m *mockCatalogSource) Platforms(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	platforms, _ := args.Get(0).([]string)

	return platforms, args.Error(1)
}
