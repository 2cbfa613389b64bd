package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainerrors "gamehub/internal/domain/errors"
	"gamehub/internal/errors"
)

type mockCatalogUsecase struct {
	mock.Mock
}

func (m *mockCatalogUsecase) FillDatabase(ctx context.Context) (int, error) {
	args := m.Called(ctx)

	return args.Int(0), args.Error(1)
}

func (m *mockCatalogUsecase) AllGenres(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if out := args.Get(0); out != nil {
		return out.([]string), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockCatalogUsecase) AllPlatforms(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if out := args.Get(0); out != nil {
		return out.([]string), args.Error(1)
	}

	return nil, args.Error(1)
}

type mockStoreHealth struct {
	mock.Mock
}

func (m *mockStoreHealth) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func TestTestDBConnected(t *testing.T) {
	t.Parallel()

	health := new(mockStoreHealth)
	health.On("Ping", mock.Anything).Return(nil)

	h := NewUtilsHandler(new(mockCatalogUsecase), health, discardLogger())
	c, rec := newJSONContext(t, http.MethodGet, "/api/utils/test-db", "")

	require.NoError(t, h.TestDB(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "connected")
}

func TestTestDBUnavailable(t *testing.T) {
	t.Parallel()

	health := new(mockStoreHealth)
	health.On("Ping", mock.Anything).Return(errors.New("connection refused"))

	h := NewUtilsHandler(new(mockCatalogUsecase), health, discardLogger())
	c, _ := newJSONContext(t, http.MethodGet, "/api/utils/test-db", "")

	err := h.TestDB(c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreUnavailable))
}

func TestFillDatabaseReportsCount(t *testing.T) {
	t.Parallel()

	catalog := new(mockCatalogUsecase)
	catalog.On("FillDatabase", mock.Anything).Return(42, nil)

	h := NewUtilsHandler(catalog, new(mockStoreHealth), discardLogger())
	c, rec := newJSONContext(t, http.MethodPost, "/api/utils/fill-database", "")

	require.NoError(t, h.FillDatabase(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "42")
}

func TestAllGenres(t *testing.T) {
	t.Parallel()

	catalog := new(mockCatalogUsecase)
	catalog.On("AllGenres", mock.Anything).Return([]string{"ACTION", "INDIE"}, nil)

	h := NewUtilsHandler(catalog, new(mockStoreHealth), discardLogger())
	c, rec := newJSONContext(t, http.MethodGet, "/api/utils/all-genres", "")

	require.NoError(t, h.AllGenres(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ACTION")
}

func TestAllPlatformsSourceFailure(t *testing.T) {
	t.Parallel()

	catalog := new(mockCatalogUsecase)
	catalog.On("AllPlatforms", mock.Anything).
		Return(nil, domainerrors.ErrCatalogSourceFailed.WrapMessage("rawg unreachable"))

	h := NewUtilsHandler(catalog, new(mockStoreHealth), discardLogger())
	c, _ := newJSONContext(t, http.MethodGet, "/api/utils/all-platforms", "")

	err := h.AllPlatforms(c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCatalogSourceFailed))
}
