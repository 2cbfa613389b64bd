package impl

import (
	"context"
	"testing"

	"gamehub/internal/domain/entity"
	domainerrors "gamehub/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCatalogService(t *testing.T) (*catalogService, *mockCatalogSource, *mockGameRepository) {
	t.Helper()

	source := &mockCatalogSource{}
	games := &mockGameRepository{}
	service := NewCatalogService(source, games, discardLogger()).(*catalogService)

	t.Cleanup(func() {
		source.AssertExpectations(t)
		games.AssertExpectations(t)
	})

	return service, source, games
}

func TestCatalogService_FillDatabase(t *testing.T) {
	service, source, games := createTestCatalogService(t)
	ctx := context.Background()

	fetched := []*entity.Game{{ID: "1"}, {ID: "2"}}
	source.On("TopRated", ctx).Return(fetched, nil)
	games.On("ReplaceAll", ctx, fetched).Return(nil)

	count, err := service.FillDatabase(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCatalogService_FillDatabase_SourceFailure(t *testing.T) {
	service, source, games := createTestCatalogService(t)
	ctx := context.Background()

	source.On("TopRated", ctx).Return(nil, errors.New("rawg responded with status 502"))

	count, err := service.FillDatabase(ctx)

	assert.Zero(t, count)
	assert.True(t, errors.Is(err, domainerrors.ErrCatalogSourceFailed))
	games.AssertNotCalled(t, "ReplaceAll", mock.Anything, mock.Anything)
}

func TestCatalogService_AllGenres(t *testing.T) {
	service, source, _ := createTestCatalogService(t)
	ctx := context.Background()

	source.On("Genres", ctx).Return([]string{"ACTION", "INDIE"}, nil)

	genres, err := service.AllGenres(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{"ACTION", "INDIE"}, genres)
}

func TestCatalogService_AllPlatforms_SourceFailure(t *testing.T) {
	service, source, _ := createTestCatalogService(t)
	ctx := context.Background()

	source.On("Platforms", ctx).Return(nil, errors.New("network down"))

	platforms, err := service.AllPlatforms(ctx)

	assert.Nil(t, platforms)
	assert.True(t, errors.Is(err, domainerrors.ErrCatalogSourceFailed))
}
