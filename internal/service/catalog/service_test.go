package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogStore "github.com/m04kA/D2D-MarketplaceService/internal/catalog"
	"github.com/m04kA/D2D-MarketplaceService/pkg/logger"
)

func newService(t *testing.T) *Service {
	t.Helper()
	store, err := catalogStore.New(catalogStore.Bundled())
	require.NoError(t, err)
	return NewService(store, logger.NewNop())
}

func TestService_GetService(t *testing.T) {
	svc := newService(t)

	resp, err := svc.GetService(context.Background(), "1")
	require.NoError(t, err)

	assert.Equal(t, "House Deep Cleaning", resp.Service.Title)
	assert.Equal(t, "Emma Johnson", resp.Provider.Name)
	assert.Len(t, resp.Reviews, 3)
	for _, r := range resp.Reviews {
		assert.Equal(t, "1", r.ServiceID)
	}
}

func TestService_GetService_NoReviews(t *testing.T) {
	svc := newService(t)

	resp, err := svc.GetService(context.Background(), "8")
	require.NoError(t, err)

	assert.NotNil(t, resp.Reviews)
	assert.Empty(t, resp.Reviews)
}

func TestService_GetService_NotFound(t *testing.T) {
	svc := newService(t)

	_, err := svc.GetService(context.Background(), "100")
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestService_GetProvider(t *testing.T) {
	svc := newService(t)

	resp, err := svc.GetProvider(context.Background(), "2")
	require.NoError(t, err)

	assert.Equal(t, "Master Plumber", resp.Provider.Profession)
	assert.Equal(t, "./assets/images/plumbing.png", resp.Provider.Avatar)
	require.Len(t, resp.Services, 1)
	assert.Equal(t, "2", resp.Services[0].ID)
	assert.Len(t, resp.Reviews, 2)

	_, err = svc.GetProvider(context.Background(), "100")
	assert.ErrorIs(t, err, ErrProviderNotFound)
}

func TestService_Lists(t *testing.T) {
	svc := newService(t)

	providers := svc.ListProviders(context.Background())
	assert.Len(t, providers, 8)

	categories := svc.ListCategories(context.Background())
	require.Len(t, categories, 8)
	assert.Equal(t, "spraycan", categories[0].IconName)
}
