package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/D2D-MarketplaceService/internal/domain"
)

func TestNew_Bundled(t *testing.T) {
	store, err := New(Bundled())
	require.NoError(t, err)

	assert.Len(t, store.Services(), 8)
	assert.Len(t, store.Providers(), 8)
	assert.Len(t, store.Categories(), 8)

	svc, err := store.ServiceByID("1")
	require.NoError(t, err)
	assert.Equal(t, "House Deep Cleaning", svc.Title)
	assert.Equal(t, 120.0, svc.Price)
}

func TestNew_Invariants(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(ds *Dataset)
		want   error
	}{
		{
			name:   "service references missing provider",
			mutate: func(ds *Dataset) { ds.Services[0].ProviderID = "99" },
			want:   ErrDanglingReference,
		},
		{
			name:   "service references missing category",
			mutate: func(ds *Dataset) { ds.Services[0].Category = "astrology" },
			want:   ErrDanglingReference,
		},
		{
			name:   "provider references missing service",
			mutate: func(ds *Dataset) { ds.Providers[0].ServiceIDs = append(ds.Providers[0].ServiceIDs, "42") },
			want:   ErrDanglingReference,
		},
		{
			name:   "review references missing service",
			mutate: func(ds *Dataset) { ds.Reviews[0].ServiceID = "42" },
			want:   ErrDanglingReference,
		},
		{
			name:   "review references missing provider",
			mutate: func(ds *Dataset) { ds.Reviews[0].ProviderID = "42" },
			want:   ErrDanglingReference,
		},
		{
			name:   "duplicate service id",
			mutate: func(ds *Dataset) { ds.Services[1].ID = ds.Services[0].ID },
			want:   ErrDuplicateID,
		},
		{
			name:   "duplicate provider id",
			mutate: func(ds *Dataset) { ds.Providers[1].ID = ds.Providers[0].ID },
			want:   ErrDuplicateID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := Bundled()
			tt.mutate(&ds)

			store, err := New(ds)
			assert.Nil(t, store)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestStore_Lookups(t *testing.T) {
	store := MustNew(Bundled())

	_, err := store.ServiceByID("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.ProviderByID("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	provider, err := store.ProviderByID("2")
	require.NoError(t, err)
	assert.Equal(t, "Michael Rodriguez", provider.Name)
	assert.True(t, provider.OffersService("2"))

	services := store.ServicesByProvider("2")
	require.Len(t, services, 1)
	assert.Equal(t, "Bathroom Plumbing Repair", services[0].Title)
	assert.Empty(t, store.ServicesByProvider("missing"))

	assert.Len(t, store.ReviewsByService("1"), 3)
	assert.Len(t, store.ReviewsByProvider("2"), 2)
	assert.Empty(t, store.ReviewsByService("8"))
}

func TestStore_ReferentialIntegrity(t *testing.T) {
	store := MustNew(Bundled())

	for _, svc := range store.Services() {
		provider, err := store.ProviderByID(svc.ProviderID)
		require.NoError(t, err, "service %s", svc.ID)
		assert.True(t, provider.OffersService(svc.ID), "provider %s must list service %s", provider.ID, svc.ID)
	}
	for _, p := range store.Providers() {
		for _, id := range p.ServiceIDs {
			_, err := store.ServiceByID(id)
			assert.NoError(t, err)
		}
	}
}

func TestStore_ReturnsCopies(t *testing.T) {
	store := MustNew(Bundled())

	services := store.Services()
	services[0].Title = "mutated"
	providers := store.Providers()
	providers[0].ServiceIDs[0] = "mutated"
	reviews := store.ReviewsByService("1")
	*reviews[0].Avatar = "mutated"

	svc, _ := store.ServiceByID(store.Services()[0].ID)
	assert.Equal(t, "House Deep Cleaning", svc.Title)

	p, _ := store.ProviderByID("1")
	assert.Equal(t, []string{"1"}, p.ServiceIDs)

	assert.NotEqual(t, "mutated", *store.ReviewsByService("1")[0].Avatar)
}

func TestNew_DoesNotAliasDataset(t *testing.T) {
	ds := Dataset{
		Services:   []domain.Service{{ID: "s", Category: "c", ProviderID: "p", Title: "Original"}},
		Providers:  []domain.Provider{{ID: "p", ServiceIDs: []string{"s"}}},
		Categories: []domain.Category{{ID: "c"}},
	}
	store := MustNew(ds)

	ds.Services[0].Title = "changed"
	ds.Providers[0].ServiceIDs[0] = "changed"

	svc, err := store.ServiceByID("s")
	require.NoError(t, err)
	assert.Equal(t, "Original", svc.Title)
	p, err := store.ProviderByID("p")
	require.NoError(t, err)
	assert.Equal(t, []string{"s"}, p.ServiceIDs)
}
