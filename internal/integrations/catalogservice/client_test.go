package catalogservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/D2D-MarketplaceService/internal/catalog"
	"github.com/m04kA/D2D-MarketplaceService/pkg/logger"
)

func newCatalogServer(t *testing.T, overrides map[string]int) *httptest.Server {
	t.Helper()

	bodies := map[string]string{
		"/services":   `[{"id":"s1","title":"Window Washing","category":"cleaning","price":40,"rating":4.2,"numberOfRatings":3,"providerId":"p1"}]`,
		"/providers":  `[{"id":"p1","name":"Ann Lee","profession":"Cleaner","rating":4.2,"totalJobs":3,"services":["s1"]}]`,
		"/reviews":    `[{"id":"r1","serviceId":"s1","providerId":"p1","userId":"u1","userName":"Bob","rating":5,"comment":"Great","date":"2024-01-02"}]`,
		"/categories": `[{"id":"cleaning","title":"Cleaning","iconName":"spraycan"}]`,
	}

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status, ok := overrides[r.URL.Path]; ok {
			w.WriteHeader(status)
			return
		}
		body, ok := bodies[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
}

func TestClient_FetchDataset(t *testing.T) {
	server := newCatalogServer(t, nil)
	defer server.Close()

	client := NewClient(server.URL, time.Second, logger.NewNop())

	ds, err := client.FetchDataset(context.Background())
	require.NoError(t, err)

	require.Len(t, ds.Services, 1)
	assert.Equal(t, "Window Washing", ds.Services[0].Title)
	require.Len(t, ds.Providers, 1)
	assert.Equal(t, []string{"s1"}, ds.Providers[0].ServiceIDs)
	require.Len(t, ds.Reviews, 1)
	assert.Nil(t, ds.Reviews[0].Avatar)
	require.Len(t, ds.Categories, 1)

	store, err := catalog.New(ds)
	require.NoError(t, err)
	assert.Len(t, store.ReviewsByProvider("p1"), 1)
}

func TestClient_FetchDataset_Errors(t *testing.T) {
	server := newCatalogServer(t, map[string]int{"/reviews": http.StatusServiceUnavailable})
	defer server.Close()

	client := NewClient(server.URL, time.Second, logger.NewNop())
	_, err := client.FetchDataset(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)

	server2 := newCatalogServer(t, map[string]int{"/categories": http.StatusForbidden})
	defer server2.Close()

	client = NewClient(server2.URL, time.Second, logger.NewNop())
	_, err = client.FetchDataset(context.Background())
	assert.ErrorIs(t, err, ErrInvalidResponse)
}
