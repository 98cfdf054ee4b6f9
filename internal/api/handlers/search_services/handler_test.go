package search_services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/D2D-MarketplaceService/internal/domain"
	searchServices "github.com/m04kA/D2D-MarketplaceService/internal/usecase/search_services"
	"github.com/m04kA/D2D-MarketplaceService/pkg/logger"
)

type fakeUseCase struct {
	req *searchServices.Request
}

func (f *fakeUseCase) Execute(ctx context.Context, req *searchServices.Request) *searchServices.Response {
	f.req = req
	return &searchServices.Response{
		Services: []domain.Service{{ID: "1", Title: "Deep House Cleaning", Category: "cleaning", Price: 120}},
		Count:    1,
	}
}

func TestToUseCaseRequest_RepeatedAndCommaLists(t *testing.T) {
	query, err := url.ParseQuery("q=clean&category=cleaning&category=plumbing,%20electrical&price=low,,high&rating=4%2B")
	require.NoError(t, err)

	req := ToUseCaseRequest(query)

	assert.Equal(t, "clean", req.Text)
	assert.Equal(t, []string{"cleaning", "plumbing", "electrical"}, req.Categories)
	assert.Equal(t, []string{"low", "high"}, req.PriceRange)
	assert.Equal(t, []string{"4+"}, req.MinRating)
}

func TestToUseCaseRequest_UnencodedRating(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{raw: "rating=4+", want: []string{"4+"}},
		{raw: "rating=3+,4%2B", want: []string{"3+", "4+"}},
		{raw: "rating=4", want: []string{"4+"}},
		{raw: "rating=5+", want: []string{"5"}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			query, err := url.ParseQuery(tt.raw)
			require.NoError(t, err)

			assert.Equal(t, tt.want, ToUseCaseRequest(query).MinRating)
		})
	}
}

func TestToUseCaseRequest_Empty(t *testing.T) {
	req := ToUseCaseRequest(url.Values{})

	assert.Empty(t, req.Text)
	assert.Nil(t, req.Categories)
	assert.Nil(t, req.PriceRange)
	assert.Nil(t, req.MinRating)
}

func TestHandler_Handle(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/services?q=house&price=high", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "house", uc.req.Text)
	assert.Equal(t, []string{"high"}, uc.req.PriceRange)

	var body SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Count)
	require.Len(t, body.Services, 1)
	assert.Equal(t, "Deep House Cleaning", body.Services[0].Title)
}
