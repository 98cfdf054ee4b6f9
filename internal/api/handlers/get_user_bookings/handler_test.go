package get_user_bookings

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/D2D-MarketplaceService/internal/api/middleware"
	"github.com/m04kA/D2D-MarketplaceService/internal/service/bookings"
	"github.com/m04kA/D2D-MarketplaceService/internal/service/bookings/models"
	"github.com/m04kA/D2D-MarketplaceService/pkg/logger"
)

type fakeService struct {
	req *models.GetUserBookingsRequest
	err error
}

func (f *fakeService) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.BookingListResponse{Bookings: []models.BookingResponse{}, Count: 0}, nil
}

func serve(svc BookingService, target, userID string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/api/v1/users/{userId}/bookings", NewHandler(svc, logger.NewNop()).Handle)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set(middleware.HeaderUserID, userID)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_OwnHistory(t *testing.T) {
	svc := &fakeService{}

	rec := serve(svc, "/api/v1/users/u1/bookings?status=upcoming", "u1")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.req)
	assert.Equal(t, "u1", svc.req.UserID)
	require.NotNil(t, svc.req.Status)
	assert.Equal(t, "upcoming", *svc.req.Status)
	assert.JSONEq(t, `{"bookings":[],"count":0}`, rec.Body.String())
}

func TestHandler_ForeignHistory(t *testing.T) {
	svc := &fakeService{}

	rec := serve(svc, "/api/v1/users/u2/bookings", "u1")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Nil(t, svc.req)
}

func TestHandler_InvalidStatus(t *testing.T) {
	svc := &fakeService{err: fmt.Errorf("%w: invalid status", bookings.ErrInvalidInput)}

	rec := serve(svc, "/api/v1/users/u1/bookings?status=archived", "u1")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
