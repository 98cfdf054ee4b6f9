package cancel_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
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
	bookingID string
	req       *models.CancelBookingRequest
	err       error
}

func (f *fakeService) Cancel(ctx context.Context, bookingID string, req *models.CancelBookingRequest) error {
	f.bookingID = bookingID
	f.req = req
	return f.err
}

func serve(svc BookingService, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/api/v1/bookings/{bookingId}/cancel", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/b-1/cancel", strings.NewReader(body))
	req.Header.Set(middleware.HeaderUserID, "u1")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_WithReason(t *testing.T) {
	svc := &fakeService{}

	rec := serve(svc, `{"cancellationReason":"changed plans"}`)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "b-1", svc.bookingID)
	require.NotNil(t, svc.req)
	assert.Equal(t, &models.CancelBookingRequest{UserID: "u1", CancellationReason: "changed plans"}, svc.req)
}

func TestHandler_EmptyBody(t *testing.T) {
	svc := &fakeService{}

	rec := serve(svc, "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "", svc.req.CancellationReason)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{"malformed body", `{"cancellationReason":`, nil, http.StatusBadRequest},
		{"unknown field", `{"userId":"u2"}`, nil, http.StatusBadRequest},
		{"not found", "", bookings.ErrBookingNotFound, http.StatusNotFound},
		{"foreign booking", "", bookings.ErrAccessDenied, http.StatusForbidden},
		{"already cancelled", "", bookings.ErrCannotCancel, http.StatusConflict},
		{"reason too long", "", bookings.ErrInvalidInput, http.StatusBadRequest},
		{"storage failure", "", bookings.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeService{err: tt.err}, tt.body)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
