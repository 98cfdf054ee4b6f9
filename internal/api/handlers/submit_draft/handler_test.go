package submit_draft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/D2D-MarketplaceService/internal/api/middleware"
	"github.com/m04kA/D2D-MarketplaceService/internal/domain"
	confirmBooking "github.com/m04kA/D2D-MarketplaceService/internal/usecase/confirm_booking"
	"github.com/m04kA/D2D-MarketplaceService/pkg/logger"
	"github.com/m04kA/D2D-MarketplaceService/pkg/types"
)

type fakeUseCase struct {
	resp *confirmBooking.Response
	err  error

	executed bool
	async    bool
	req      *confirmBooking.Request
}

func (f *fakeUseCase) Execute(ctx context.Context, req *confirmBooking.Request) (*confirmBooking.Response, error) {
	f.executed = true
	f.req = req
	return f.resp, f.err
}

func (f *fakeUseCase) SubmitAsync(ctx context.Context, req *confirmBooking.Request) (*confirmBooking.Response, error) {
	f.async = true
	f.req = req
	return f.resp, f.err
}

func testDraft(state domain.DraftState) *domain.Draft {
	return &domain.Draft{
		ID:         "d1",
		UserID:     "u1",
		ServiceID:  "1",
		ProviderID: "1",
		Price:      45,
		State:      state,
		Date:       time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
		Time:       types.MustTimeString("09:00"),
		AddressID:  "1",
		PaymentID:  "1",
	}
}

func serve(t *testing.T, uc *fakeUseCase, target string, userID string) *httptest.ResponseRecorder {
	t.Helper()

	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/api/v1/drafts/{draftId}/submit", NewHandler(uc, logger.NewNop()).Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, target, nil)
	if userID != "" {
		req.Header.Set(middleware.HeaderUserID, userID)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) SubmitDraftResponse {
	t.Helper()
	var body SubmitDraftResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHandler_Async(t *testing.T) {
	uc := &fakeUseCase{resp: &confirmBooking.Response{Draft: testDraft(domain.DraftStateSubmitting)}}

	rec := serve(t, uc, "/api/v1/drafts/d1/submit", "u1")

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.True(t, uc.async)
	assert.False(t, uc.executed)
	assert.Equal(t, &confirmBooking.Request{DraftID: "d1", UserID: "u1"}, uc.req)

	body := decode(t, rec)
	require.NotNil(t, body.Draft)
	assert.Equal(t, "submitting", body.Draft.State)
	assert.Nil(t, body.Booking)
}

func TestHandler_WaitConfirmed(t *testing.T) {
	draft := testDraft(domain.DraftStateConfirmed)
	bookingID := "b-1"
	draft.BookingID = &bookingID

	uc := &fakeUseCase{resp: &confirmBooking.Response{
		Draft: draft,
		Booking: &domain.Booking{
			ID:         bookingID,
			UserID:     "u1",
			ServiceID:  "1",
			ProviderID: "1",
			Status:     domain.StatusUpcoming,
			Date:       draft.Date,
			Time:       draft.Time,
		},
	}}

	rec := serve(t, uc, "/api/v1/drafts/d1/submit?wait=true", "u1")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, uc.executed)

	body := decode(t, rec)
	assert.Equal(t, "confirmed", body.Draft.State)
	require.NotNil(t, body.Booking)
	assert.Equal(t, "b-1", body.Booking.ID)
}

func TestHandler_WaitRejected(t *testing.T) {
	draft := testDraft(domain.DraftStateFailed)
	reason := confirmBooking.ReasonSlotUnavailable
	draft.RejectionReason = &reason

	uc := &fakeUseCase{
		resp: &confirmBooking.Response{Draft: draft},
		err:  &confirmBooking.BookingRejectedError{Reason: reason},
	}

	rec := serve(t, uc, "/api/v1/drafts/d1/submit?wait=1", "u1")

	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "failed", body.Draft.State)
	assert.Equal(t, reason, body.Message)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", confirmBooking.ErrDraftNotFound, http.StatusNotFound},
		{"foreign draft", confirmBooking.ErrAccessDenied, http.StatusForbidden},
		{"already submitting", fmt.Errorf("%w: state=submitting", confirmBooking.ErrInvalidState), http.StatusConflict},
		{"shutting down", confirmBooking.ErrShuttingDown, http.StatusServiceUnavailable},
		{"gateway down", fmt.Errorf("%w: timeout", confirmBooking.ErrGatewayUnavailable), http.StatusServiceUnavailable},
		{"cancelled", confirmBooking.ErrSubmissionCancelled, http.StatusConflict},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{err: tt.err}
			rec := serve(t, uc, "/api/v1/drafts/d1/submit?wait=true", "u1")
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestHandler_BadRequests(t *testing.T) {
	uc := &fakeUseCase{}

	rec := serve(t, uc, "/api/v1/drafts/d1/submit?wait=maybe", "u1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(t, uc, "/api/v1/drafts/d1/submit", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	assert.False(t, uc.executed)
	assert.False(t, uc.async)
}
