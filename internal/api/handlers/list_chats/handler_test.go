package list_chats

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/D2D-MarketplaceService/internal/api/middleware"
	"github.com/m04kA/D2D-MarketplaceService/internal/service/messages/models"
	"github.com/m04kA/D2D-MarketplaceService/pkg/logger"
)

type fakeService struct {
	userID string
	query  string
	err    error
}

func (f *fakeService) ListChats(ctx context.Context, userID, query string) (*models.ChatListResponse, error) {
	f.userID = userID
	f.query = query
	if f.err != nil {
		return nil, f.err
	}
	return &models.ChatListResponse{Chats: []models.ChatSummaryResponse{}}, nil
}

func serve(svc MessageService, target string) *httptest.ResponseRecorder {
	h := middleware.Auth(http.HandlerFunc(NewHandler(svc, logger.NewNop()).Handle))

	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set(middleware.HeaderUserID, "u1")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandler_PassesSearchQuery(t *testing.T) {
	svc := &fakeService{}

	rec := serve(svc, "/api/v1/chats?q=+Emma+")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", svc.userID)
	assert.Equal(t, "Emma", svc.query)
	assert.JSONEq(t, `{"chats":[]}`, rec.Body.String())
}

func TestHandler_WithoutQuery(t *testing.T) {
	svc := &fakeService{}

	rec := serve(svc, "/api/v1/chats")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, svc.query)
}

func TestHandler_ServiceError(t *testing.T) {
	rec := serve(&fakeService{err: errors.New("boom")}, "/api/v1/chats")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
