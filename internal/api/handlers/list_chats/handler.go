package list_chats

import (
	"net/http"
	"strings"

	"github.com/m04kA/D2D-MarketplaceService/internal/api/handlers"
	"github.com/m04kA/D2D-MarketplaceService/internal/api/middleware"
)

const msgMissingUserID = "отсутствует ID пользователя"

type Handler struct {
	service MessageService
	logger  Logger
}

func NewHandler(service MessageService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/chats?q=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /chats - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("q"))

	chats, err := h.service.ListChats(r.Context(), userID, query)
	if err != nil {
		h.logger.Error("GET /chats - Failed to list chats: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /chats - Chats retrieved: user_id=%s, q=%q, count=%d", userID, query, len(chats.Chats))
	handlers.RespondJSON(w, http.StatusOK, chats)
}
