package list_messages

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/D2D-MarketplaceService/internal/api/handlers"
	"github.com/m04kA/D2D-MarketplaceService/internal/api/middleware"
	"github.com/m04kA/D2D-MarketplaceService/internal/service/messages"
)

const (
	msgMissingUserID    = "отсутствует ID пользователя"
	msgProviderNotFound = "провайдер не найден"
)

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

// Handle GET /api/v1/providers/{providerId}/messages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providerID := mux.Vars(r)["providerId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /providers/{id}/messages - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	conversation, err := h.service.List(r.Context(), userID, providerID)
	if err != nil {
		if errors.Is(err, messages.ErrProviderNotFound) {
			h.logger.Warn("GET /providers/{id}/messages - Provider not found: provider_id=%s", providerID)
			handlers.RespondNotFound(w, msgProviderNotFound)
			return
		}
		h.logger.Error("GET /providers/{id}/messages - Failed to list messages: provider_id=%s, error=%v",
			providerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /providers/{id}/messages - Messages retrieved: provider_id=%s, user_id=%s, count=%d",
		providerID, userID, len(conversation.Messages))
	handlers.RespondJSON(w, http.StatusOK, conversation)
}
