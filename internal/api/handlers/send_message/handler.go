package send_message

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/D2D-MarketplaceService/internal/api/handlers"
	"github.com/m04kA/D2D-MarketplaceService/internal/api/middleware"
	"github.com/m04kA/D2D-MarketplaceService/internal/service/messages"
	"github.com/m04kA/D2D-MarketplaceService/internal/service/messages/models"
)

const (
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmptyMessage       = "сообщение не может быть пустым"
	msgMessageTooLong     = "сообщение слишком длинное"
	msgProviderNotFound   = "провайдер не найден"
	msgUnavailable        = "чат временно недоступен"
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

// Handle POST /api/v1/providers/{providerId}/messages
// Ответ провайдера приходит позже, клиент видит его при следующем чтении переписки
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providerID := mux.Vars(r)["providerId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /providers/{id}/messages - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.SendMessageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /providers/{id}/messages - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID
	req.ProviderID = providerID

	message, err := h.service.Send(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, messages.ErrEmptyMessage):
			h.logger.Warn("POST /providers/{id}/messages - Empty message: provider_id=%s", providerID)
			handlers.RespondBadRequest(w, msgEmptyMessage)

		case errors.Is(err, messages.ErrMessageTooLong):
			h.logger.Warn("POST /providers/{id}/messages - Message too long: provider_id=%s", providerID)
			handlers.RespondBadRequest(w, msgMessageTooLong)

		case errors.Is(err, messages.ErrProviderNotFound):
			h.logger.Warn("POST /providers/{id}/messages - Provider not found: provider_id=%s", providerID)
			handlers.RespondNotFound(w, msgProviderNotFound)

		case errors.Is(err, messages.ErrClosed):
			h.logger.Warn("POST /providers/{id}/messages - Service closed: provider_id=%s", providerID)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgUnavailable)

		default:
			h.logger.Error("POST /providers/{id}/messages - Failed to send message: provider_id=%s, error=%v",
				providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /providers/{id}/messages - Message sent: message_id=%s, provider_id=%s, user_id=%s",
		message.ID, providerID, userID)
	handlers.RespondJSON(w, http.StatusCreated, message)
}
