package create_draft

import (
	"errors"
	"net/http"

	"github.com/m04kA/D2D-MarketplaceService/internal/api/handlers"
	"github.com/m04kA/D2D-MarketplaceService/internal/api/middleware"
	"github.com/m04kA/D2D-MarketplaceService/internal/service/drafts"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgMissingServiceID   = "ID услуги обязателен"
	msgServiceNotFound    = "услуга не найдена"
)

type Handler struct {
	service DraftService
	logger  Logger
}

func NewHandler(service DraftService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/drafts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /drafts - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateDraftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /drafts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	draft, err := h.service.Create(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, drafts.ErrInvalidInput):
			h.logger.Warn("POST /drafts - Missing service ID: user_id=%s", userID)
			handlers.RespondBadRequest(w, msgMissingServiceID)

		case errors.Is(err, drafts.ErrServiceNotFound):
			h.logger.Warn("POST /drafts - Service not found: user_id=%s, service_id=%s", userID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("POST /drafts - Failed to create draft: user_id=%s, service_id=%s, error=%v",
				userID, req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /drafts - Draft created: draft_id=%s, user_id=%s, service_id=%s",
		draft.ID, userID, draft.ServiceID)
	handlers.RespondJSON(w, http.StatusCreated, draft)
}
