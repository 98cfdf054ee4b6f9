package update_draft

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/D2D-MarketplaceService/internal/api/handlers"
	"github.com/m04kA/D2D-MarketplaceService/internal/api/middleware"
	"github.com/m04kA/D2D-MarketplaceService/internal/service/drafts"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidDateFormat  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTimeFormat  = "некорректный формат времени, ожидается HH:MM"
	msgNotFound           = "черновик не найден"
	msgForbidden          = "доступ запрещен"
	msgDraftLocked        = "черновик нельзя изменить в текущем состоянии"
	msgConcurrentUpdate   = "черновик был изменён параллельно, повторите запрос"
	msgInvalidDate        = "дата вне окна бронирования"
	msgInvalidTimeSlot    = "некорректный временной слот"
	msgAddressNotFound    = "адрес не найден"
	msgPaymentNotFound    = "способ оплаты не найден"
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

// Handle PATCH /api/v1/drafts/{draftId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /drafts/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateDraftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /drafts/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(userID)
	if err != nil {
		h.logger.Warn("PATCH /drafts/{id} - Failed to parse request: %v", err)
		if errors.Is(err, errInvalidTime) {
			handlers.RespondBadRequest(w, msgInvalidTimeFormat)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDateFormat)
		}
		return
	}

	draft, err := h.service.Update(r.Context(), draftID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, drafts.ErrDraftNotFound):
			h.logger.Warn("PATCH /drafts/{id} - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, drafts.ErrAccessDenied):
			h.logger.Warn("PATCH /drafts/{id} - Access denied: draft_id=%s, user_id=%s", draftID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, drafts.ErrDraftLocked):
			h.logger.Warn("PATCH /drafts/{id} - Draft locked: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgDraftLocked)

		case errors.Is(err, drafts.ErrConcurrentUpdate):
			h.logger.Warn("PATCH /drafts/{id} - Concurrent update: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgConcurrentUpdate)

		case errors.Is(err, drafts.ErrInvalidDate):
			h.logger.Warn("PATCH /drafts/{id} - Date outside window: draft_id=%s", draftID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, drafts.ErrInvalidTimeSlot):
			h.logger.Warn("PATCH /drafts/{id} - Invalid time slot: draft_id=%s", draftID)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, drafts.ErrAddressNotFound):
			h.logger.Warn("PATCH /drafts/{id} - Address not found: draft_id=%s", draftID)
			handlers.RespondBadRequest(w, msgAddressNotFound)

		case errors.Is(err, drafts.ErrPaymentMethodNotFound):
			h.logger.Warn("PATCH /drafts/{id} - Payment method not found: draft_id=%s", draftID)
			handlers.RespondBadRequest(w, msgPaymentNotFound)

		default:
			h.logger.Error("PATCH /drafts/{id} - Failed to update draft: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /drafts/{id} - Draft updated: draft_id=%s, user_id=%s", draftID, userID)
	handlers.RespondJSON(w, http.StatusOK, draft)
}
