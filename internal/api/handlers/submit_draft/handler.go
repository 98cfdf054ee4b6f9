package submit_draft

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/D2D-MarketplaceService/internal/api/handlers"
	"github.com/m04kA/D2D-MarketplaceService/internal/api/middleware"
	confirmBooking "github.com/m04kA/D2D-MarketplaceService/internal/usecase/confirm_booking"
)

const (
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidWait        = "некорректное значение параметра wait"
	msgNotFound           = "черновик не найден"
	msgForbidden          = "доступ запрещен"
	msgInvalidState       = "черновик нельзя отправить в текущем состоянии"
	msgGatewayUnavailable = "сервис бронирования временно недоступен, попробуйте позже"
	msgCancelled          = "отправка черновика отменена"
	msgShuttingDown       = "сервис останавливается, попробуйте позже"
)

type Handler struct {
	useCase ConfirmBookingUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/drafts/{draftId}/submit
// Query params: wait (опционально). Без wait=true отправка идёт в фоне и ответ 202,
// клиент опрашивает GET /drafts/{draftId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /drafts/{id}/submit - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	wait := false
	if raw := r.URL.Query().Get("wait"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("POST /drafts/{id}/submit - Invalid wait param: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidWait)
			return
		}
		wait = parsed
	}

	req := &confirmBooking.Request{DraftID: draftID, UserID: userID}

	if !wait {
		result, err := h.useCase.SubmitAsync(r.Context(), req)
		if err != nil {
			h.respondError(w, draftID, userID, nil, err)
			return
		}

		h.logger.Info("POST /drafts/{id}/submit - Submission started: draft_id=%s, user_id=%s", draftID, userID)
		handlers.RespondJSON(w, http.StatusAccepted, FromUseCaseResponse(result, ""))
		return
	}

	// Отмена запроса клиентом отменяет отправку, черновик возвращается в draft
	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		h.respondError(w, draftID, userID, result, err)
		return
	}

	h.logger.Info("POST /drafts/{id}/submit - Booking confirmed: draft_id=%s, booking_id=%s",
		draftID, result.Booking.ID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, ""))
}

// respondError отвечает ошибкой; если отправка дошла до результата, в ответ кладётся черновик
func (h *Handler) respondError(w http.ResponseWriter, draftID, userID string, result *confirmBooking.Response, err error) {
	var rejection *confirmBooking.BookingRejectedError

	switch {
	case errors.Is(err, confirmBooking.ErrDraftNotFound):
		h.logger.Warn("POST /drafts/{id}/submit - Draft not found: draft_id=%s", draftID)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, confirmBooking.ErrAccessDenied):
		h.logger.Warn("POST /drafts/{id}/submit - Access denied: draft_id=%s, user_id=%s", draftID, userID)
		handlers.RespondForbidden(w, msgForbidden)

	case errors.Is(err, confirmBooking.ErrInvalidState):
		h.logger.Warn("POST /drafts/{id}/submit - Invalid state: draft_id=%s, error=%v", draftID, err)
		handlers.RespondConflict(w, msgInvalidState)

	case errors.Is(err, confirmBooking.ErrShuttingDown):
		h.logger.Warn("POST /drafts/{id}/submit - Shutting down: draft_id=%s", draftID)
		handlers.RespondError(w, http.StatusServiceUnavailable, msgShuttingDown)

	case errors.As(err, &rejection):
		h.logger.Warn("POST /drafts/{id}/submit - Booking rejected: draft_id=%s, reason=%s", draftID, rejection.Reason)
		h.respondWithDraft(w, http.StatusConflict, result, rejection.Reason)

	case errors.Is(err, confirmBooking.ErrGatewayUnavailable):
		h.logger.Error("POST /drafts/{id}/submit - Gateway unavailable: draft_id=%s, error=%v", draftID, err)
		h.respondWithDraft(w, http.StatusServiceUnavailable, result, msgGatewayUnavailable)

	case errors.Is(err, confirmBooking.ErrSubmissionCancelled):
		h.logger.Warn("POST /drafts/{id}/submit - Submission cancelled: draft_id=%s", draftID)
		h.respondWithDraft(w, http.StatusConflict, result, msgCancelled)

	default:
		h.logger.Error("POST /drafts/{id}/submit - Failed to submit draft: draft_id=%s, error=%v", draftID, err)
		handlers.RespondInternalError(w)
	}
}

func (h *Handler) respondWithDraft(w http.ResponseWriter, status int, result *confirmBooking.Response, message string) {
	if result == nil || result.Draft == nil {
		handlers.RespondError(w, status, message)
		return
	}
	handlers.RespondJSON(w, status, FromUseCaseResponse(result, message))
}
