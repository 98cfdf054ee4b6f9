package get_booking_options

import (
	"net/http"

	"github.com/m04kA/D2D-MarketplaceService/internal/api/handlers"
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

// Handle GET /api/v1/booking-options
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	options := h.service.Options(r.Context())

	h.logger.Info("GET /booking-options - Options retrieved: dates=%d, slots=%d",
		len(options.Dates), len(options.TimeSlots))
	handlers.RespondJSON(w, http.StatusOK, options)
}
