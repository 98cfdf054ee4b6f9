package search_filters

import (
	"net/http"

	"github.com/m04kA/D2D-MarketplaceService/internal/api/handlers"
)

type Handler struct {
	useCase FiltersUseCase
	logger  Logger
}

func NewHandler(useCase FiltersUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/search/filters
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filters := h.useCase.Filters(r.Context())

	h.logger.Info("GET /search/filters - Filters retrieved: categories=%d", len(filters.Categories))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(filters))
}
