package list_categories

import (
	"net/http"

	"github.com/m04kA/D2D-MarketplaceService/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/categories
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	categories := h.service.ListCategories(r.Context())

	h.logger.Info("GET /categories - Categories retrieved: count=%d", len(categories))
	handlers.RespondJSON(w, http.StatusOK, categories)
}
