package list_providers

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

// Handle GET /api/v1/providers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providers := h.service.ListProviders(r.Context())

	h.logger.Info("GET /providers - Providers retrieved: count=%d", len(providers))
	handlers.RespondJSON(w, http.StatusOK, providers)
}
