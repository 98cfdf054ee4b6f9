package get_provider

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/D2D-MarketplaceService/internal/api/handlers"
	"github.com/m04kA/D2D-MarketplaceService/internal/service/catalog"
)

const msgProviderNotFound = "провайдер не найден"

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

// Handle GET /api/v1/providers/{providerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providerID := mux.Vars(r)["providerId"]

	details, err := h.service.GetProvider(r.Context(), providerID)
	if err != nil {
		if errors.Is(err, catalog.ErrProviderNotFound) {
			h.logger.Warn("GET /providers/{id} - Provider not found: provider_id=%s", providerID)
			handlers.RespondNotFound(w, msgProviderNotFound)
			return
		}
		h.logger.Error("GET /providers/{id} - Failed to get provider: provider_id=%s, error=%v", providerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /providers/{id} - Provider retrieved: provider_id=%s, services=%d",
		providerID, len(details.Services))
	handlers.RespondJSON(w, http.StatusOK, details)
}
