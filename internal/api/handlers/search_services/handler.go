package search_services

import (
	"net/http"

	"github.com/m04kA/D2D-MarketplaceService/internal/api/handlers"
)

type Handler struct {
	useCase SearchServicesUseCase
	logger  Logger
}

func NewHandler(useCase SearchServicesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/services
// Query params: q, category, price, rating (все опциональны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := ToUseCaseRequest(r.URL.Query())

	// Поиск не возвращает ошибок: неизвестные значения фасетов просто ничему не соответствуют
	result := h.useCase.Execute(r.Context(), req)

	h.logger.Info("GET /services - Search completed: q=%q, categories=%v, price=%v, rating=%v, count=%d",
		req.Text, req.Categories, req.PriceRange, req.MinRating, result.Count)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
