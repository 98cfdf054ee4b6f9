package search_filters

import (
	searchServices "github.com/m04kA/D2D-MarketplaceService/internal/usecase/search_services"
)

// FiltersResponse HTTP response model
type FiltersResponse struct {
	Categories []FilterOption `json:"categories"`
	PriceRange []FilterOption `json:"priceRange"`
	Rating     []FilterOption `json:"rating"`
}

// FilterOption значение фасета
type FilterOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// FromUseCaseResponse конвертирует фасеты в HTTP response
func FromUseCaseResponse(f *searchServices.Filters) *FiltersResponse {
	return &FiltersResponse{
		Categories: toOptions(f.Categories),
		PriceRange: toOptions(f.PriceRange),
		Rating:     toOptions(f.Rating),
	}
}

func toOptions(in []searchServices.FilterOption) []FilterOption {
	out := make([]FilterOption, 0, len(in))
	for _, o := range in {
		out = append(out, FilterOption{ID: o.ID, Label: o.Label})
	}
	return out
}
