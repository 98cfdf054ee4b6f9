package search_services

import "github.com/m04kA/D2D-MarketplaceService/internal/domain"

// Request модель поискового запроса
type Request struct {
	Text       string   // Подстрока названия услуги (без учёта регистра)
	Categories []string // ID категорий
	PriceRange []string // low | medium | high | premium
	MinRating  []string // 4+ | 3+
}

// Response модель результата поиска
type Response struct {
	Services []domain.Service // В порядке каталога
	Count    int
}

// Filters доступные значения фасетов поиска
type Filters struct {
	Categories []FilterOption
	PriceRange []FilterOption
	Rating     []FilterOption
}

// FilterOption значение фасета
type FilterOption struct {
	ID    string
	Label string
}
