package search_services

import "github.com/m04kA/D2D-MarketplaceService/internal/domain"

// Catalog интерфейс каталога услуг
type Catalog interface {
	Services() []domain.Service
	Categories() []domain.Category
}

// Metrics интерфейс для метрик поиска
type Metrics interface {
	ObserveSearch(emptyQuery bool, results int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
