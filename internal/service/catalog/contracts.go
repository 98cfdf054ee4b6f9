package catalog

import "github.com/m04kA/D2D-MarketplaceService/internal/domain"

// CatalogStore интерфейс read-only каталога
type CatalogStore interface {
	ServiceByID(id string) (domain.Service, error)
	ProviderByID(id string) (domain.Provider, error)
	Providers() []domain.Provider
	Categories() []domain.Category
	ServicesByProvider(providerID string) []domain.Service
	ReviewsByService(serviceID string) []domain.Review
	ReviewsByProvider(providerID string) []domain.Review
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
