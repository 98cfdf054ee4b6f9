package list_providers

import (
	"context"

	"github.com/m04kA/D2D-MarketplaceService/internal/service/catalog/models"
)

type CatalogService interface {
	ListProviders(ctx context.Context) []models.ProviderResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
