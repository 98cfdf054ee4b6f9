package get_provider

import (
	"context"

	"github.com/m04kA/D2D-MarketplaceService/internal/service/catalog/models"
)

type CatalogService interface {
	GetProvider(ctx context.Context, providerID string) (*models.ProviderDetailsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
