package get_service

import (
	"context"

	"github.com/m04kA/D2D-MarketplaceService/internal/service/catalog/models"
)

type CatalogService interface {
	GetService(ctx context.Context, serviceID string) (*models.ServiceDetailsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
