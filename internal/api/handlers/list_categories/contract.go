package list_categories

import (
	"context"

	"github.com/m04kA/D2D-MarketplaceService/internal/service/catalog/models"
)

type CatalogService interface {
	ListCategories(ctx context.Context) []models.CategoryResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
