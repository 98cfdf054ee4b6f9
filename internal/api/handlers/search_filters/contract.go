package search_filters

import (
	"context"

	searchServices "github.com/m04kA/D2D-MarketplaceService/internal/usecase/search_services"
)

type FiltersUseCase interface {
	Filters(ctx context.Context) *searchServices.Filters
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
