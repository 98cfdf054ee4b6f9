package search_services

import (
	"context"

	searchServices "github.com/m04kA/D2D-MarketplaceService/internal/usecase/search_services"
)

type SearchServicesUseCase interface {
	Execute(ctx context.Context, req *searchServices.Request) *searchServices.Response
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
