package create_draft

import (
	"context"

	"github.com/m04kA/D2D-MarketplaceService/internal/service/drafts/models"
)

type DraftService interface {
	Create(ctx context.Context, req *models.CreateDraftRequest) (*models.DraftResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
