package get_booking_options

import (
	"context"

	"github.com/m04kA/D2D-MarketplaceService/internal/service/drafts/models"
)

type DraftService interface {
	Options(ctx context.Context) *models.BookingOptionsResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
