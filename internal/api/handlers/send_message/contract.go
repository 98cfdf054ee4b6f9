package send_message

import (
	"context"

	"github.com/m04kA/D2D-MarketplaceService/internal/service/messages/models"
)

type MessageService interface {
	Send(ctx context.Context, req *models.SendMessageRequest) (*models.MessageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
