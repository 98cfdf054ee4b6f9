package list_messages

import (
	"context"

	"github.com/m04kA/D2D-MarketplaceService/internal/service/messages/models"
)

type MessageService interface {
	List(ctx context.Context, userID, providerID string) (*models.ConversationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
