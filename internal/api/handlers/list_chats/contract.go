package list_chats

import (
	"context"

	"github.com/m04kA/D2D-MarketplaceService/internal/service/messages/models"
)

type MessageService interface {
	ListChats(ctx context.Context, userID, query string) (*models.ChatListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
