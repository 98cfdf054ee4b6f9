package discard_draft

import (
	"context"
)

type DraftService interface {
	Discard(ctx context.Context, draftID, userID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
