package drafts

import (
	"context"
	"time"

	"github.com/m04kA/D2D-MarketplaceService/internal/domain"
)

// DraftRepository интерфейс хранилища черновиков
type DraftRepository interface {
	Create(ctx context.Context, d *domain.Draft) error
	Get(ctx context.Context, id string) (*domain.Draft, error)
	Update(ctx context.Context, d *domain.Draft) error
	Delete(ctx context.Context, id string) error
}

// CatalogStore интерфейс каталога
type CatalogStore interface {
	ServiceByID(id string) (domain.Service, error)
	ProviderByID(id string) (domain.Provider, error)
}

// SubmissionCanceller отменяет выполняющееся подтверждение черновика
type SubmissionCanceller interface {
	Cancel(draftID string) bool
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
