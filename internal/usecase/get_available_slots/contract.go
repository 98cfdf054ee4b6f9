package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/D2D-MarketplaceService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetUpcomingByProviderAndDate получает активные бронирования провайдера на дату
	GetUpcomingByProviderAndDate(ctx context.Context, providerID string, date time.Time) ([]*domain.Booking, error)
}

// CatalogStore интерфейс каталога
type CatalogStore interface {
	ProviderByID(id string) (domain.Provider, error)
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
