package confirm_booking

import (
	"context"
	"time"

	"github.com/m04kA/D2D-MarketplaceService/internal/domain"
	"github.com/m04kA/D2D-MarketplaceService/internal/integrations/bookinggateway"
	"github.com/m04kA/D2D-MarketplaceService/pkg/types"
)

// DraftRepository интерфейс хранилища черновиков
type DraftRepository interface {
	Get(ctx context.Context, id string) (*domain.Draft, error)
	Update(ctx context.Context, d *domain.Draft) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	ExistsUpcomingForSlot(ctx context.Context, providerID string, date time.Time, slot types.TimeString) (bool, error)
}

// CatalogStore интерфейс каталога
type CatalogStore interface {
	ServiceByID(id string) (domain.Service, error)
	ProviderByID(id string) (domain.Provider, error)
}

// BookingGateway внешний сервис бронирования
type BookingGateway interface {
	Reserve(ctx context.Context, reservation bookinggateway.ReservationRequest) (string, error)
	Release(ctx context.Context, bookingID string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics интерфейс метрик подтверждения
type Metrics interface {
	ObserveSubmission(outcome string, attempts int)
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
