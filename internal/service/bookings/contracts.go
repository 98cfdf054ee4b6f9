package bookings

import (
	"context"

	"github.com/m04kA/D2D-MarketplaceService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByUserID(ctx context.Context, filter domain.UserBookingsFilter) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id string, reason string) error
}

// CatalogStore интерфейс каталога для обогащения бронирований
type CatalogStore interface {
	ServiceByID(id string) (domain.Service, error)
	ProviderByID(id string) (domain.Provider, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
