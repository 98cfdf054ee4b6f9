package domain

import (
	"time"

	"github.com/m04kA/D2D-MarketplaceService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusUpcoming  BookingStatus = "upcoming"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// BookingStatuses все допустимые статусы
var BookingStatuses = []BookingStatus{StatusUpcoming, StatusCompleted, StatusCancelled}

// IsValid returns true for a known status
func (s BookingStatus) IsValid() bool {
	for _, known := range BookingStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Booking represents a confirmed service booking
type Booking struct {
	ID         string // выдаётся шлюзом бронирования
	UserID     string
	ServiceID  string
	ProviderID string
	Status     BookingStatus
	Date       time.Time // дата без времени
	Time       types.TimeString
	AddressID  string
	PaymentID  string
	Price      float64

	// Denormalized data for history
	ServiceTitle string
	ProviderName string
	Address      string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still holds its slot
func (b *Booking) IsActive() bool {
	return b.Status == StatusUpcoming
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusUpcoming
}

// UserBookingsFilter фильтр для списка бронирований пользователя
type UserBookingsFilter struct {
	UserID string         // Обязательный параметр
	Status *BookingStatus // Фильтр по статусу (опционально)
}
