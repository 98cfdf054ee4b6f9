package models

import (
	"errors"
	"time"

	"github.com/m04kA/D2D-MarketplaceService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID             string `json:"-"`
	CancellationReason string `json:"cancellationReason"`
}

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID string  `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID         string  `json:"id"`
	UserID     string  `json:"userId"`
	ServiceID  string  `json:"serviceId"`
	ProviderID string  `json:"providerId"`
	Status     string  `json:"status"`
	Date       string  `json:"date"`      // "2025-10-15"
	Time       string  `json:"time"`      // "09:00"
	TimeLabel  string  `json:"timeLabel"` // "9:00 AM"
	AddressID  string  `json:"addressId"`
	Address    string  `json:"address"`
	PaymentID  string  `json:"paymentId"`
	Price      float64 `json:"price"`

	// Денормализованные данные
	ServiceTitle   string `json:"serviceTitle"`
	ServiceImage   string `json:"serviceImage,omitempty"`
	ProviderName   string `json:"providerName"`
	ProviderAvatar string `json:"providerAvatar,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Count    int               `json:"count"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		UserID:             b.UserID,
		ServiceID:          b.ServiceID,
		ProviderID:         b.ProviderID,
		Status:             string(b.Status),
		Date:               b.Date.Format(domain.DateFormat),
		Time:               b.Time.String(),
		TimeLabel:          b.Time.Display(),
		AddressID:          b.AddressID,
		Address:            b.Address,
		PaymentID:          b.PaymentID,
		Price:              b.Price,
		ServiceTitle:       b.ServiceTitle,
		ProviderName:       b.ProviderName,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}
	resp.Count = len(resp.Bookings)

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
