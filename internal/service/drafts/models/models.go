package models

import (
	"time"

	"github.com/m04kA/D2D-MarketplaceService/internal/domain"
	"github.com/m04kA/D2D-MarketplaceService/pkg/types"
)

// Request модели

// CreateDraftRequest запрос на создание черновика
type CreateDraftRequest struct {
	UserID    string
	ServiceID string
}

// UpdateDraftRequest изменение выбора в черновике
// Незаполненные поля не меняются
type UpdateDraftRequest struct {
	UserID    string
	Date      *time.Time
	Time      *types.TimeString
	AddressID *string
	PaymentID *string
}

// Response модели

// DraftResponse состояние черновика
type DraftResponse struct {
	ID              string  `json:"id"`
	UserID          string  `json:"userId"`
	ServiceID       string  `json:"serviceId"`
	ProviderID      string  `json:"providerId"`
	Price           float64 `json:"price"`
	State           string  `json:"state"`
	Date            string  `json:"date"`      // "2025-10-15"
	Time            string  `json:"time"`      // "09:00"
	TimeLabel       string  `json:"timeLabel"` // "9:00 AM"
	AddressID       string  `json:"addressId"`
	PaymentID       string  `json:"paymentId"`
	BookingID       *string `json:"bookingId,omitempty"`
	RejectionReason *string `json:"rejectionReason,omitempty"`
	Attempts        int     `json:"attempts"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// BookingOptionsResponse варианты выбора для черновика
type BookingOptionsResponse struct {
	Dates          []DateOption          `json:"dates"`
	TimeSlots      []TimeSlotOption      `json:"timeSlots"`
	Addresses      []AddressOption       `json:"addresses"`
	PaymentMethods []PaymentMethodOption `json:"paymentMethods"`
}

// DateOption дата в окне бронирования
type DateOption struct {
	Date   string `json:"date"`   // "2025-10-15"
	Day    string `json:"day"`    // "Wed"
	DayNum int    `json:"dayNum"` // 15
}

// TimeSlotOption слот времени
type TimeSlotOption struct {
	Time  string `json:"time"`  // "13:00"
	Label string `json:"label"` // "1:00 PM"
}

// AddressOption сохранённый адрес
type AddressOption struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Address   string `json:"address"`
	IsDefault bool   `json:"isDefault"`
}

// PaymentMethodOption способ оплаты
type PaymentMethodOption struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Brand     string `json:"brand"`
	Last4     string `json:"last4"`
	IsDefault bool   `json:"isDefault"`
}

// Методы конвертации

// FromDomainDraft конвертирует domain модель в DTO
func FromDomainDraft(d *domain.Draft) *DraftResponse {
	if d == nil {
		return nil
	}

	return &DraftResponse{
		ID:              d.ID,
		UserID:          d.UserID,
		ServiceID:       d.ServiceID,
		ProviderID:      d.ProviderID,
		Price:           d.Price,
		State:           string(d.State),
		Date:            d.Date.Format(domain.DateFormat),
		Time:            d.Time.String(),
		TimeLabel:       d.Time.Display(),
		AddressID:       d.AddressID,
		PaymentID:       d.PaymentID,
		BookingID:       d.BookingID,
		RejectionReason: d.RejectionReason,
		Attempts:        d.Attempts,
		CreatedAt:       d.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       d.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainOptions конвертирует варианты выбора в DTO
func FromDomainOptions(o domain.BookingOptions) *BookingOptionsResponse {
	resp := &BookingOptionsResponse{
		Dates:          make([]DateOption, 0, len(o.Dates)),
		TimeSlots:      make([]TimeSlotOption, 0, len(o.TimeSlots)),
		Addresses:      make([]AddressOption, 0, len(o.Addresses)),
		PaymentMethods: make([]PaymentMethodOption, 0, len(o.PaymentMethods)),
	}

	for _, d := range o.Dates {
		resp.Dates = append(resp.Dates, DateOption{
			Date:   d.Format(domain.DateFormat),
			Day:    d.Format("Mon"),
			DayNum: d.Day(),
		})
	}
	for _, s := range o.TimeSlots {
		resp.TimeSlots = append(resp.TimeSlots, TimeSlotOption{Time: s.String(), Label: s.Display()})
	}
	for _, a := range o.Addresses {
		resp.Addresses = append(resp.Addresses, AddressOption{
			ID:        a.ID,
			Title:     a.Title,
			Address:   a.Address,
			IsDefault: a.IsDefault,
		})
	}
	for _, p := range o.PaymentMethods {
		resp.PaymentMethods = append(resp.PaymentMethods, PaymentMethodOption{
			ID:        p.ID,
			Type:      p.Type,
			Brand:     p.Brand,
			Last4:     p.Last4,
			IsDefault: p.IsDefault,
		})
	}

	return resp
}
