package draft

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/m04kA/D2D-MarketplaceService/internal/domain"
	"github.com/m04kA/D2D-MarketplaceService/pkg/types"
)

// record формат хранения черновика в Redis
type record struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	ServiceID       string    `json:"serviceId"`
	ProviderID      string    `json:"providerId"`
	Price           float64   `json:"price"`
	State           string    `json:"state"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	AddressID       string    `json:"addressId"`
	PaymentID       string    `json:"paymentId"`
	BookingID       *string   `json:"bookingId,omitempty"`
	RejectionReason *string   `json:"rejectionReason,omitempty"`
	Attempts        int       `json:"attempts"`
	Version         int64     `json:"version"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func encode(d *domain.Draft) ([]byte, error) {
	rec := record{
		ID:              d.ID,
		UserID:          d.UserID,
		ServiceID:       d.ServiceID,
		ProviderID:      d.ProviderID,
		Price:           d.Price,
		State:           string(d.State),
		Date:            d.Date.Format(domain.DateFormat),
		Time:            d.Time.String(),
		AddressID:       d.AddressID,
		PaymentID:       d.PaymentID,
		BookingID:       d.BookingID,
		RejectionReason: d.RejectionReason,
		Attempts:        d.Attempts,
		Version:         d.Version,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return data, nil
}

func decode(data []byte) (*domain.Draft, error) {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	// Дата черновика хранится в локальной зоне сервера, как в памяти
	date, err := time.ParseInLocation(domain.DateFormat, rec.Date, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: date: %v", ErrDecode, err)
	}

	slot, err := types.NewTimeStringFromString(rec.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: time: %v", ErrDecode, err)
	}

	return &domain.Draft{
		ID:              rec.ID,
		UserID:          rec.UserID,
		ServiceID:       rec.ServiceID,
		ProviderID:      rec.ProviderID,
		Price:           rec.Price,
		State:           domain.DraftState(rec.State),
		Date:            date,
		Time:            slot,
		AddressID:       rec.AddressID,
		PaymentID:       rec.PaymentID,
		BookingID:       rec.BookingID,
		RejectionReason: rec.RejectionReason,
		Attempts:        rec.Attempts,
		Version:         rec.Version,
		CreatedAt:       rec.CreatedAt,
		UpdatedAt:       rec.UpdatedAt,
	}, nil
}

// clone глубокая копия черновика
func clone(d *domain.Draft) *domain.Draft {
	c := *d
	if d.BookingID != nil {
		v := *d.BookingID
		c.BookingID = &v
	}
	if d.RejectionReason != nil {
		v := *d.RejectionReason
		c.RejectionReason = &v
	}
	return &c
}
