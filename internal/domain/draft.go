package domain

import (
	"time"

	"github.com/m04kA/D2D-MarketplaceService/pkg/types"
)

// DraftState represents the state of a booking draft
type DraftState string

const (
	DraftStateDraft      DraftState = "draft"
	DraftStateSubmitting DraftState = "submitting"
	DraftStateConfirmed  DraftState = "confirmed"
	DraftStateFailed     DraftState = "failed"
)

// Draft represents an in-progress, uncommitted booking selection
//
// Transitions:
//
//	draft      -> submitting  (Submit)
//	failed     -> submitting  (Submit again)
//	failed     -> draft       (selection updated)
//	submitting -> confirmed   (booking accepted)
//	submitting -> failed      (booking rejected or gateway unavailable)
//	submitting -> draft       (submission cancelled)
type Draft struct {
	ID         string // uuid
	UserID     string
	ServiceID  string
	ProviderID string
	Price      float64
	State      DraftState

	Date      time.Time // дата без времени
	Time      types.TimeString
	AddressID string
	PaymentID string

	BookingID       *string // заполняется в состоянии confirmed
	RejectionReason *string // заполняется в состоянии failed
	Attempts        int     // количество отправок

	// Version увеличивается при каждом сохранении (оптимистичная блокировка)
	Version int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanSubmit returns true if the draft may be submitted
func (d *Draft) CanSubmit() bool {
	return d.State == DraftStateDraft || d.State == DraftStateFailed
}

// CanUpdate returns true if the selection may still be changed
func (d *Draft) CanUpdate() bool {
	return d.State == DraftStateDraft || d.State == DraftStateFailed
}

// Address represents a saved user address
type Address struct {
	ID        string
	Title     string
	Address   string
	IsDefault bool
}

// PaymentMethod represents a saved payment method
type PaymentMethod struct {
	ID        string
	Type      string
	Brand     string
	Last4     string
	IsDefault bool
}

// BookingOptions lists the choices a draft may take
// The first entry of every list is the default selection
type BookingOptions struct {
	Dates          []time.Time
	TimeSlots      []types.TimeString
	Addresses      []Address
	PaymentMethods []PaymentMethod
}
