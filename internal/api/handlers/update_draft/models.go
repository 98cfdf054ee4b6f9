package update_draft

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/D2D-MarketplaceService/internal/domain"
	"github.com/m04kA/D2D-MarketplaceService/internal/service/drafts/models"
	"github.com/m04kA/D2D-MarketplaceService/pkg/types"
)

// UpdateDraftRequest HTTP request model
// Незаполненные поля не меняются
type UpdateDraftRequest struct {
	Date      *string `json:"date,omitempty"` // "2025-10-15"
	Time      *string `json:"time,omitempty"` // "09:00"
	AddressID *string `json:"addressId,omitempty"`
	PaymentID *string `json:"paymentId,omitempty"`
}

var (
	errInvalidDate = fmt.Errorf("invalid date, expected %s", domain.DateFormat)
	errInvalidTime = errors.New("invalid time, expected HH:MM")
)

// ToServiceRequest конвертирует HTTP request в модель сервиса (с парсингом даты и времени)
func (r *UpdateDraftRequest) ToServiceRequest(userID string) (*models.UpdateDraftRequest, error) {
	req := &models.UpdateDraftRequest{
		UserID:    userID,
		AddressID: r.AddressID,
		PaymentID: r.PaymentID,
	}

	if r.Date != nil {
		date, err := time.ParseInLocation(domain.DateFormat, *r.Date, time.Local)
		if err != nil {
			return nil, errInvalidDate
		}
		req.Date = &date
	}

	if r.Time != nil {
		slot, err := types.NewTimeStringFromString(*r.Time)
		if err != nil {
			return nil, errInvalidTime
		}
		req.Time = &slot
	}

	return req, nil
}
