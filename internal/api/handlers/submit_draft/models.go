package submit_draft

import (
	bookingModels "github.com/m04kA/D2D-MarketplaceService/internal/service/bookings/models"
	draftModels "github.com/m04kA/D2D-MarketplaceService/internal/service/drafts/models"
	confirmBooking "github.com/m04kA/D2D-MarketplaceService/internal/usecase/confirm_booking"
)

// SubmitDraftResponse HTTP response model
// Booking заполнен только после подтверждения, Message только при ошибке
type SubmitDraftResponse struct {
	Draft   *draftModels.DraftResponse     `json:"draft"`
	Booking *bookingModels.BookingResponse `json:"booking,omitempty"`
	Message string                         `json:"message,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmBooking.Response, message string) *SubmitDraftResponse {
	return &SubmitDraftResponse{
		Draft:   draftModels.FromDomainDraft(resp.Draft),
		Booking: bookingModels.FromDomainBooking(resp.Booking),
		Message: message,
	}
}
