package bookinggateway

// ReservationRequest запрос на бронирование
type ReservationRequest struct {
	ServiceID  string `json:"serviceId"`
	ProviderID string `json:"providerId"`
	Date       string `json:"date"` // "2025-10-15"
	Time       string `json:"time"` // "09:00"
	AddressID  string `json:"addressId"`
	PaymentID  string `json:"paymentId"`
}

// ReservationResponse ответ шлюза при успешном бронировании
type ReservationResponse struct {
	BookingID string `json:"bookingId"`
}

// ErrorResponse модель ошибки от шлюза
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
