package confirm_booking

import (
	"time"

	"github.com/m04kA/D2D-MarketplaceService/internal/domain"
)

// Request модель запроса на отправку черновика
type Request struct {
	DraftID string
	UserID  string
}

// Response состояние черновика после отправки
// Booking заполнен только в состоянии confirmed
type Response struct {
	Draft   *domain.Draft
	Booking *domain.Booking
}

// RetryPolicy параметры повторов при недоступности шлюза
type RetryPolicy struct {
	MaxAttempts int           // всего попыток, включая первую
	BaseDelay   time.Duration // задержка перед первым повтором
	MaxDelay    time.Duration // верхняя граница задержки
}

// DefaultRetryPolicy политика повторов по умолчанию
var DefaultRetryPolicy = RetryPolicy{
	MaxAttempts: 3,
	BaseDelay:   200 * time.Millisecond,
	MaxDelay:    2 * time.Second,
}

// outcome исход отправки для метрик
type outcome string

const (
	outcomeConfirmed   outcome = "confirmed"
	outcomeRejected    outcome = "rejected"
	outcomeUnavailable outcome = "unavailable"
	outcomeCancelled   outcome = "cancelled"
	outcomeError       outcome = "error"
)
