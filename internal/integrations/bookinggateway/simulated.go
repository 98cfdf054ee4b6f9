package bookinggateway

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Simulated шлюз без внешнего сервиса: ждёт задержку и всегда принимает бронирование
// Ожидание прерывается отменой контекста
type Simulated struct {
	delay time.Duration
	log   Logger
}

// NewSimulated создает имитацию шлюза
func NewSimulated(delay time.Duration, log Logger) *Simulated {
	if delay < 0 {
		delay = 0
	}
	return &Simulated{delay: delay, log: log}
}

// Reserve ждёт задержку и возвращает сгенерированный ID
func (s *Simulated) Reserve(ctx context.Context, reservation ReservationRequest) (string, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return "", err
	}

	id := uuid.NewString()
	s.log.Info("Simulated gateway accepted reservation: booking_id=%s, service_id=%s, date=%s, time=%s",
		id, reservation.ServiceID, reservation.Date, reservation.Time)
	return id, nil
}

// Release ничего не делает
func (s *Simulated) Release(ctx context.Context, bookingID string) error {
	return nil
}
