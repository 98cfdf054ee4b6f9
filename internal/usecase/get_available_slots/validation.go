package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/D2D-MarketplaceService/internal/domain"
	"github.com/m04kA/D2D-MarketplaceService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ProviderID == "" {
		return fmt.Errorf("%w: providerID is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата входит в окно бронирования
func validateDate(requestDate time.Time, now time.Time, windowDays int) error {
	// Проверяем, что дата не в прошлом
	if isDateInPast(requestDate, now) {
		return ErrInvalidDate
	}

	maxDate := dateOnly(now).AddDate(0, 0, windowDays)
	if dateOnly(requestDate).After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, windowDays)
	}

	return nil
}

// buildSlots отмечает занятые слоты фиксированного списка
// Для сегодняшней даты прошедшие слоты не возвращаются
func buildSlots(date time.Time, now time.Time, bookings []*domain.Booking) []Slot {
	booked := make(map[int]bool, len(bookings))
	for _, booking := range bookings {
		if booking.IsActive() {
			booked[booking.Time.Minutes()] = true
		}
	}

	today := isSameDay(date, now)
	current := types.NewTimeString(now)

	slots := make([]Slot, 0, len(domain.TimeSlots))
	for _, slot := range domain.TimeSlots {
		if today && slot.IsBefore(current) {
			continue
		}
		slots = append(slots, Slot{
			StartTime: slot,
			Available: !booked[slot.Minutes()],
		})
	}

	return slots
}

// dateOnly обнуляет время
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	return dateOnly(date).Before(dateOnly(now))
}
