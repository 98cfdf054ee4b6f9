package drafts

import (
	"time"

	"github.com/m04kA/D2D-MarketplaceService/internal/domain"
	"github.com/m04kA/D2D-MarketplaceService/pkg/types"
)

// BuildOptions собирает варианты выбора для черновика.
// Окно дат начинается с завтрашнего дня и содержит windowDays дней.
func BuildOptions(now time.Time, windowDays int) domain.BookingOptions {
	return domain.BookingOptions{
		Dates:          generateDates(now, windowDays),
		TimeSlots:      append([]types.TimeString(nil), domain.TimeSlots...),
		Addresses:      append([]domain.Address(nil), domain.SavedAddresses...),
		PaymentMethods: append([]domain.PaymentMethod(nil), domain.PaymentMethods...),
	}
}

// generateDates генерирует даты без времени: today+1 ... today+windowDays
func generateDates(now time.Time, windowDays int) []time.Time {
	today := dateOnly(now)
	dates := make([]time.Time, 0, windowDays)
	for i := 1; i <= windowDays; i++ {
		dates = append(dates, today.AddDate(0, 0, i))
	}
	return dates
}

// dateOnly обнуляет время, сохраняя день в часовом поясе now
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func containsDate(dates []time.Time, date time.Time) bool {
	for _, d := range dates {
		if isSameDay(d, date) {
			return true
		}
	}
	return false
}

func containsSlot(slots []types.TimeString, slot types.TimeString) bool {
	for _, s := range slots {
		if s.Equal(slot) {
			return true
		}
	}
	return false
}
