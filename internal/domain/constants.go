package domain

import "github.com/m04kA/D2D-MarketplaceService/pkg/types"

// Default configuration values
const (
	DefaultDateWindowDays = 7 // окно выбора даты, начиная с завтрашнего дня
)

// Business validation constants
const (
	MaxCancellationReasonLength = 500
	MaxMessageLength            = 2000
)

// DateFormat формат даты в API и в шлюзе бронирований
const DateFormat = "2006-01-02" // YYYY-MM-DD

// TimeSlots фиксированный список слотов для выбора времени
var TimeSlots = []types.TimeString{
	types.MustTimeString("09:00"),
	types.MustTimeString("10:00"),
	types.MustTimeString("11:00"),
	types.MustTimeString("12:00"),
	types.MustTimeString("13:00"),
	types.MustTimeString("14:00"),
	types.MustTimeString("15:00"),
	types.MustTimeString("16:00"),
	types.MustTimeString("17:00"),
}

// SavedAddresses сохранённые адреса пользователя
// Профилей пользователей в сервисе нет, список общий
var SavedAddresses = []Address{
	{ID: "1", Title: "Home", Address: "123 Main St, New York, NY 10001", IsDefault: true},
	{ID: "2", Title: "Work", Address: "456 Park Ave, New York, NY 10022", IsDefault: false},
}

// PaymentMethods сохранённые способы оплаты
var PaymentMethods = []PaymentMethod{
	{ID: "1", Type: "card", Brand: "Visa", Last4: "4242", IsDefault: true},
	{ID: "2", Type: "card", Brand: "Mastercard", Last4: "1234", IsDefault: false},
}

// FindAddress возвращает сохранённый адрес по ID
func FindAddress(id string) (Address, bool) {
	for _, a := range SavedAddresses {
		if a.ID == id {
			return a, true
		}
	}
	return Address{}, false
}

// FindPaymentMethod возвращает способ оплаты по ID
func FindPaymentMethod(id string) (PaymentMethod, bool) {
	for _, m := range PaymentMethods {
		if m.ID == id {
			return m, true
		}
	}
	return PaymentMethod{}, false
}
