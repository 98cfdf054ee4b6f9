package get_available_slots

import (
	"time"

	"github.com/m04kA/D2D-MarketplaceService/pkg/types"
)

// Request модель запроса на получение занятости провайдера
type Request struct {
	ProviderID string    // ID провайдера
	Date       time.Time // Дата (без времени)
}

// Response модель ответа со списком слотов
type Response struct {
	Date       time.Time // Дата, на которую запрашивались слоты
	ProviderID string    // ID провайдера
	Slots      []Slot    // Слоты из фиксированного списка
}

// Slot модель временного слота
type Slot struct {
	StartTime types.TimeString // Время начала слота (например, "10:00")
	Available bool             // false, если слот занят активным бронированием
}
