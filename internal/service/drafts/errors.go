package drafts

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден или истёк
	ErrDraftNotFound = errors.New("draft not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("service not found")

	// ErrAccessDenied возвращается, когда черновик принадлежит другому пользователю
	ErrAccessDenied = errors.New("access denied")

	// ErrDraftLocked возвращается при изменении черновика, который отправляется или уже подтверждён
	ErrDraftLocked = errors.New("draft cannot be changed in its current state")

	// ErrConcurrentUpdate возвращается, когда черновик изменён параллельно
	ErrConcurrentUpdate = errors.New("draft was modified concurrently")

	// ErrInvalidDate возвращается, когда дата не входит в окно бронирования
	ErrInvalidDate = errors.New("date is outside the booking window")

	// ErrInvalidTimeSlot возвращается, когда время не входит в список слотов
	ErrInvalidTimeSlot = errors.New("invalid time slot")

	// ErrAddressNotFound возвращается при неизвестном адресе
	ErrAddressNotFound = errors.New("address not found")

	// ErrPaymentMethodNotFound возвращается при неизвестном способе оплаты
	ErrPaymentMethodNotFound = errors.New("payment method not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
