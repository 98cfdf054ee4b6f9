package confirm_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrDraftNotFound возвращается, когда черновик не найден
	ErrDraftNotFound = errors.New("confirm_booking: draft not found")

	// ErrAccessDenied возвращается, когда черновик принадлежит другому пользователю
	ErrAccessDenied = errors.New("confirm_booking: access denied")

	// ErrInvalidState возвращается, когда черновик нельзя отправить в текущем состоянии
	ErrInvalidState = errors.New("confirm_booking: draft cannot be submitted in its current state")

	// ErrBookingRejected возвращается, когда бронирование отклонено
	// Причина доступна через *BookingRejectedError
	ErrBookingRejected = errors.New("confirm_booking: booking rejected")

	// ErrGatewayUnavailable возвращается, когда шлюз недоступен после всех повторов
	ErrGatewayUnavailable = errors.New("confirm_booking: booking gateway unavailable")

	// ErrSubmissionCancelled возвращается, когда отправка отменена (черновик удалён или сервис останавливается)
	ErrSubmissionCancelled = errors.New("confirm_booking: submission cancelled")

	// ErrShuttingDown возвращается при попытке отправки после Close
	ErrShuttingDown = errors.New("confirm_booking: use case is shutting down")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_booking: internal error")
)

// Причины отказа, которые видит пользователь
const (
	ReasonSlotUnavailable    = "slot no longer available"
	ReasonDateInPast         = "selected time has already passed"
	ReasonAddressUnavailable = "selected address is no longer available"
	ReasonPaymentUnavailable = "selected payment method is no longer available"
	ReasonGatewayUnavailable = "booking service temporarily unavailable"
	ReasonInternal           = "booking could not be completed"
)

// BookingRejectedError отказ в бронировании с причиной
// Выбор пользователя в черновике при этом сохраняется
type BookingRejectedError struct {
	Reason string
}

func (e *BookingRejectedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrBookingRejected.Error(), e.Reason)
}

// Is позволяет проверять отказ через errors.Is(err, ErrBookingRejected)
func (e *BookingRejectedError) Is(target error) bool {
	return target == ErrBookingRejected
}
