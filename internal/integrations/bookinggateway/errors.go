package bookinggateway

import (
	"errors"
	"fmt"
)

var (
	// ErrRejected возвращается, когда шлюз отклонил бронирование
	// Конкретная причина доступна через *RejectionError
	ErrRejected = errors.New("booking gateway: booking rejected")

	// ErrUnavailable возвращается при временной недоступности шлюза (сеть, 5xx, 429)
	// Такие ошибки можно повторять
	ErrUnavailable = errors.New("booking gateway: unavailable")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("booking gateway client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от шлюза
	ErrInvalidResponse = errors.New("booking gateway client: invalid response")
)

// RejectionError отказ шлюза с причиной
type RejectionError struct {
	Reason string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("%s: %s", ErrRejected.Error(), e.Reason)
}

// Is позволяет проверять отказ через errors.Is(err, ErrRejected)
func (e *RejectionError) Is(target error) bool {
	return target == ErrRejected
}
