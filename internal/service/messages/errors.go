package messages

import "errors"

var (
	// ErrProviderNotFound возвращается, когда провайдер не найден
	ErrProviderNotFound = errors.New("messages: provider not found")

	// ErrEmptyMessage возвращается, когда текст сообщения пустой
	ErrEmptyMessage = errors.New("messages: message text is empty")

	// ErrMessageTooLong возвращается, когда текст превышает допустимую длину
	ErrMessageTooLong = errors.New("messages: message text is too long")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("messages: invalid input data")

	// ErrClosed возвращается после остановки сервиса
	ErrClosed = errors.New("messages: service is closed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("messages: internal error")
)
