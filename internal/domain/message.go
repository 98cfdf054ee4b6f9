package domain

import "time"

// Message represents a chat message between a user and a provider
type Message struct {
	ID         string
	UserID     string
	ProviderID string
	Text       string
	Timestamp  time.Time
	IsUser     bool // true - отправлено пользователем, false - провайдером
	IsSent     bool
	IsRead     bool
}
