package models

import (
	"time"

	"github.com/m04kA/D2D-MarketplaceService/internal/domain"
)

// Request модели

// SendMessageRequest запрос на отправку сообщения
type SendMessageRequest struct {
	UserID     string `json:"-"`
	ProviderID string `json:"-"`
	Text       string `json:"text"`
}

// Response модели

// MessageResponse сообщение переписки
type MessageResponse struct {
	ID         string    `json:"id"`
	ProviderID string    `json:"providerId"`
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp"`
	IsUser     bool      `json:"isUser"`
	IsSent     bool      `json:"isSent"`
	IsRead     bool      `json:"isRead"`
}

// ConversationResponse переписка с провайдером
type ConversationResponse struct {
	ProviderID     string            `json:"providerId"`
	ProviderName   string            `json:"providerName"`
	ProviderAvatar string            `json:"providerAvatar"`
	Profession     string            `json:"profession"`
	Messages       []MessageResponse `json:"messages"`
	Count          int               `json:"count"`
}

// ChatSummaryResponse строка списка чатов
type ChatSummaryResponse struct {
	ProviderID     string           `json:"providerId"`
	ProviderName   string           `json:"providerName"`
	ProviderAvatar string           `json:"providerAvatar"`
	Profession     string           `json:"profession"`
	LastMessage    *MessageResponse `json:"lastMessage,omitempty"`
}

// ChatListResponse список чатов пользователя
type ChatListResponse struct {
	Chats []ChatSummaryResponse `json:"chats"`
}

// Методы конвертации

// FromDomainMessage конвертирует domain модель в DTO
func FromDomainMessage(m domain.Message) MessageResponse {
	return MessageResponse{
		ID:         m.ID,
		ProviderID: m.ProviderID,
		Text:       m.Text,
		Timestamp:  m.Timestamp,
		IsUser:     m.IsUser,
		IsSent:     m.IsSent,
		IsRead:     m.IsRead,
	}
}

// FromDomainConversation конвертирует переписку в DTO
func FromDomainConversation(p domain.Provider, msgs []domain.Message) *ConversationResponse {
	resp := &ConversationResponse{
		ProviderID:     p.ID,
		ProviderName:   p.Name,
		ProviderAvatar: p.Avatar,
		Profession:     p.Profession,
		Messages:       make([]MessageResponse, 0, len(msgs)),
	}
	for _, m := range msgs {
		resp.Messages = append(resp.Messages, FromDomainMessage(m))
	}
	resp.Count = len(resp.Messages)
	return resp
}

// FromDomainChatSummary конвертирует провайдера и последнее сообщение в строку списка чатов
func FromDomainChatSummary(p domain.Provider, last *domain.Message) ChatSummaryResponse {
	summary := ChatSummaryResponse{
		ProviderID:     p.ID,
		ProviderName:   p.Name,
		ProviderAvatar: p.Avatar,
		Profession:     p.Profession,
	}
	if last != nil {
		msg := FromDomainMessage(*last)
		summary.LastMessage = &msg
	}
	return summary
}
