package messages

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	catalogStore "github.com/m04kA/D2D-MarketplaceService/internal/catalog"
	"github.com/m04kA/D2D-MarketplaceService/internal/domain"
	"github.com/m04kA/D2D-MarketplaceService/internal/service/messages/models"
)

type conversationKey struct {
	userID     string
	providerID string
}

// idleConversationTTL через сколько переписка без новых сообщений удаляется из памяти
const idleConversationTTL = 24 * time.Hour

type conversation struct {
	messages   []domain.Message
	generator  *Generator
	lastActive time.Time
}

// Service сервис переписки с провайдерами
//
// История хранится в памяти процесса. Переписка без сообщений пользователя не хранится:
// её история каждый раз строится детерминированным генератором. Первое сообщение
// сохраняет переписку, через idleConversationTTL без активности она удаляется.
// На каждое сообщение пользователя провайдер отвечает с задержкой 1-3s.
// Автоответы привязаны к жизни сервиса: после Close ни один не сработает.
type Service struct {
	catalog      CatalogStore
	timeProvider TimeProvider
	logger       Logger

	// replyDelay переопределяет задержку автоответа (для тестов)
	replyDelay func(generated time.Duration) time.Duration

	mu            sync.Mutex
	conversations map[conversationKey]*conversation
	lastGC        time.Time
	closed        bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewService создает новый экземпляр сервиса сообщений
func NewService(catalog CatalogStore, logger Logger) *Service {
	ctx, cancel := context.WithCancel(context.Background())

	return &Service{
		catalog:       catalog,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
		replyDelay:    func(generated time.Duration) time.Duration { return generated },
		conversations: make(map[conversationKey]*conversation),
		ctx:           ctx,
		cancel:        cancel,
	}
}

// SetReplyDelayBounds ограничивает задержку автоответа диапазоном [min, max]
// Вызывается до начала работы сервиса
func (s *Service) SetReplyDelayBounds(min, max time.Duration) {
	s.replyDelay = func(generated time.Duration) time.Duration {
		switch {
		case generated < min:
			return min
		case generated > max:
			return max
		default:
			return generated
		}
	}
}

// ListChats возвращает чаты пользователя с провайдерами и последним сообщением
// Непустой query оставляет провайдеров, в имени которых он встречается без учёта регистра
func (s *Service) ListChats(ctx context.Context, userID, query string) (*models.ChatListResponse, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	query = strings.ToLower(strings.TrimSpace(query))
	providers := s.catalog.Providers()
	resp := &models.ChatListResponse{Chats: make([]models.ChatSummaryResponse, 0, len(providers))}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, provider := range providers {
		if query != "" && !strings.Contains(strings.ToLower(provider.Name), query) {
			continue
		}

		msgs := s.messagesLocked(userID, provider.ID)
		var last *domain.Message
		if n := len(msgs); n > 0 {
			last = &msgs[n-1]
		}
		resp.Chats = append(resp.Chats, models.FromDomainChatSummary(provider, last))
	}

	return resp, nil
}

// List возвращает переписку с провайдером в порядке времени
func (s *Service) List(ctx context.Context, userID, providerID string) (*models.ConversationResponse, error) {
	provider, err := s.provider("List", userID, providerID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	msgs := append([]domain.Message(nil), s.messagesLocked(userID, providerID)...)
	s.mu.Unlock()

	return models.FromDomainConversation(provider, msgs), nil
}

// Send добавляет сообщение пользователя и планирует автоответ провайдера
func (s *Service) Send(ctx context.Context, req *models.SendMessageRequest) (*models.MessageResponse, error) {
	if _, err := s.provider("Send", req.UserID, req.ProviderID); err != nil {
		return nil, err
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, ErrEmptyMessage
	}
	if utf8.RuneCountInString(text) > domain.MaxMessageLength {
		return nil, fmt.Errorf("%w: limit is %d characters", ErrMessageTooLong, domain.MaxMessageLength)
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrClosed
	}

	now := s.timeProvider.Now()
	s.evictIdleLocked(now)

	conv := s.conversationLocked(req.UserID, req.ProviderID)
	conv.lastActive = now
	msg := domain.Message{
		ID:         uuid.NewString(),
		UserID:     req.UserID,
		ProviderID: req.ProviderID,
		Text:       text,
		Timestamp:  now,
		IsUser:     true,
		IsSent:     true,
		IsRead:     false,
	}
	conv.messages = append(conv.messages, msg)

	replyText, delay := conv.generator.Reply()
	s.wg.Add(1)
	s.mu.Unlock()

	go s.reply(conversationKey{userID: req.UserID, providerID: req.ProviderID}, replyText, s.replyDelay(delay))

	s.logger.Info("Send: user=%s sent message id=%s to provider=%s, reply in %s", req.UserID, msg.ID, req.ProviderID, delay)

	resp := models.FromDomainMessage(msg)
	return &resp, nil
}

// Close отменяет все ожидающие автоответы и ждёт их завершения
func (s *Service) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.cancel()
	s.wg.Wait()
}

// reply добавляет ответ провайдера после задержки
// Сообщения пользователя в переписке помечаются прочитанными
func (s *Service) reply(key conversationKey, text string, delay time.Duration) {
	defer s.wg.Done()

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-s.ctx.Done():
		return
	case <-timer.C:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Close мог начаться, пока ждали блокировку
	if s.closed {
		return
	}

	conv, ok := s.conversations[key]
	if !ok {
		return
	}

	now := s.timeProvider.Now()
	conv.lastActive = now
	for i := range conv.messages {
		if conv.messages[i].IsUser {
			conv.messages[i].IsRead = true
		}
	}
	conv.messages = append(conv.messages, domain.Message{
		ID:         uuid.NewString(),
		UserID:     key.userID,
		ProviderID: key.providerID,
		Text:       text,
		Timestamp:  now,
		IsUser:     false,
		IsSent:     true,
		IsRead:     true,
	})
}

func (s *Service) provider(op, userID, providerID string) (domain.Provider, error) {
	if userID == "" || providerID == "" {
		return domain.Provider{}, fmt.Errorf("%w: userID and providerID are required", ErrInvalidInput)
	}

	provider, err := s.catalog.ProviderByID(providerID)
	if err != nil {
		if errors.Is(err, catalogStore.ErrNotFound) {
			s.logger.Warn("%s: provider id=%s not found", op, providerID)
			return domain.Provider{}, ErrProviderNotFound
		}
		s.logger.Error("%s: failed to get provider id=%s: %v", op, providerID, err)
		return domain.Provider{}, fmt.Errorf("%w: %s - catalog error: %v", ErrInternal, op, err)
	}
	return provider, nil
}

// messagesLocked возвращает сохранённую переписку, а без неё сгенерированную историю
// Сгенерированная история не сохраняется
func (s *Service) messagesLocked(userID, providerID string) []domain.Message {
	if conv, ok := s.conversations[conversationKey{userID: userID, providerID: providerID}]; ok {
		return conv.messages
	}
	return NewGenerator(userID, providerID).History(userID, providerID, s.timeProvider.Now())
}

// evictIdleLocked удаляет переписки без активности дольше idleConversationTTL
// Проверка выполняется не чаще раза в idleConversationTTL
func (s *Service) evictIdleLocked(now time.Time) {
	if now.Sub(s.lastGC) <= idleConversationTTL {
		return
	}
	for key, conv := range s.conversations {
		if now.Sub(conv.lastActive) > idleConversationTTL {
			delete(s.conversations, key)
		}
	}
	s.lastGC = now
}

// conversationLocked возвращает переписку, сохраняя новую со сгенерированной историей
func (s *Service) conversationLocked(userID, providerID string) *conversation {
	key := conversationKey{userID: userID, providerID: providerID}
	conv, ok := s.conversations[key]
	if !ok {
		generator := NewGenerator(userID, providerID)
		conv = &conversation{
			messages:  generator.History(userID, providerID, s.timeProvider.Now()),
			generator: generator,
		}
		s.conversations[key] = conv
	}
	return conv
}
