package messages

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"time"

	"github.com/m04kA/D2D-MarketplaceService/internal/domain"
)

const (
	minSeedMessages = 10
	maxSeedMessages = 15
	seedStep        = 5 * time.Minute
	minReplyDelay   = time.Second
	maxReplyDelay   = 3 * time.Second
)

var seedTemplates = []string{
	"Hi there! I'll be arriving at your location in about 15 minutes.",
	"Just wanted to confirm your appointment for tomorrow at 10 AM.",
	"Thank you for booking our service. Do you have any specific requirements?",
	"I've reviewed the details of your booking. Everything looks good!",
	"Is there anything specific I should know before arriving?",
	"Just checking if there's parking available near your location?",
	"I've finished the job. Please let me know if you're satisfied with the service.",
	"Thank you for your payment. Looking forward to serving you again!",
}

var replyTemplates = []string{
	"Got it, thanks for letting me know!",
	"I understand. I'll take care of it.",
	"Thanks for the information!",
	"No problem at all. See you soon!",
	"Is there anything else you'd like to add?",
}

// Generator детерминированный генератор переписки
// Одна и та же пара пользователь/провайдер всегда получает одну и ту же историю
type Generator struct {
	rng *rand.Rand
}

// NewGenerator создает генератор для пары пользователь/провайдер
func NewGenerator(userID, providerID string) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(Seed(userID, providerID)))}
}

// Seed вычисляет seed генератора из пары пользователь/провайдер
func Seed(userID, providerID string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(userID))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(providerID))
	return int64(h.Sum64())
}

// History генерирует 10-15 сообщений с шагом 5 минут, последнее в момент now
// Сообщения упорядочены по времени
func (g *Generator) History(userID, providerID string, now time.Time) []domain.Message {
	count := minSeedMessages + g.rng.Intn(maxSeedMessages-minSeedMessages+1)

	history := make([]domain.Message, count)
	for i := 0; i < count; i++ {
		isUser := g.rng.Float64() > 0.5
		text := seedTemplates[g.rng.Intn(len(seedTemplates))]

		// i-е сгенерированное сообщение на i шагов раньше now
		history[count-1-i] = domain.Message{
			ID:         fmt.Sprintf("msg-%d", i),
			UserID:     userID,
			ProviderID: providerID,
			Text:       text,
			Timestamp:  now.Add(-time.Duration(i) * seedStep),
			IsUser:     isUser,
			IsSent:     true,
			IsRead:     true,
		}
	}

	return history
}

// Reply возвращает текст автоответа провайдера и задержку перед ним (1-3s)
func (g *Generator) Reply() (string, time.Duration) {
	text := replyTemplates[g.rng.Intn(len(replyTemplates))]
	delay := minReplyDelay + time.Duration(g.rng.Int63n(int64(maxReplyDelay-minReplyDelay)))
	return text, delay
}
