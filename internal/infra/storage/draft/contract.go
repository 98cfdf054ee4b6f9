package draft

import (
	"context"

	"github.com/m04kA/D2D-MarketplaceService/internal/domain"
)

// Repository общий интерфейс хранилищ черновиков
type Repository interface {
	Create(ctx context.Context, d *domain.Draft) error
	Get(ctx context.Context, id string) (*domain.Draft, error)
	Update(ctx context.Context, d *domain.Draft) error
	Delete(ctx context.Context, id string) error
}

var (
	_ Repository = (*MemoryRepository)(nil)
	_ Repository = (*RedisRepository)(nil)
)
