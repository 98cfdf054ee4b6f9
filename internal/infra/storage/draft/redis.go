package draft

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/m04kA/D2D-MarketplaceService/internal/domain"
)

const keyPrefix = "d2d:draft:"

// RedisRepository хранит черновики в Redis в JSON с TTL
// Update выполняется под WATCH, поэтому параллельные записи не теряются
type RedisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisRepository создает репозиторий черновиков поверх Redis
func NewRedisRepository(client *redis.Client, ttl time.Duration) *RedisRepository {
	return &RedisRepository{client: client, ttl: ttl}
}

func key(id string) string {
	return keyPrefix + id
}

// Create сохраняет новый черновик, версия становится 1
func (r *RedisRepository) Create(ctx context.Context, d *domain.Draft) error {
	d.Version = 1
	data, err := encode(d)
	if err != nil {
		return err
	}

	ok, err := r.client.SetNX(ctx, key(d.ID), data, r.ttl).Result()
	if err != nil {
		return fmt.Errorf("%w: Create - setnx: %v", ErrStorage, err)
	}
	if !ok {
		return ErrDraftExists
	}
	return nil
}

// Get возвращает черновик
func (r *RedisRepository) Get(ctx context.Context, id string) (*domain.Draft, error) {
	data, err := r.client.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - get: %v", ErrStorage, err)
	}
	return decode(data)
}

// Update сохраняет черновик, если его версия совпадает с сохранённой
func (r *RedisRepository) Update(ctx context.Context, d *domain.Draft) error {
	k := key(d.ID)

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, k).Bytes()
		if errors.Is(err, redis.Nil) {
			return ErrDraftNotFound
		}
		if err != nil {
			return fmt.Errorf("%w: Update - get: %v", ErrStorage, err)
		}

		stored, err := decode(data)
		if err != nil {
			return err
		}
		if stored.Version != d.Version {
			return ErrVersionConflict
		}

		next := clone(d)
		next.Version++
		payload, err := encode(next)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, k, payload, r.ttl)
			return nil
		})
		return err
	}, k)

	switch {
	case err == nil:
		d.Version++
		return nil
	case errors.Is(err, redis.TxFailedErr):
		return ErrVersionConflict
	case errors.Is(err, ErrDraftNotFound), errors.Is(err, ErrVersionConflict),
		errors.Is(err, ErrStorage), errors.Is(err, ErrEncode), errors.Is(err, ErrDecode):
		return err
	default:
		return fmt.Errorf("%w: Update - transaction: %v", ErrStorage, err)
	}
}

// Delete удаляет черновик
func (r *RedisRepository) Delete(ctx context.Context, id string) error {
	n, err := r.client.Del(ctx, key(id)).Result()
	if err != nil {
		return fmt.Errorf("%w: Delete - del: %v", ErrStorage, err)
	}
	if n == 0 {
		return ErrDraftNotFound
	}
	return nil
}
