package draft

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/D2D-MarketplaceService/internal/domain"
)

const testTTL = time.Hour

func newRedisRepo(t *testing.T) (*RedisRepository, *miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisRepository(client, testTTL), mr, client
}

func TestRedisRepository_CreateGet(t *testing.T) {
	ctx := context.Background()
	repo, mr, _ := newRedisRepo(t)

	d := newDraft("d1")
	require.NoError(t, repo.Create(ctx, d))
	assert.Equal(t, int64(1), d.Version)
	assert.Equal(t, testTTL, mr.TTL(key("d1")))

	got, err := repo.Get(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, d, got)

	assert.ErrorIs(t, repo.Create(ctx, newDraft("d1")), ErrDraftExists)

	_, err = repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestRedisRepository_UpdateVersioning(t *testing.T) {
	ctx := context.Background()
	repo, mr, _ := newRedisRepo(t)
	require.NoError(t, repo.Create(ctx, newDraft("d1")))

	first, err := repo.Get(ctx, "d1")
	require.NoError(t, err)
	second, err := repo.Get(ctx, "d1")
	require.NoError(t, err)

	first.State = domain.DraftStateSubmitting
	require.NoError(t, repo.Update(ctx, first))
	assert.Equal(t, int64(2), first.Version)
	assert.Equal(t, testTTL, mr.TTL(key("d1")))

	second.AddressID = "2"
	assert.ErrorIs(t, repo.Update(ctx, second), ErrVersionConflict)

	got, err := repo.Get(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, domain.DraftStateSubmitting, got.State)
	assert.Equal(t, "1", got.AddressID)
	assert.Equal(t, int64(2), got.Version)

	assert.ErrorIs(t, repo.Update(ctx, newDraft("missing")), ErrDraftNotFound)
}

func TestRedisRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo, _, _ := newRedisRepo(t)
	require.NoError(t, repo.Create(ctx, newDraft("d1")))

	require.NoError(t, repo.Delete(ctx, "d1"))
	assert.ErrorIs(t, repo.Delete(ctx, "d1"), ErrDraftNotFound)

	_, err := repo.Get(ctx, "d1")
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestRedisRepository_TTL(t *testing.T) {
	ctx := context.Background()
	repo, mr, _ := newRedisRepo(t)
	require.NoError(t, repo.Create(ctx, newDraft("d1")))

	mr.FastForward(testTTL - time.Second)
	_, err := repo.Get(ctx, "d1")
	require.NoError(t, err)

	mr.FastForward(time.Second)
	_, err = repo.Get(ctx, "d1")
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestRedisRepository_ConcurrentUpdates(t *testing.T) {
	ctx := context.Background()
	repo, _, _ := newRedisRepo(t)
	require.NoError(t, repo.Create(ctx, newDraft("d1")))

	const writers = 10
	errs := make([]error, writers)

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		d, err := repo.Get(ctx, "d1")
		require.NoError(t, err)

		wg.Add(1)
		go func(i int, d *domain.Draft) {
			defer wg.Done()
			d.Attempts = i + 1
			errs[i] = repo.Update(ctx, d)
		}(i, d)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, ErrVersionConflict)
	}
	assert.Equal(t, 1, succeeded)

	got, err := repo.Get(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Version)
}

// writeBeforeExec перед MULTI/EXEC меняет ключ через другое соединение
type writeBeforeExec struct {
	once  sync.Once
	write func(ctx context.Context)
}

func (h *writeBeforeExec) BeforeProcess(ctx context.Context, cmd redis.Cmder) (context.Context, error) {
	return ctx, nil
}

func (h *writeBeforeExec) AfterProcess(ctx context.Context, cmd redis.Cmder) error {
	return nil
}

func (h *writeBeforeExec) BeforeProcessPipeline(ctx context.Context, cmds []redis.Cmder) (context.Context, error) {
	h.once.Do(func() { h.write(ctx) })
	return ctx, nil
}

func (h *writeBeforeExec) AfterProcessPipeline(ctx context.Context, cmds []redis.Cmder) error {
	return nil
}

func TestRedisRepository_WatchedKeyChanged(t *testing.T) {
	ctx := context.Background()
	repo, mr, client := newRedisRepo(t)
	require.NoError(t, repo.Create(ctx, newDraft("d1")))

	other := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = other.Close() })

	concurrent := newDraft("d1")
	concurrent.Version = 1
	concurrent.PaymentID = "2"
	payload, err := encode(concurrent)
	require.NoError(t, err)

	client.AddHook(&writeBeforeExec{write: func(ctx context.Context) {
		require.NoError(t, other.Set(ctx, key("d1"), payload, testTTL).Err())
	}})

	d, err := repo.Get(ctx, "d1")
	require.NoError(t, err)
	d.AddressID = "2"

	err = repo.Update(ctx, d)
	require.ErrorIs(t, err, ErrVersionConflict)
	assert.Equal(t, int64(1), d.Version)

	got, err := repo.Get(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, "2", got.PaymentID)
	assert.Equal(t, "1", got.AddressID)
}

func TestRedisRepository_StorageErrors(t *testing.T) {
	ctx := context.Background()
	repo, mr, _ := newRedisRepo(t)
	require.NoError(t, repo.Create(ctx, newDraft("d1")))

	mr.SetError("ERR storage unavailable")

	_, err := repo.Get(ctx, "d1")
	assert.ErrorIs(t, err, ErrStorage)
	assert.False(t, errors.Is(err, ErrDraftNotFound))

	assert.ErrorIs(t, repo.Create(ctx, newDraft("d2")), ErrStorage)
	assert.ErrorIs(t, repo.Update(ctx, newDraft("d1")), ErrStorage)
	assert.ErrorIs(t, repo.Delete(ctx, "d1"), ErrStorage)
}

func TestRedisRepository_CorruptedRecord(t *testing.T) {
	ctx := context.Background()
	repo, mr, _ := newRedisRepo(t)

	require.NoError(t, mr.Set(key("d1"), "not json"))

	_, err := repo.Get(ctx, "d1")
	assert.ErrorIs(t, err, ErrDecode)
}
