package draft

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/D2D-MarketplaceService/internal/domain"
)

type memoryEntry struct {
	draft     *domain.Draft
	expiresAt time.Time
}

// MemoryRepository хранит черновики в памяти процесса
// Записи с истёкшим TTL удаляются при обращении
type MemoryRepository struct {
	mu      sync.Mutex
	drafts  map[string]memoryEntry
	ttl     time.Duration
	nowFunc func() time.Time
}

// NewMemoryRepository создает in-memory репозиторий
// ttl <= 0 отключает истечение
func NewMemoryRepository(ttl time.Duration) *MemoryRepository {
	return &MemoryRepository{
		drafts:  make(map[string]memoryEntry),
		ttl:     ttl,
		nowFunc: time.Now,
	}
}

// Create сохраняет новый черновик, версия становится 1
func (r *MemoryRepository) Create(ctx context.Context, d *domain.Draft) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.purgeLocked()

	if _, ok := r.drafts[d.ID]; ok {
		return ErrDraftExists
	}

	d.Version = 1
	r.drafts[d.ID] = memoryEntry{draft: clone(d), expiresAt: r.expiry()}
	return nil
}

// Get возвращает копию черновика
func (r *MemoryRepository) Get(ctx context.Context, id string) (*domain.Draft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.lookupLocked(id)
	if !ok {
		return nil, ErrDraftNotFound
	}
	return clone(entry.draft), nil
}

// Update сохраняет черновик, если его версия совпадает с сохранённой
// При успехе версия черновика увеличивается
func (r *MemoryRepository) Update(ctx context.Context, d *domain.Draft) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.lookupLocked(d.ID)
	if !ok {
		return ErrDraftNotFound
	}
	if entry.draft.Version != d.Version {
		return ErrVersionConflict
	}

	d.Version++
	r.drafts[d.ID] = memoryEntry{draft: clone(d), expiresAt: r.expiry()}
	return nil
}

// Delete удаляет черновик
func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.lookupLocked(id); !ok {
		return ErrDraftNotFound
	}
	delete(r.drafts, id)
	return nil
}

func (r *MemoryRepository) lookupLocked(id string) (memoryEntry, bool) {
	entry, ok := r.drafts[id]
	if !ok {
		return memoryEntry{}, false
	}
	if r.expired(entry) {
		delete(r.drafts, id)
		return memoryEntry{}, false
	}
	return entry, true
}

func (r *MemoryRepository) purgeLocked() {
	if r.ttl <= 0 {
		return
	}
	for id, entry := range r.drafts {
		if r.expired(entry) {
			delete(r.drafts, id)
		}
	}
}

func (r *MemoryRepository) expiry() time.Time {
	if r.ttl <= 0 {
		return time.Time{}
	}
	return r.nowFunc().Add(r.ttl)
}

func (r *MemoryRepository) expired(entry memoryEntry) bool {
	return !entry.expiresAt.IsZero() && !r.nowFunc().Before(entry.expiresAt)
}
