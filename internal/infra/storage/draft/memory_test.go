package draft

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/D2D-MarketplaceService/internal/domain"
	"github.com/m04kA/D2D-MarketplaceService/pkg/types"
)

func newDraft(id string) *domain.Draft {
	return &domain.Draft{
		ID:         id,
		UserID:     "user-1",
		ServiceID:  "1",
		ProviderID: "1",
		Price:      120,
		State:      domain.DraftStateDraft,
		Date:       time.Date(2025, 3, 11, 0, 0, 0, 0, time.Local),
		Time:       types.MustTimeString("09:00"),
		AddressID:  "1",
		PaymentID:  "1",
	}
}

func TestMemoryRepository_CreateGet(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(0)

	d := newDraft("d1")
	require.NoError(t, repo.Create(ctx, d))
	assert.Equal(t, int64(1), d.Version)

	got, err := repo.Get(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, d, got)

	assert.ErrorIs(t, repo.Create(ctx, newDraft("d1")), ErrDraftExists)

	_, err = repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(0)

	d := newDraft("d1")
	reason := "original"
	d.RejectionReason = &reason
	require.NoError(t, repo.Create(ctx, d))

	d.State = domain.DraftStateConfirmed
	*d.RejectionReason = "changed"

	got, err := repo.Get(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, domain.DraftStateDraft, got.State)
	assert.Equal(t, "original", *got.RejectionReason)
}

func TestMemoryRepository_UpdateVersioning(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(0)
	require.NoError(t, repo.Create(ctx, newDraft("d1")))

	first, err := repo.Get(ctx, "d1")
	require.NoError(t, err)
	second, err := repo.Get(ctx, "d1")
	require.NoError(t, err)

	first.State = domain.DraftStateSubmitting
	require.NoError(t, repo.Update(ctx, first))
	assert.Equal(t, int64(2), first.Version)

	second.AddressID = "2"
	assert.ErrorIs(t, repo.Update(ctx, second), ErrVersionConflict)

	got, err := repo.Get(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, domain.DraftStateSubmitting, got.State)
	assert.Equal(t, "1", got.AddressID)

	assert.ErrorIs(t, repo.Update(ctx, newDraft("missing")), ErrDraftNotFound)
}

func TestMemoryRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(0)
	require.NoError(t, repo.Create(ctx, newDraft("d1")))

	require.NoError(t, repo.Delete(ctx, "d1"))
	assert.ErrorIs(t, repo.Delete(ctx, "d1"), ErrDraftNotFound)

	_, err := repo.Get(ctx, "d1")
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestMemoryRepository_TTL(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	repo := NewMemoryRepository(time.Minute)
	repo.nowFunc = func() time.Time { return now }

	require.NoError(t, repo.Create(ctx, newDraft("d1")))

	now = now.Add(59 * time.Second)
	_, err := repo.Get(ctx, "d1")
	require.NoError(t, err)

	now = now.Add(time.Second)
	_, err = repo.Get(ctx, "d1")
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestRecord_EncodeDecode(t *testing.T) {
	d := newDraft("d1")
	bookingID := "b-1"
	d.BookingID = &bookingID
	d.State = domain.DraftStateConfirmed
	d.Attempts = 2
	d.Version = 3

	data, err := encode(d)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"time":"09:00"`)
	assert.Contains(t, string(data), `"date":"2025-03-11"`)

	got, err := decode(data)
	require.NoError(t, err)
	assert.Equal(t, d, got)
	assert.Equal(t, time.Local, got.Date.Location())

	_, err = decode([]byte(`{"date":"bad"}`))
	assert.ErrorIs(t, err, ErrDecode)
}
