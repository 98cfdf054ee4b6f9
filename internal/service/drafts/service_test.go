package drafts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogStore "github.com/m04kA/D2D-MarketplaceService/internal/catalog"
	"github.com/m04kA/D2D-MarketplaceService/internal/domain"
	draftRepo "github.com/m04kA/D2D-MarketplaceService/internal/infra/storage/draft"
	"github.com/m04kA/D2D-MarketplaceService/internal/service/drafts/models"
	"github.com/m04kA/D2D-MarketplaceService/pkg/logger"
	"github.com/m04kA/D2D-MarketplaceService/pkg/types"
)

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type fakeCanceller struct {
	cancelled []string
}

func (c *fakeCanceller) Cancel(draftID string) bool {
	c.cancelled = append(c.cancelled, draftID)
	return true
}

var testNow = time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC) // понедельник

func newTestService(t *testing.T) (*Service, *draftRepo.MemoryRepository, *fakeCanceller) {
	t.Helper()
	store, err := catalogStore.New(catalogStore.Bundled())
	require.NoError(t, err)

	repo := draftRepo.NewMemoryRepository(0)
	canceller := &fakeCanceller{}
	svc := NewService(repo, store, canceller, 7, logger.NewNop())
	svc.timeProvider = &fixedTime{now: testNow}
	return svc, repo, canceller
}

func ptr[T any](v T) *T { return &v }

func TestService_Options(t *testing.T) {
	svc, _, _ := newTestService(t)

	opts := svc.Options(context.Background())

	require.Len(t, opts.Dates, 7)
	assert.Equal(t, "2025-03-11", opts.Dates[0].Date)
	assert.Equal(t, "Tue", opts.Dates[0].Day)
	assert.Equal(t, 11, opts.Dates[0].DayNum)
	assert.Equal(t, "2025-03-17", opts.Dates[6].Date)

	require.Len(t, opts.TimeSlots, 9)
	assert.Equal(t, models.TimeSlotOption{Time: "09:00", Label: "9:00 AM"}, opts.TimeSlots[0])
	assert.Equal(t, models.TimeSlotOption{Time: "12:00", Label: "12:00 PM"}, opts.TimeSlots[3])
	assert.Equal(t, models.TimeSlotOption{Time: "17:00", Label: "5:00 PM"}, opts.TimeSlots[8])

	require.Len(t, opts.Addresses, 2)
	assert.True(t, opts.Addresses[0].IsDefault)
	require.Len(t, opts.PaymentMethods, 2)
	assert.Equal(t, "4242", opts.PaymentMethods[0].Last4)
}

func TestService_Create_Defaults(t *testing.T) {
	svc, _, _ := newTestService(t)

	d, err := svc.Create(context.Background(), &models.CreateDraftRequest{UserID: "u1", ServiceID: "3"})
	require.NoError(t, err)

	assert.NotEmpty(t, d.ID)
	assert.Equal(t, "3", d.ProviderID)
	assert.Equal(t, 1200.0, d.Price)
	assert.Equal(t, string(domain.DraftStateDraft), d.State)
	assert.Equal(t, "2025-03-11", d.Date)
	assert.Equal(t, "09:00", d.Time)
	assert.Equal(t, "1", d.AddressID)
	assert.Equal(t, "1", d.PaymentID)
}

func TestService_Create_Errors(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Create(context.Background(), &models.CreateDraftRequest{UserID: "u1", ServiceID: "404"})
	assert.ErrorIs(t, err, ErrServiceNotFound)

	_, err = svc.Create(context.Background(), &models.CreateDraftRequest{ServiceID: "1"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Get_OwnerOnly(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	d, err := svc.Create(ctx, &models.CreateDraftRequest{UserID: "u1", ServiceID: "1"})
	require.NoError(t, err)

	got, err := svc.Get(ctx, d.ID, "u1")
	require.NoError(t, err)
	assert.Equal(t, d.ID, got.ID)

	_, err = svc.Get(ctx, d.ID, "u2")
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.Get(ctx, "missing", "u1")
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestService_Update(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	d, err := svc.Create(ctx, &models.CreateDraftRequest{UserID: "u1", ServiceID: "1"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, d.ID, &models.UpdateDraftRequest{
		UserID:    "u1",
		Date:      ptr(time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)),
		Time:      ptr(types.MustTimeString("13:00")),
		AddressID: ptr("2"),
		PaymentID: ptr("2"),
	})
	require.NoError(t, err)

	assert.Equal(t, "2025-03-14", updated.Date)
	assert.Equal(t, "13:00", updated.Time)
	assert.Equal(t, "1:00 PM", updated.TimeLabel)
	assert.Equal(t, "2", updated.AddressID)
	assert.Equal(t, "2", updated.PaymentID)
}

func TestService_Update_Validation(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	d, err := svc.Create(ctx, &models.CreateDraftRequest{UserID: "u1", ServiceID: "1"})
	require.NoError(t, err)

	tests := []struct {
		name string
		req  *models.UpdateDraftRequest
		want error
	}{
		{name: "today is outside the window", req: &models.UpdateDraftRequest{UserID: "u1", Date: ptr(testNow)}, want: ErrInvalidDate},
		{name: "eighth day is outside the window", req: &models.UpdateDraftRequest{UserID: "u1", Date: ptr(testNow.AddDate(0, 0, 8))}, want: ErrInvalidDate},
		{name: "slot not in list", req: &models.UpdateDraftRequest{UserID: "u1", Time: ptr(types.MustTimeString("09:30"))}, want: ErrInvalidTimeSlot},
		{name: "unknown address", req: &models.UpdateDraftRequest{UserID: "u1", AddressID: ptr("9")}, want: ErrAddressNotFound},
		{name: "unknown payment", req: &models.UpdateDraftRequest{UserID: "u1", PaymentID: ptr("9")}, want: ErrPaymentMethodNotFound},
		{name: "other user", req: &models.UpdateDraftRequest{UserID: "u2", AddressID: ptr("2")}, want: ErrAccessDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Update(ctx, d.ID, tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestService_Update_StateRules(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	d, err := svc.Create(ctx, &models.CreateDraftRequest{UserID: "u1", ServiceID: "1"})
	require.NoError(t, err)

	// failed -> draft, причина отказа сбрасывается
	stored, err := repo.Get(ctx, d.ID)
	require.NoError(t, err)
	stored.State = domain.DraftStateFailed
	stored.RejectionReason = ptr("slot no longer available")
	require.NoError(t, repo.Update(ctx, stored))

	updated, err := svc.Update(ctx, d.ID, &models.UpdateDraftRequest{UserID: "u1", Time: ptr(types.MustTimeString("10:00"))})
	require.NoError(t, err)
	assert.Equal(t, string(domain.DraftStateDraft), updated.State)
	assert.Nil(t, updated.RejectionReason)

	// submitting и confirmed заблокированы
	for _, state := range []domain.DraftState{domain.DraftStateSubmitting, domain.DraftStateConfirmed} {
		stored, err = repo.Get(ctx, d.ID)
		require.NoError(t, err)
		stored.State = state
		require.NoError(t, repo.Update(ctx, stored))

		_, err = svc.Update(ctx, d.ID, &models.UpdateDraftRequest{UserID: "u1", AddressID: ptr("2")})
		assert.ErrorIs(t, err, ErrDraftLocked, "state %s", state)
	}
}

func TestService_Discard(t *testing.T) {
	svc, _, canceller := newTestService(t)
	ctx := context.Background()

	d, err := svc.Create(ctx, &models.CreateDraftRequest{UserID: "u1", ServiceID: "1"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Discard(ctx, d.ID, "u2"), ErrAccessDenied)
	assert.Empty(t, canceller.cancelled)

	require.NoError(t, svc.Discard(ctx, d.ID, "u1"))
	assert.Equal(t, []string{d.ID}, canceller.cancelled)

	_, err = svc.Get(ctx, d.ID, "u1")
	assert.ErrorIs(t, err, ErrDraftNotFound)
}
