package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogStore "github.com/m04kA/D2D-MarketplaceService/internal/catalog"
	"github.com/m04kA/D2D-MarketplaceService/internal/domain"
	"github.com/m04kA/D2D-MarketplaceService/pkg/logger"
	"github.com/m04kA/D2D-MarketplaceService/pkg/types"
)

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (r *fakeBookingRepo) GetUpcomingByProviderAndDate(ctx context.Context, providerID string, date time.Time) ([]*domain.Booking, error) {
	if r.err != nil {
		return nil, r.err
	}
	var result []*domain.Booking
	for _, b := range r.bookings {
		if b.ProviderID == providerID && b.Date.Equal(date) {
			result = append(result, b)
		}
	}
	return result, nil
}

var testNow = time.Date(2025, 3, 10, 13, 30, 0, 0, time.UTC)

func newTestUseCase(repo *fakeBookingRepo) *UseCase {
	uc := NewUseCase(repo, catalogStore.MustNew(catalogStore.Bundled()), 7, logger.NewNop())
	uc.timeProvider = &fixedTime{now: testNow}
	return uc
}

func booked(providerID string, date time.Time, slot string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{ProviderID: providerID, Date: date, Time: types.MustTimeString(slot), Status: status}
}

func TestUseCase_Execute_MarksBookedSlots(t *testing.T) {
	tomorrow := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		booked("1", tomorrow, "10:00", domain.StatusUpcoming),
		booked("1", tomorrow, "15:00", domain.StatusUpcoming),
		booked("2", tomorrow, "11:00", domain.StatusUpcoming),
	}}

	resp, err := newTestUseCase(repo).Execute(context.Background(), &Request{ProviderID: "1", Date: tomorrow})
	require.NoError(t, err)

	require.Len(t, resp.Slots, len(domain.TimeSlots))
	available := map[string]bool{}
	for _, s := range resp.Slots {
		available[s.StartTime.String()] = s.Available
	}
	assert.False(t, available["10:00"])
	assert.False(t, available["15:00"])
	assert.True(t, available["11:00"])
	assert.True(t, available["09:00"])
}

func TestUseCase_Execute_TodaySkipsPastSlots(t *testing.T) {
	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	resp, err := newTestUseCase(&fakeBookingRepo{}).Execute(context.Background(), &Request{ProviderID: "1", Date: today})
	require.NoError(t, err)

	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, "14:00", resp.Slots[0].StartTime.String())
	assert.Len(t, resp.Slots, 4)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{ProviderID: "99", Date: testNow})
	assert.ErrorIs(t, err, ErrProviderNotFound)

	_, err = uc.Execute(context.Background(), &Request{ProviderID: "1"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ProviderID: "1", Date: testNow.AddDate(0, 0, -1)})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = uc.Execute(context.Background(), &Request{ProviderID: "1", Date: testNow.AddDate(0, 0, 8)})
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)

	uc = newTestUseCase(&fakeBookingRepo{err: errors.New("db down")})
	_, err = uc.Execute(context.Background(), &Request{ProviderID: "1", Date: testNow.AddDate(0, 0, 1)})
	assert.ErrorIs(t, err, ErrInternal)
}
