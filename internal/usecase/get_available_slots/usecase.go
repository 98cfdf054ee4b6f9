package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	catalogStore "github.com/m04kA/D2D-MarketplaceService/internal/catalog"
	"github.com/m04kA/D2D-MarketplaceService/internal/domain"
)

// UseCase use case для получения занятости провайдера на дату
type UseCase struct {
	bookingRepo  BookingRepository
	catalog      CatalogStore
	windowDays   int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalog CatalogStore,
	windowDays int,
	logger Logger,
) *UseCase {
	if windowDays <= 0 {
		windowDays = domain.DefaultDateWindowDays
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalog:      catalog,
		windowDays:   windowDays,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов провайдера
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: provider=%s, date=%s", req.ProviderID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем провайдера
	if _, err := uc.catalog.ProviderByID(req.ProviderID); err != nil {
		if errors.Is(err, catalogStore.ErrNotFound) {
			uc.logger.Warn("GetAvailableSlots: provider id=%s not found", req.ProviderID)
			return nil, ErrProviderNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get provider id=%s: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
	}

	// 3. Валидация даты
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now, uc.windowDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 4. Активные бронирования провайдера на дату
	bookings, err := uc.bookingRepo.GetUpcomingByProviderAndDate(ctx, req.ProviderID, dateOnly(req.Date))
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Отмечаем занятые слоты
	slots := buildSlots(req.Date, now, bookings)

	uc.logger.Info("GetAvailableSlots: %d slots for provider=%s, date=%s, booked=%d",
		len(slots), req.ProviderID, req.Date.Format(domain.DateFormat), len(bookings))

	return &Response{
		Date:       req.Date,
		ProviderID: req.ProviderID,
		Slots:      slots,
	}, nil
}
