package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/D2D-MarketplaceService/internal/domain"
	bookingRepo "github.com/m04kA/D2D-MarketplaceService/internal/infra/storage/booking"
	"github.com/m04kA/D2D-MarketplaceService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	catalog     CatalogStore
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	catalog CatalogStore,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		catalog:     catalog,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь может видеть только своё бронирование
func (s *Service) GetByID(ctx context.Context, id string, userID string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for user=%s", id, userID)

	booking, err := s.load(ctx, "GetByID", id, userID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%s", id)
	return s.enrich(models.FromDomainBooking(booking)), nil
}

// GetUserBookings получает бронирования пользователя
// Опционально фильтрует по статусу (вкладки upcoming/completed/cancelled)
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%s, status=%v", req.UserID, req.Status)

	if req.UserID == "" {
		return nil, fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	filter := domain.UserBookingsFilter{UserID: req.UserID}

	// Конвертируем статус из строки в domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%s", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, filter)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainBookingList(bookings)
	for i := range resp.Bookings {
		s.enrich(&resp.Bookings[i])
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%s", resp.Count, req.UserID)
	return resp, nil
}

// Cancel отменяет бронирование
// Отменить можно только своё бронирование в статусе upcoming
func (s *Service) Cancel(ctx context.Context, bookingID string, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%s by user=%s", bookingID, req.UserID)

	reason := strings.TrimSpace(req.CancellationReason)
	if utf8.RuneCountInString(reason) > domain.MaxCancellationReasonLength {
		s.logger.Warn("Cancel: cancellation reason too long for booking id=%s", bookingID)
		return fmt.Errorf("%w: cancellation reason exceeds %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	booking, err := s.load(ctx, "Cancel", bookingID, req.UserID)
	if err != nil {
		return err
	}

	// Проверяем, можно ли отменить бронирование
	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%s cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, reason); err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrCannotCancel):
			// Статус изменился между чтением и обновлением
			s.logger.Warn("Cancel: booking id=%s changed status during cancellation", bookingID)
			return ErrCannotCancel
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			return ErrBookingNotFound
		default:
			s.logger.Error("Cancel: repository error for booking id=%s: %v", bookingID, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%s", bookingID)
	return nil
}

// Вспомогательные методы

// load получает бронирование и проверяет владельца
func (s *Service) load(ctx context.Context, op, id, userID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if booking.UserID != userID {
		s.logger.Warn("%s: access denied for user=%s to booking id=%s", op, userID, id)
		return nil, ErrAccessDenied
	}

	return booking, nil
}

// enrich дополняет бронирование изображением услуги и аватаром провайдера
// Если запись исчезла из каталога, остаются денормализованные данные
func (s *Service) enrich(resp *models.BookingResponse) *models.BookingResponse {
	if service, err := s.catalog.ServiceByID(resp.ServiceID); err == nil {
		resp.ServiceImage = service.Image
	}
	if provider, err := s.catalog.ProviderByID(resp.ProviderID); err == nil {
		resp.ProviderAvatar = provider.Avatar
	}
	return resp
}
