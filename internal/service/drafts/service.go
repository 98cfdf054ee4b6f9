package drafts

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	catalogStore "github.com/m04kA/D2D-MarketplaceService/internal/catalog"
	"github.com/m04kA/D2D-MarketplaceService/internal/domain"
	draftRepo "github.com/m04kA/D2D-MarketplaceService/internal/infra/storage/draft"
	"github.com/m04kA/D2D-MarketplaceService/internal/service/drafts/models"
)

// Service сервис черновиков бронирования
type Service struct {
	draftRepo    DraftRepository
	catalog      CatalogStore
	canceller    SubmissionCanceller
	timeProvider TimeProvider
	windowDays   int
	logger       Logger
}

// NewService создает новый экземпляр сервиса черновиков
// canceller может быть nil, тогда Discard только удаляет черновик
func NewService(
	draftRepo DraftRepository,
	catalog CatalogStore,
	canceller SubmissionCanceller,
	windowDays int,
	logger Logger,
) *Service {
	if windowDays <= 0 {
		windowDays = domain.DefaultDateWindowDays
	}
	return &Service{
		draftRepo:    draftRepo,
		catalog:      catalog,
		canceller:    canceller,
		timeProvider: &RealTimeProvider{},
		windowDays:   windowDays,
		logger:       logger,
	}
}

// Options возвращает варианты выбора на текущий момент
func (s *Service) Options(ctx context.Context) *models.BookingOptionsResponse {
	return models.FromDomainOptions(BuildOptions(s.timeProvider.Now(), s.windowDays))
}

// Create создает черновик для услуги
// Каждое поле выбора получает первое значение своего списка
func (s *Service) Create(ctx context.Context, req *models.CreateDraftRequest) (*models.DraftResponse, error) {
	s.logger.Info("Create: creating draft for user=%s, service=%s", req.UserID, req.ServiceID)

	if req.UserID == "" || req.ServiceID == "" {
		return nil, fmt.Errorf("%w: userID and serviceID are required", ErrInvalidInput)
	}

	// 1. Услуга и провайдер из каталога
	service, err := s.catalog.ServiceByID(req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogStore.ErrNotFound) {
			s.logger.Warn("Create: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Create: catalog error for service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: Create - catalog error: %v", ErrInternal, err)
	}
	if _, err := s.catalog.ProviderByID(service.ProviderID); err != nil {
		s.logger.Error("Create: provider id=%s of service id=%s is missing: %v", service.ProviderID, service.ID, err)
		return nil, fmt.Errorf("%w: Create - provider lookup: %v", ErrInternal, err)
	}

	// 2. Значения по умолчанию
	now := s.timeProvider.Now()
	options := BuildOptions(now, s.windowDays)

	draft := &domain.Draft{
		ID:         uuid.NewString(),
		UserID:     req.UserID,
		ServiceID:  service.ID,
		ProviderID: service.ProviderID,
		Price:      service.Price,
		State:      domain.DraftStateDraft,
		Date:       options.Dates[0],
		Time:       options.TimeSlots[0],
		AddressID:  options.Addresses[0].ID,
		PaymentID:  options.PaymentMethods[0].ID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	// 3. Сохраняем
	if err := s.draftRepo.Create(ctx, draft); err != nil {
		s.logger.Error("Create: repository error for draft id=%s: %v", draft.ID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: draft id=%s created for user=%s, service=%s", draft.ID, req.UserID, service.ID)
	return models.FromDomainDraft(draft), nil
}

// Get возвращает черновик владельцу
func (s *Service) Get(ctx context.Context, draftID, userID string) (*models.DraftResponse, error) {
	draft, err := s.load(ctx, "Get", draftID, userID)
	if err != nil {
		return nil, err
	}
	return models.FromDomainDraft(draft), nil
}

// Update меняет выбор в черновике
// Доступно только в состояниях draft и failed; failed возвращается в draft
func (s *Service) Update(ctx context.Context, draftID string, req *models.UpdateDraftRequest) (*models.DraftResponse, error) {
	s.logger.Info("Update: updating draft id=%s by user=%s", draftID, req.UserID)

	draft, err := s.load(ctx, "Update", draftID, req.UserID)
	if err != nil {
		return nil, err
	}

	if !draft.CanUpdate() {
		s.logger.Warn("Update: draft id=%s is locked, state=%s", draftID, draft.State)
		return nil, ErrDraftLocked
	}

	// 1. Валидация выбора
	now := s.timeProvider.Now()
	options := BuildOptions(now, s.windowDays)
	if err := validateSelection(req, options); err != nil {
		s.logger.Warn("Update: invalid selection for draft id=%s: %v", draftID, err)
		return nil, err
	}

	// 2. Применяем изменения
	if req.Date != nil {
		draft.Date = dateOnly(*req.Date)
	}
	if req.Time != nil {
		draft.Time = *req.Time
	}
	if req.AddressID != nil {
		draft.AddressID = *req.AddressID
	}
	if req.PaymentID != nil {
		draft.PaymentID = *req.PaymentID
	}
	if draft.State == domain.DraftStateFailed {
		draft.State = domain.DraftStateDraft
		draft.RejectionReason = nil
	}
	draft.UpdatedAt = now

	// 3. Сохраняем с проверкой версии
	if err := s.draftRepo.Update(ctx, draft); err != nil {
		switch {
		case errors.Is(err, draftRepo.ErrVersionConflict):
			s.logger.Warn("Update: draft id=%s modified concurrently", draftID)
			return nil, ErrConcurrentUpdate
		case errors.Is(err, draftRepo.ErrDraftNotFound):
			s.logger.Warn("Update: draft id=%s disappeared", draftID)
			return nil, ErrDraftNotFound
		default:
			s.logger.Error("Update: repository error for draft id=%s: %v", draftID, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Update: draft id=%s updated: date=%s, time=%s, address=%s, payment=%s",
		draftID, draft.Date.Format(domain.DateFormat), draft.Time.String(), draft.AddressID, draft.PaymentID)
	return models.FromDomainDraft(draft), nil
}

// Discard отменяет выполняющееся подтверждение и удаляет черновик
func (s *Service) Discard(ctx context.Context, draftID, userID string) error {
	s.logger.Info("Discard: discarding draft id=%s by user=%s", draftID, userID)

	if _, err := s.load(ctx, "Discard", draftID, userID); err != nil {
		return err
	}

	if s.canceller != nil && s.canceller.Cancel(draftID) {
		s.logger.Info("Discard: in-flight submission of draft id=%s cancelled", draftID)
	}

	if err := s.draftRepo.Delete(ctx, draftID); err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			return ErrDraftNotFound
		}
		s.logger.Error("Discard: repository error for draft id=%s: %v", draftID, err)
		return fmt.Errorf("%w: Discard - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Discard: draft id=%s discarded", draftID)
	return nil
}

// load получает черновик и проверяет владельца
func (s *Service) load(ctx context.Context, op, draftID, userID string) (*domain.Draft, error) {
	draft, err := s.draftRepo.Get(ctx, draftID)
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			s.logger.Warn("%s: draft id=%s not found", op, draftID)
			return nil, ErrDraftNotFound
		}
		s.logger.Error("%s: repository error for draft id=%s: %v", op, draftID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if draft.UserID != userID {
		s.logger.Warn("%s: access denied for user=%s to draft id=%s", op, userID, draftID)
		return nil, ErrAccessDenied
	}

	return draft, nil
}

// validateSelection проверяет, что каждое значение входит в свой список
func validateSelection(req *models.UpdateDraftRequest, options domain.BookingOptions) error {
	if req.Date != nil && !containsDate(options.Dates, *req.Date) {
		return ErrInvalidDate
	}
	if req.Time != nil && !containsSlot(options.TimeSlots, *req.Time) {
		return ErrInvalidTimeSlot
	}
	if req.AddressID != nil {
		if _, ok := domain.FindAddress(*req.AddressID); !ok {
			return ErrAddressNotFound
		}
	}
	if req.PaymentID != nil {
		if _, ok := domain.FindPaymentMethod(*req.PaymentID); !ok {
			return ErrPaymentMethodNotFound
		}
	}
	return nil
}
