package confirm_booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/m04kA/D2D-MarketplaceService/internal/domain"
	bookingRepo "github.com/m04kA/D2D-MarketplaceService/internal/infra/storage/booking"
	draftRepo "github.com/m04kA/D2D-MarketplaceService/internal/infra/storage/draft"
	"github.com/m04kA/D2D-MarketplaceService/internal/integrations/bookinggateway"
)

// finalizeTimeout ограничивает запись результата отправки, когда её контекст уже отменён
const finalizeTimeout = 5 * time.Second

// UseCase use case для подтверждения черновика бронирования
//
// Каждая отправка выполняется под контекстом, привязанным к жизни черновика:
// Cancel (удаление черновика) и Close (остановка сервиса) отменяют его.
type UseCase struct {
	draftRepo    DraftRepository
	bookingRepo  BookingRepository
	catalog      CatalogStore
	gateway      BookingGateway
	txManager    TransactionManager
	metrics      Metrics
	retryPolicy  RetryPolicy
	timeProvider TimeProvider
	logger       Logger

	mu       sync.Mutex
	inflight map[string]context.CancelFunc
	closed   bool
	wg       sync.WaitGroup

	// baseCtx родительский контекст фоновых отправок
	baseCtx  context.Context
	stopBase context.CancelFunc
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	draftRepo DraftRepository,
	bookingRepo BookingRepository,
	catalog CatalogStore,
	gateway BookingGateway,
	txManager TransactionManager,
	metrics Metrics,
	retryPolicy RetryPolicy,
	logger Logger,
) *UseCase {
	if retryPolicy.MaxAttempts <= 0 {
		retryPolicy.MaxAttempts = DefaultRetryPolicy.MaxAttempts
	}
	if retryPolicy.BaseDelay <= 0 {
		retryPolicy.BaseDelay = DefaultRetryPolicy.BaseDelay
	}
	if retryPolicy.MaxDelay < retryPolicy.BaseDelay {
		retryPolicy.MaxDelay = retryPolicy.BaseDelay
	}

	baseCtx, stopBase := context.WithCancel(context.Background())

	return &UseCase{
		draftRepo:    draftRepo,
		bookingRepo:  bookingRepo,
		catalog:      catalog,
		gateway:      gateway,
		txManager:    txManager,
		metrics:      metrics,
		retryPolicy:  retryPolicy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		inflight:     make(map[string]context.CancelFunc),
		baseCtx:      baseCtx,
		stopBase:     stopBase,
	}
}

// Execute отправляет черновик и ждёт результата
// Отмена ctx отменяет отправку, черновик возвращается в состояние draft
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	draft, runCtx, err := uc.begin(ctx, ctx, req)
	if err != nil {
		return nil, err
	}
	return uc.run(runCtx, draft)
}

// SubmitAsync переводит черновик в submitting и продолжает подтверждение в фоне
// Результат записывается в черновик, клиент опрашивает его состояние
func (uc *UseCase) SubmitAsync(ctx context.Context, req *Request) (*Response, error) {
	draft, runCtx, err := uc.begin(ctx, uc.baseCtx, req)
	if err != nil {
		return nil, err
	}

	snapshot := *draft
	go func() {
		_, _ = uc.run(runCtx, draft)
	}()

	return &Response{Draft: &snapshot}, nil
}

// Cancel отменяет выполняющуюся отправку черновика
// Возвращает false, если отправки нет
func (uc *UseCase) Cancel(draftID string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	cancel, ok := uc.inflight[draftID]
	if ok {
		cancel()
	}
	return ok
}

// Close отменяет все отправки и ждёт их завершения
// После Close новые отправки отклоняются с ErrShuttingDown
func (uc *UseCase) Close() {
	uc.mu.Lock()
	uc.closed = true
	for _, cancel := range uc.inflight {
		cancel()
	}
	uc.mu.Unlock()

	uc.stopBase()
	uc.wg.Wait()
}

// begin регистрирует отправку и сохраняет черновик в состоянии submitting
func (uc *UseCase) begin(ctx context.Context, parent context.Context, req *Request) (*domain.Draft, context.Context, error) {
	if req == nil || req.DraftID == "" || req.UserID == "" {
		return nil, nil, fmt.Errorf("%w: draftID and userID are required", ErrInvalidInput)
	}

	uc.logger.Info("ConfirmBooking: draft=%s, user=%s", req.DraftID, req.UserID)

	// 1. Регистрируем отправку до записи состояния, чтобы Cancel её видел
	runCtx, cancel := context.WithCancel(parent)
	if err := uc.register(req.DraftID, cancel); err != nil {
		cancel()
		uc.logger.Warn("ConfirmBooking: draft id=%s not registered: %v", req.DraftID, err)
		return nil, nil, err
	}

	draft, err := uc.markSubmitting(ctx, req)
	if err != nil {
		uc.unregister(req.DraftID)
		return nil, nil, err
	}

	return draft, runCtx, nil
}

// markSubmitting проверяет владельца и состояние, затем сохраняет submitting
func (uc *UseCase) markSubmitting(ctx context.Context, req *Request) (*domain.Draft, error) {
	// 1. Загружаем черновик
	draft, err := uc.draftRepo.Get(ctx, req.DraftID)
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			uc.logger.Warn("ConfirmBooking: draft id=%s not found", req.DraftID)
			return nil, ErrDraftNotFound
		}
		uc.logger.Error("ConfirmBooking: failed to get draft id=%s: %v", req.DraftID, err)
		return nil, fmt.Errorf("%w: failed to get draft: %v", ErrInternal, err)
	}

	// 2. Проверяем владельца
	if draft.UserID != req.UserID {
		uc.logger.Warn("ConfirmBooking: access denied for user=%s to draft id=%s", req.UserID, req.DraftID)
		return nil, ErrAccessDenied
	}

	// 3. Проверяем состояние
	if !draft.CanSubmit() {
		uc.logger.Warn("ConfirmBooking: draft id=%s cannot be submitted, state=%s", req.DraftID, draft.State)
		return nil, fmt.Errorf("%w: state=%s", ErrInvalidState, draft.State)
	}

	// 4. draft|failed -> submitting
	draft.State = domain.DraftStateSubmitting
	draft.Attempts++
	draft.RejectionReason = nil
	draft.UpdatedAt = uc.timeProvider.Now()

	if err := uc.draftRepo.Update(ctx, draft); err != nil {
		switch {
		case errors.Is(err, draftRepo.ErrVersionConflict):
			uc.logger.Warn("ConfirmBooking: draft id=%s modified concurrently", req.DraftID)
			return nil, fmt.Errorf("%w: draft modified concurrently", ErrInvalidState)
		case errors.Is(err, draftRepo.ErrDraftNotFound):
			return nil, ErrDraftNotFound
		default:
			uc.logger.Error("ConfirmBooking: failed to save draft id=%s: %v", req.DraftID, err)
			return nil, fmt.Errorf("%w: failed to save draft: %v", ErrInternal, err)
		}
	}

	return draft, nil
}

// run выполняет подтверждение черновика, находящегося в состоянии submitting
func (uc *UseCase) run(ctx context.Context, draft *domain.Draft) (*Response, error) {
	defer uc.unregister(draft.ID)

	now := uc.timeProvider.Now()

	// 1. Услуга и провайдер из каталога
	service, err := uc.catalog.ServiceByID(draft.ServiceID)
	if err != nil {
		return uc.settle(ctx, draft, 0, fmt.Errorf("service id=%s lookup: %w", draft.ServiceID, err))
	}
	provider, err := uc.catalog.ProviderByID(draft.ProviderID)
	if err != nil {
		return uc.settle(ctx, draft, 0, fmt.Errorf("provider id=%s lookup: %w", draft.ProviderID, err))
	}

	// 2. Выбор пользователя всё ещё действителен
	address, ok := domain.FindAddress(draft.AddressID)
	if !ok {
		return uc.reject(ctx, draft, 0, ReasonAddressUnavailable)
	}
	if _, ok := domain.FindPaymentMethod(draft.PaymentID); !ok {
		return uc.reject(ctx, draft, 0, ReasonPaymentUnavailable)
	}
	if draft.Time.On(draft.Date).Before(now) {
		return uc.reject(ctx, draft, 0, ReasonDateInPast)
	}

	// 3. Предварительная проверка слота, чтобы не ходить во внешний сервис зря
	taken, err := uc.bookingRepo.ExistsUpcomingForSlot(ctx, draft.ProviderID, draft.Date, draft.Time)
	if err != nil {
		return uc.settle(ctx, draft, 0, err)
	}
	if taken {
		uc.logger.Warn("ConfirmBooking: slot %s %s of provider id=%s is taken",
			draft.Date.Format(domain.DateFormat), draft.Time.String(), draft.ProviderID)
		return uc.reject(ctx, draft, 0, ReasonSlotUnavailable)
	}

	// 4. Бронирование во внешнем сервисе с повторами
	bookingID, attempts, err := uc.reserve(ctx, draft)
	if err != nil {
		return uc.settle(ctx, draft, attempts, err)
	}

	// 5. Сохраняем бронирование в сериализуемой транзакции
	booking := &domain.Booking{
		ID:           bookingID,
		UserID:       draft.UserID,
		ServiceID:    service.ID,
		ProviderID:   provider.ID,
		Status:       domain.StatusUpcoming,
		Date:         draft.Date,
		Time:         draft.Time,
		AddressID:    address.ID,
		Address:      address.Address,
		PaymentID:    draft.PaymentID,
		Price:        service.Price,
		ServiceTitle: service.Title,
		ProviderName: provider.Name,
	}

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Повторная проверка слота под транзакцией
		taken, err := uc.bookingRepo.ExistsUpcomingForSlot(txCtx, booking.ProviderID, booking.Date, booking.Time)
		if err != nil {
			return err
		}
		if taken {
			return bookingRepo.ErrSlotNotAvailable
		}

		// 5.2. Создаём бронирование (уникальный индекс страхует от гонки между проверкой и вставкой)
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return err
		}
		booking = created
		return nil
	})
	if err != nil {
		uc.release(ctx, bookingID)
		return uc.settle(ctx, draft, attempts, err)
	}

	// 6. submitting -> confirmed
	draft.State = domain.DraftStateConfirmed
	draft.BookingID = &booking.ID
	draft.UpdatedAt = uc.timeProvider.Now()
	uc.save(ctx, draft)

	uc.metrics.ObserveSubmission(string(outcomeConfirmed), attempts)
	uc.logger.Info("ConfirmBooking: draft id=%s confirmed, booking id=%s, price=%.2f",
		draft.ID, booking.ID, booking.Price)

	return &Response{Draft: draft, Booking: booking}, nil
}

// reserve бронирует слот во внешнем сервисе
// Недоступность сервиса повторяется с экспоненциальной задержкой
func (uc *UseCase) reserve(ctx context.Context, draft *domain.Draft) (string, int, error) {
	reservation := bookinggateway.ReservationRequest{
		ServiceID:  draft.ServiceID,
		ProviderID: draft.ProviderID,
		Date:       draft.Date.Format(domain.DateFormat),
		Time:       draft.Time.String(),
		AddressID:  draft.AddressID,
		PaymentID:  draft.PaymentID,
	}

	backoff := retry.NewExponential(uc.retryPolicy.BaseDelay)
	backoff = retry.WithCappedDuration(uc.retryPolicy.MaxDelay, backoff)
	backoff = retry.WithMaxRetries(uint64(uc.retryPolicy.MaxAttempts-1), backoff)

	var bookingID string
	attempts := 0

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempts++

		id, err := uc.gateway.Reserve(ctx, reservation)
		if err != nil {
			if errors.Is(err, bookinggateway.ErrUnavailable) {
				uc.logger.Warn("ConfirmBooking: gateway unavailable for draft id=%s, attempt %d/%d: %v",
					draft.ID, attempts, uc.retryPolicy.MaxAttempts, err)
				return retry.RetryableError(err)
			}
			return err
		}
		if id == "" {
			return fmt.Errorf("%w: empty booking id", bookinggateway.ErrInvalidResponse)
		}

		bookingID = id
		return nil
	})

	return bookingID, attempts, err
}

// settle переводит черновик в итоговое состояние по ошибке отправки
func (uc *UseCase) settle(ctx context.Context, draft *domain.Draft, attempts int, cause error) (*Response, error) {
	var rejection *bookinggateway.RejectionError

	switch {
	case ctx.Err() != nil:
		// submitting -> draft, выбор пользователя сохраняется
		draft.State = domain.DraftStateDraft
		draft.UpdatedAt = uc.timeProvider.Now()
		uc.save(ctx, draft)

		uc.metrics.ObserveSubmission(string(outcomeCancelled), attempts)
		uc.logger.Info("ConfirmBooking: submission of draft id=%s cancelled", draft.ID)
		return &Response{Draft: draft}, ErrSubmissionCancelled

	case errors.Is(cause, bookingRepo.ErrSlotNotAvailable):
		return uc.reject(ctx, draft, attempts, ReasonSlotUnavailable)

	case errors.As(cause, &rejection):
		return uc.reject(ctx, draft, attempts, rejection.Reason)

	case errors.Is(cause, bookinggateway.ErrUnavailable):
		uc.fail(ctx, draft, ReasonGatewayUnavailable)
		uc.metrics.ObserveSubmission(string(outcomeUnavailable), attempts)
		uc.logger.Error("ConfirmBooking: gateway unavailable for draft id=%s after %d attempts: %v",
			draft.ID, attempts, cause)
		return &Response{Draft: draft}, fmt.Errorf("%w: %v", ErrGatewayUnavailable, cause)

	default:
		uc.fail(ctx, draft, ReasonInternal)
		uc.metrics.ObserveSubmission(string(outcomeError), attempts)
		uc.logger.Error("ConfirmBooking: submission of draft id=%s failed: %v", draft.ID, cause)
		return &Response{Draft: draft}, fmt.Errorf("%w: %v", ErrInternal, cause)
	}
}

// reject фиксирует отказ: черновик переходит в failed с причиной
func (uc *UseCase) reject(ctx context.Context, draft *domain.Draft, attempts int, reason string) (*Response, error) {
	uc.fail(ctx, draft, reason)
	uc.metrics.ObserveSubmission(string(outcomeRejected), attempts)
	uc.logger.Warn("ConfirmBooking: draft id=%s rejected: %s", draft.ID, reason)
	return &Response{Draft: draft}, &BookingRejectedError{Reason: reason}
}

func (uc *UseCase) fail(ctx context.Context, draft *domain.Draft, reason string) {
	draft.State = domain.DraftStateFailed
	draft.RejectionReason = &reason
	draft.UpdatedAt = uc.timeProvider.Now()
	uc.save(ctx, draft)
}

// save сохраняет итоговое состояние черновика даже после отмены ctx
func (uc *UseCase) save(ctx context.Context, draft *domain.Draft) {
	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), finalizeTimeout)
	defer cancel()

	if err := uc.draftRepo.Update(saveCtx, draft); err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			uc.logger.Info("ConfirmBooking: draft id=%s was discarded during submission", draft.ID)
			return
		}
		uc.logger.Error("ConfirmBooking: failed to save draft id=%s in state %s: %v", draft.ID, draft.State, err)
	}
}

// release отменяет бронирование во внешнем сервисе, если его не удалось сохранить
func (uc *UseCase) release(ctx context.Context, bookingID string) {
	releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), finalizeTimeout)
	defer cancel()

	if err := uc.gateway.Release(releaseCtx, bookingID); err != nil {
		uc.logger.Error("ConfirmBooking: failed to release booking id=%s: %v", bookingID, err)
		return
	}
	uc.logger.Info("ConfirmBooking: booking id=%s released", bookingID)
}

func (uc *UseCase) register(draftID string, cancel context.CancelFunc) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.closed {
		return ErrShuttingDown
	}
	if _, ok := uc.inflight[draftID]; ok {
		return fmt.Errorf("%w: submission already in progress", ErrInvalidState)
	}

	uc.inflight[draftID] = cancel
	uc.wg.Add(1)
	return nil
}

func (uc *UseCase) unregister(draftID string) {
	uc.mu.Lock()
	cancel, ok := uc.inflight[draftID]
	delete(uc.inflight, draftID)
	uc.mu.Unlock()

	if ok {
		cancel()
		uc.wg.Done()
	}
}
