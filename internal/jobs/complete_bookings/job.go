package complete_bookings

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval период проверки по умолчанию
const DefaultInterval = 10 * time.Minute

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	CompletePast(ctx context.Context, before time.Time) (int64, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Job периодически переводит прошедшие бронирования из upcoming в completed
type Job struct {
	bookingRepo  BookingRepository
	interval     time.Duration
	timeProvider TimeProvider
	logger       Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewJob создает задачу завершения бронирований
func NewJob(bookingRepo BookingRepository, interval time.Duration, logger Logger) *Job {
	if interval <= 0 {
		interval = DefaultInterval
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Job{
		bookingRepo:  bookingRepo,
		interval:     interval,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		ctx:          ctx,
		cancel:       cancel,
	}
}

// Start запускает задачу в горутине; первый проход выполняется сразу
func (j *Job) Start() {
	j.wg.Add(1)
	go j.run()
}

// Stop останавливает задачу и ждёт завершения текущего прохода
func (j *Job) Stop() {
	j.cancel()
	j.wg.Wait()
	j.logger.Info("CompleteBookings: job stopped")
}

func (j *Job) run() {
	defer j.wg.Done()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.logger.Info("CompleteBookings: job started, interval=%s", j.interval)
	_, _ = j.RunOnce(j.ctx)

	for {
		select {
		case <-j.ctx.Done():
			return
		case <-ticker.C:
			_, _ = j.RunOnce(j.ctx)
		}
	}
}

// RunOnce завершает бронирования с датой раньше сегодняшней
// Возвращает количество обновлённых бронирований
func (j *Job) RunOnce(ctx context.Context) (int64, error) {
	now := j.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	completed, err := j.bookingRepo.CompletePast(ctx, today)
	if err != nil {
		if ctx.Err() != nil {
			return 0, ctx.Err()
		}
		j.logger.Error("CompleteBookings: failed to complete bookings before %s: %v", today.Format("2006-01-02"), err)
		return 0, err
	}

	if completed > 0 {
		j.logger.Info("CompleteBookings: %d bookings moved to completed", completed)
	}
	return completed, nil
}
