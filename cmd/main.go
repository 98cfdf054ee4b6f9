package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sethvargo/go-retry"

	cancelBookingHandler "github.com/m04kA/D2D-MarketplaceService/internal/api/handlers/cancel_booking"
	createDraftHandler "github.com/m04kA/D2D-MarketplaceService/internal/api/handlers/create_draft"
	discardDraftHandler "github.com/m04kA/D2D-MarketplaceService/internal/api/handlers/discard_draft"
	getAvailableSlotsHandler "github.com/m04kA/D2D-MarketplaceService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/D2D-MarketplaceService/internal/api/handlers/get_booking"
	getBookingOptionsHandler "github.com/m04kA/D2D-MarketplaceService/internal/api/handlers/get_booking_options"
	getDraftHandler "github.com/m04kA/D2D-MarketplaceService/internal/api/handlers/get_draft"
	getProviderHandler "github.com/m04kA/D2D-MarketplaceService/internal/api/handlers/get_provider"
	getServiceHandler "github.com/m04kA/D2D-MarketplaceService/internal/api/handlers/get_service"
	getUserBookingsHandler "github.com/m04kA/D2D-MarketplaceService/internal/api/handlers/get_user_bookings"
	listCategoriesHandler "github.com/m04kA/D2D-MarketplaceService/internal/api/handlers/list_categories"
	listChatsHandler "github.com/m04kA/D2D-MarketplaceService/internal/api/handlers/list_chats"
	listMessagesHandler "github.com/m04kA/D2D-MarketplaceService/internal/api/handlers/list_messages"
	listProvidersHandler "github.com/m04kA/D2D-MarketplaceService/internal/api/handlers/list_providers"
	searchFiltersHandler "github.com/m04kA/D2D-MarketplaceService/internal/api/handlers/search_filters"
	searchServicesHandler "github.com/m04kA/D2D-MarketplaceService/internal/api/handlers/search_services"
	sendMessageHandler "github.com/m04kA/D2D-MarketplaceService/internal/api/handlers/send_message"
	submitDraftHandler "github.com/m04kA/D2D-MarketplaceService/internal/api/handlers/submit_draft"
	updateDraftHandler "github.com/m04kA/D2D-MarketplaceService/internal/api/handlers/update_draft"
	"github.com/m04kA/D2D-MarketplaceService/internal/api/middleware"
	"github.com/m04kA/D2D-MarketplaceService/internal/catalog"
	"github.com/m04kA/D2D-MarketplaceService/internal/config"
	bookingRepo "github.com/m04kA/D2D-MarketplaceService/internal/infra/storage/booking"
	draftRepo "github.com/m04kA/D2D-MarketplaceService/internal/infra/storage/draft"
	"github.com/m04kA/D2D-MarketplaceService/internal/integrations/bookinggateway"
	"github.com/m04kA/D2D-MarketplaceService/internal/integrations/catalogservice"
	completeBookingsJob "github.com/m04kA/D2D-MarketplaceService/internal/jobs/complete_bookings"
	bookingsService "github.com/m04kA/D2D-MarketplaceService/internal/service/bookings"
	catalogService "github.com/m04kA/D2D-MarketplaceService/internal/service/catalog"
	draftsService "github.com/m04kA/D2D-MarketplaceService/internal/service/drafts"
	messagesService "github.com/m04kA/D2D-MarketplaceService/internal/service/messages"
	confirmBookingUC "github.com/m04kA/D2D-MarketplaceService/internal/usecase/confirm_booking"
	getAvailableSlotsUC "github.com/m04kA/D2D-MarketplaceService/internal/usecase/get_available_slots"
	searchServicesUC "github.com/m04kA/D2D-MarketplaceService/internal/usecase/search_services"
	"github.com/m04kA/D2D-MarketplaceService/migrations"
	"github.com/m04kA/D2D-MarketplaceService/pkg/dbmetrics"
	"github.com/m04kA/D2D-MarketplaceService/pkg/logger"
	"github.com/m04kA/D2D-MarketplaceService/pkg/metrics"
	"github.com/m04kA/D2D-MarketplaceService/pkg/migrate"
	"github.com/m04kA/D2D-MarketplaceService/pkg/txmanager"
)

// catalogFetchRetries сколько раз повторять загрузку удалённого каталога при старте
const catalogFetchRetries = 5

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting D2D-MarketplaceService...")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Каталог загружается один раз и дальше только читается
	store, err := loadCatalog(cfg, log)
	if err != nil {
		log.Fatal("Failed to load catalog: %v", err)
	}
	log.Info("Catalog loaded (source=%s): services=%d, providers=%d, categories=%d",
		cfg.Catalog.Source, len(store.Services()), len(store.Providers()), len(store.Categories()))

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if cfg.Database.AutoMigrate {
		if err := migrate.Up(db, migrations.FS, log); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Database migrations applied")
	}

	// Обёртка с метриками запросов; без метрик recorder не задаётся
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil, cfg.Metrics.ServiceName)
	}

	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Хранилище черновиков
	drafts, closeDrafts, err := newDraftRepository(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize drafts storage: %v", err)
	}
	defer closeDrafts()

	// Шлюз бронирований: внешний сервис или симуляция
	var gateway confirmBookingUC.BookingGateway
	if cfg.Gateway.URL != "" {
		gateway = bookinggateway.NewClient(cfg.Gateway.URL, time.Duration(cfg.Gateway.Timeout)*time.Second, log)
		log.Info("Booking gateway client initialized (url=%s, timeout=%ds)", cfg.Gateway.URL, cfg.Gateway.Timeout)
	} else {
		gateway = bookinggateway.NewSimulated(time.Duration(cfg.Gateway.SimulatedDelayMs)*time.Millisecond, log)
		log.Info("Booking gateway simulated (delay=%dms)", cfg.Gateway.SimulatedDelayMs)
	}

	// Инициализируем use cases
	searchUseCase := searchServicesUC.NewUseCase(store, metricsCollector, log)

	confirmUseCase := confirmBookingUC.NewUseCase(
		drafts,
		bookingRepository,
		store,
		gateway,
		txMgr,
		metricsCollector,
		confirmBookingUC.RetryPolicy{
			MaxAttempts: cfg.Booking.MaxSubmitAttempts,
			BaseDelay:   time.Duration(cfg.Booking.RetryBaseDelayMs) * time.Millisecond,
			MaxDelay:    time.Duration(cfg.Booking.RetryMaxDelayMs) * time.Millisecond,
		},
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		store,
		cfg.Booking.DateWindowDays,
		log,
	)

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(store, log)
	draftSvc := draftsService.NewService(drafts, store, confirmUseCase, cfg.Booking.DateWindowDays, log)
	bookingSvc := bookingsService.NewService(bookingRepository, store, log)
	messageSvc := messagesService.NewService(store, log)
	messageSvc.SetReplyDelayBounds(
		time.Duration(cfg.Messages.MinReplyDelayMs)*time.Millisecond,
		time.Duration(cfg.Messages.MaxReplyDelayMs)*time.Millisecond,
	)

	// Фоновая задача завершения прошедших бронирований
	var completeJob *completeBookingsJob.Job
	if cfg.Jobs.CompleteBookingsEnabled {
		completeJob = completeBookingsJob.NewJob(
			bookingRepository,
			time.Duration(cfg.Jobs.CompleteBookingsInterval)*time.Second,
			log,
		)
		completeJob.Start()
		log.Info("Complete bookings job started (interval=%ds)", cfg.Jobs.CompleteBookingsInterval)
	}

	// Инициализируем handlers
	searchServices := searchServicesHandler.NewHandler(searchUseCase, log)
	searchFilters := searchFiltersHandler.NewHandler(searchUseCase, log)
	getService := getServiceHandler.NewHandler(catalogSvc, log)
	getProvider := getProviderHandler.NewHandler(catalogSvc, log)
	listProviders := listProvidersHandler.NewHandler(catalogSvc, log)
	listCategories := listCategoriesHandler.NewHandler(catalogSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBookingOptions := getBookingOptionsHandler.NewHandler(draftSvc, log)
	createDraft := createDraftHandler.NewHandler(draftSvc, log)
	getDraft := getDraftHandler.NewHandler(draftSvc, log)
	updateDraft := updateDraftHandler.NewHandler(draftSvc, log)
	discardDraft := discardDraftHandler.NewHandler(draftSvc, log)
	submitDraft := submitDraftHandler.NewHandler(confirmUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	listChats := listChatsHandler.NewHandler(messageSvc, log)
	listMessages := listMessagesHandler.NewHandler(messageSvc, log)
	sendMessage := sendMessageHandler.NewHandler(messageSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	if cfg.RateLimit.Enabled {
		limiter, err := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, cfg.RateLimit.TrustedProxies, log)
		if err != nil {
			log.Fatal("Failed to configure rate limiter: %v", err)
		}
		api.Use(limiter.Middleware())
		log.Info("Rate limiting enabled (%d req/min, burst=%d, trusted proxies=%d)",
			cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, len(cfg.RateLimit.TrustedProxies))
	}

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// --- Каталог и поиск ---
	api.HandleFunc("/services", searchServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}", getService.Handle).Methods(http.MethodGet)
	api.HandleFunc("/search/filters", searchFilters.Handle).Methods(http.MethodGet)
	api.HandleFunc("/providers", listProviders.Handle).Methods(http.MethodGet)
	api.HandleFunc("/providers/{providerId}", getProvider.Handle).Methods(http.MethodGet)
	api.HandleFunc("/categories", listCategories.Handle).Methods(http.MethodGet)

	// Занятость провайдера на дату
	api.HandleFunc("/providers/{providerId}/availability", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Варианты выбора для черновика
	api.HandleFunc("/booking-options", getBookingOptions.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Черновики ---
	protected.HandleFunc("/drafts", createDraft.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/drafts/{draftId}", getDraft.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/drafts/{draftId}", updateDraft.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/drafts/{draftId}", discardDraft.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/drafts/{draftId}/submit", submitDraft.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Сообщения ---
	protected.HandleFunc("/chats", listChats.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/providers/{providerId}/messages", listMessages.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/providers/{providerId}/messages", sendMessage.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Отменяем выполняющиеся отправки и автоответы, дожидаемся записи их результатов
	confirmUseCase.Close()
	messageSvc.Close()
	if completeJob != nil {
		completeJob.Stop()
	}
	log.Info("Background work stopped")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	log.Info("Server stopped gracefully")
}

// loadCatalog загружает встроенный каталог или читает его из внешнего сервиса
// Недоступность внешнего сервиса при старте повторяется с экспоненциальной задержкой
func loadCatalog(cfg *config.Config, log *logger.Logger) (*catalog.Store, error) {
	if cfg.Catalog.Source == config.CatalogSourceBundled {
		return catalog.New(catalog.Bundled())
	}

	client := catalogservice.NewClient(cfg.Catalog.URL, time.Duration(cfg.Catalog.Timeout)*time.Second, log)
	backoff := retry.WithMaxRetries(catalogFetchRetries, retry.NewExponential(500*time.Millisecond))

	var ds catalog.Dataset
	err := retry.Do(context.Background(), backoff, func(ctx context.Context) error {
		fetched, err := client.FetchDataset(ctx)
		if errors.Is(err, catalogservice.ErrUnavailable) {
			log.Warn("Catalog service unavailable, retrying: %v", err)
			return retry.RetryableError(err)
		}
		if err != nil {
			return err
		}
		ds = fetched
		return nil
	})
	if err != nil {
		return nil, err
	}

	return catalog.New(ds)
}

// newDraftRepository создает хранилище черновиков по конфигу
// Возвращаемая функция освобождает ресурсы хранилища
func newDraftRepository(cfg *config.Config, log *logger.Logger) (draftRepo.Repository, func(), error) {
	ttl := time.Duration(cfg.Drafts.TTLMinutes) * time.Minute

	if cfg.Drafts.Backend == config.DraftsBackendMemory {
		log.Info("Drafts stored in memory (ttl=%s)", ttl)
		return draftRepo.NewMemoryRepository(ttl), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("ping redis %s: %w", cfg.Redis.Addr, err)
	}

	log.Info("Drafts stored in redis (addr=%s, db=%d, ttl=%s)", cfg.Redis.Addr, cfg.Redis.DB, ttl)
	closeFn := func() {
		if err := client.Close(); err != nil {
			log.Error("Failed to close redis client: %v", err)
		}
	}
	return draftRepo.NewRedisRepository(client, ttl), closeFn, nil
}
