package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics коллектор метрик сервиса
// Все методы безопасно вызывать на nil (метрики выключены в конфиге)
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbOpenConnections *prometheus.GaugeVec
	dbInUse           *prometheus.GaugeVec
	dbIdle            *prometheus.GaugeVec
	dbWaitCount       *prometheus.GaugeVec
	dbQueryDuration   *prometheus.HistogramVec

	searchQueriesTotal *prometheus.CounterVec
	searchResults      *prometheus.HistogramVec

	bookingSubmissions *prometheus.CounterVec
	gatewayAttempts    *prometheus.HistogramVec
}

// New создает коллектор и регистрирует его в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает коллектор в указанном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		dbOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections to the database",
			ConstLabels: constLabels,
		}, []string{"db"}),
		dbInUse: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}, []string{"db"}),
		dbIdle: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}, []string{"db"}),
		dbWaitCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}, []string{"db"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),

		searchQueriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "catalog_search_queries_total",
			Help:        "Total number of catalog search queries",
			ConstLabels: constLabels,
		}, []string{"empty"}),
		searchResults: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "catalog_search_results",
			Help:        "Number of services returned by a catalog search",
			ConstLabels: constLabels,
			Buckets:     []float64{0, 1, 2, 4, 8, 16, 32, 64},
		}, []string{}),

		bookingSubmissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_submissions_total",
			Help:        "Booking draft submissions by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
		gatewayAttempts: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "booking_gateway_attempts",
			Help:        "Booking gateway attempts per submission",
			ConstLabels: constLabels,
			Buckets:     []float64{1, 2, 3, 4, 5, 8},
		}, []string{}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.dbOpenConnections,
		m.dbInUse,
		m.dbIdle,
		m.dbWaitCount,
		m.dbQueryDuration,
		m.searchQueriesTotal,
		m.searchResults,
		m.bookingSubmissions,
		m.gatewayAttempts,
	)

	return m
}

// ObserveHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// SetDBStats обновляет метрики connection pool
func (m *Metrics) SetDBStats(db string, open, inUse, idle int, waitCount int64) {
	if m == nil {
		return
	}
	m.dbOpenConnections.WithLabelValues(db).Set(float64(open))
	m.dbInUse.WithLabelValues(db).Set(float64(inUse))
	m.dbIdle.WithLabelValues(db).Set(float64(idle))
	m.dbWaitCount.WithLabelValues(db).Set(float64(waitCount))
}

// ObserveDBQuery фиксирует длительность запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// ObserveSearch фиксирует поисковый запрос по каталогу и размер выдачи
func (m *Metrics) ObserveSearch(emptyQuery bool, results int) {
	if m == nil {
		return
	}
	m.searchQueriesTotal.WithLabelValues(strconv.FormatBool(emptyQuery)).Inc()
	m.searchResults.WithLabelValues().Observe(float64(results))
}

// ObserveSubmission фиксирует исход отправки черновика бронирования
// outcome: confirmed, rejected, unavailable, cancelled
func (m *Metrics) ObserveSubmission(outcome string, attempts int) {
	if m == nil {
		return
	}
	m.bookingSubmissions.WithLabelValues(outcome).Inc()
	if attempts > 0 {
		m.gatewayAttempts.WithLabelValues().Observe(float64(attempts))
	}
}
