package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// EnvConfigPath переменная окружения с путём к конфигу
const EnvConfigPath = "CONFIG_PATH"

var (
	// ErrInvalidConfig возвращается при недопустимых значениях в конфиге
	ErrInvalidConfig = errors.New("config: invalid value")
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Catalog   CatalogConfig   `toml:"catalog"`
	Drafts    DraftsConfig    `toml:"drafts"`
	Redis     RedisConfig     `toml:"redis"`
	Gateway   GatewayConfig   `toml:"gateway"`
	Booking   BookingConfig   `toml:"booking"`
	Messages  MessagesConfig  `toml:"messages"`
	Jobs      JobsConfig      `toml:"jobs"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
	AutoMigrate     bool   `toml:"auto_migrate"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

const (
	CatalogSourceBundled = "bundled"
	CatalogSourceRemote  = "remote"
)

type CatalogConfig struct {
	Source  string `toml:"source"` // bundled | remote
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

const (
	DraftsBackendMemory = "memory"
	DraftsBackendRedis  = "redis"
)

type DraftsConfig struct {
	Backend    string `toml:"backend"`     // memory | redis
	TTLMinutes int    `toml:"ttl_minutes"` // время жизни черновика в redis
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// GatewayConfig внешний сервис подтверждения бронирований
// Если URL пустой, используется симуляция с фиксированной задержкой
type GatewayConfig struct {
	URL              string `toml:"url"`
	Timeout          int    `toml:"timeout"`            // секунды
	SimulatedDelayMs int    `toml:"simulated_delay_ms"` // задержка симуляции
}

type BookingConfig struct {
	DateWindowDays    int `toml:"date_window_days"`
	MaxSubmitAttempts int `toml:"max_submit_attempts"` // всего попыток к шлюзу, включая первую
	RetryBaseDelayMs  int `toml:"retry_base_delay_ms"`
	RetryMaxDelayMs   int `toml:"retry_max_delay_ms"`
}

type MessagesConfig struct {
	MinReplyDelayMs int `toml:"min_reply_delay_ms"`
	MaxReplyDelayMs int `toml:"max_reply_delay_ms"`
}

type JobsConfig struct {
	CompleteBookingsEnabled  bool `toml:"complete_bookings_enabled"`
	CompleteBookingsInterval int  `toml:"complete_bookings_interval"` // секунды
}

type RateLimitConfig struct {
	Enabled           bool     `toml:"enabled"`
	RequestsPerMinute int      `toml:"requests_per_minute"`
	Burst             int      `toml:"burst"`
	TrustedProxies    []string `toml:"trusted_proxies"` // IP или CIDR, от которых принимается X-Forwarded-For
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "door2door",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
			AutoMigrate:     true,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "d2d_marketplace",
		},
		Catalog: CatalogConfig{
			Source:  CatalogSourceBundled,
			Timeout: 5,
		},
		Drafts: DraftsConfig{
			Backend:    DraftsBackendMemory,
			TTLMinutes: 60,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Gateway: GatewayConfig{
			Timeout:          5,
			SimulatedDelayMs: 1000,
		},
		Booking: BookingConfig{
			DateWindowDays:    7,
			MaxSubmitAttempts: 3,
			RetryBaseDelayMs:  200,
			RetryMaxDelayMs:   2000,
		},
		Messages: MessagesConfig{
			MinReplyDelayMs: 1000,
			MaxReplyDelayMs: 3000,
		},
		Jobs: JobsConfig{
			CompleteBookingsEnabled:  true,
			CompleteBookingsInterval: 3600,
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerMinute: 200,
			Burst:             50,
		},
	}
}

// Load читает TOML файл поверх значений по умолчанию
// Путь из CONFIG_PATH имеет приоритет над аргументом
func Load(path string) (*Config, error) {
	if envPath := os.Getenv(EnvConfigPath); envPath != "" {
		path = envPath
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет значения, которые не имеют смысла
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	switch c.Catalog.Source {
	case CatalogSourceBundled:
	case CatalogSourceRemote:
		if c.Catalog.URL == "" {
			return fmt.Errorf("%w: catalog.url is required for remote source", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: catalog.source=%q", ErrInvalidConfig, c.Catalog.Source)
	}

	switch c.Drafts.Backend {
	case DraftsBackendMemory:
	case DraftsBackendRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("%w: redis.addr is required for redis drafts backend", ErrInvalidConfig)
		}
		if c.Drafts.TTLMinutes <= 0 {
			return fmt.Errorf("%w: drafts.ttl_minutes=%d", ErrInvalidConfig, c.Drafts.TTLMinutes)
		}
	default:
		return fmt.Errorf("%w: drafts.backend=%q", ErrInvalidConfig, c.Drafts.Backend)
	}

	if c.Booking.DateWindowDays <= 0 {
		return fmt.Errorf("%w: booking.date_window_days=%d", ErrInvalidConfig, c.Booking.DateWindowDays)
	}
	if c.Booking.MaxSubmitAttempts <= 0 {
		return fmt.Errorf("%w: booking.max_submit_attempts=%d", ErrInvalidConfig, c.Booking.MaxSubmitAttempts)
	}
	if c.Gateway.SimulatedDelayMs < 0 {
		return fmt.Errorf("%w: gateway.simulated_delay_ms=%d", ErrInvalidConfig, c.Gateway.SimulatedDelayMs)
	}
	if c.Messages.MinReplyDelayMs < 0 || c.Messages.MaxReplyDelayMs < c.Messages.MinReplyDelayMs {
		return fmt.Errorf("%w: messages reply delay range [%d, %d]", ErrInvalidConfig,
			c.Messages.MinReplyDelayMs, c.Messages.MaxReplyDelayMs)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerMinute <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate_limit requires positive requests_per_minute and burst", ErrInvalidConfig)
	}

	return nil
}
