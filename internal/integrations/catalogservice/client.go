package catalogservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/D2D-MarketplaceService/internal/catalog"
	"github.com/m04kA/D2D-MarketplaceService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для чтения каталога из внешнего сервиса
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса каталога
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// FetchDataset загружает весь каталог. Проверка ссылок выполняется в catalog.New.
func (c *Client) FetchDataset(ctx context.Context) (catalog.Dataset, error) {
	var (
		services   []Service
		providers  []Provider
		reviews    []Review
		categories []Category
	)

	if err := c.get(ctx, "/services", &services); err != nil {
		return catalog.Dataset{}, err
	}
	if err := c.get(ctx, "/providers", &providers); err != nil {
		return catalog.Dataset{}, err
	}
	if err := c.get(ctx, "/reviews", &reviews); err != nil {
		return catalog.Dataset{}, err
	}
	if err := c.get(ctx, "/categories", &categories); err != nil {
		return catalog.Dataset{}, err
	}

	ds := catalog.Dataset{
		Services:   make([]domain.Service, 0, len(services)),
		Providers:  make([]domain.Provider, 0, len(providers)),
		Reviews:    make([]domain.Review, 0, len(reviews)),
		Categories: make([]domain.Category, 0, len(categories)),
	}
	for _, s := range services {
		ds.Services = append(ds.Services, s.toDomain())
	}
	for _, p := range providers {
		ds.Providers = append(ds.Providers, p.toDomain())
	}
	for _, r := range reviews {
		ds.Reviews = append(ds.Reviews, r.toDomain())
	}
	for _, cat := range categories {
		ds.Categories = append(ds.Categories, cat.toDomain())
	}

	c.log.Info("Fetched catalog: services=%d, providers=%d, reviews=%d, categories=%d",
		len(ds.Services), len(ds.Providers), len(ds.Reviews), len(ds.Categories))
	return ds, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: GET %s: %v", ErrUnavailable, path, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode == http.StatusOK:
		// Продолжаем обработку
	case resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%w: GET %s: status code %d", ErrUnavailable, path, resp.StatusCode)
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: GET %s: unexpected status code %d: %s", ErrInvalidResponse, path, resp.StatusCode, string(body))
	}

	// Парсим ответ
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: GET %s: failed to decode response: %v", ErrInvalidResponse, path, err)
	}

	return nil
}
