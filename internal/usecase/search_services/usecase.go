package search_services

import (
	"context"

	"github.com/m04kA/D2D-MarketplaceService/internal/domain"
)

// UseCase use case для поиска услуг в каталоге
type UseCase struct {
	catalog Catalog
	metrics Metrics
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
// metrics может быть nil
func NewUseCase(catalog Catalog, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		catalog: catalog,
		metrics: metrics,
		logger:  logger,
	}
}

// Execute выполняет поиск. Не возвращает ошибок: пустой результат тоже результат.
func (uc *UseCase) Execute(ctx context.Context, req *Request) *Response {
	query := buildQuery(req)

	services := Filter(uc.catalog.Services(), query)

	uc.logger.Info("SearchServices: q=%q, categories=%v, price=%v, rating=%v, found=%d",
		query.Text, query.Categories, query.PriceRange, query.MinRating, len(services))

	if uc.metrics != nil {
		uc.metrics.ObserveSearch(query.IsEmpty(), len(services))
	}

	return &Response{
		Services: services,
		Count:    len(services),
	}
}

// Filters возвращает доступные значения фасетов
func (uc *UseCase) Filters(ctx context.Context) *Filters {
	categories := uc.catalog.Categories()

	f := &Filters{
		Categories: make([]FilterOption, 0, len(categories)),
		PriceRange: make([]FilterOption, 0, len(domain.PriceBuckets)),
		Rating:     make([]FilterOption, 0, len(domain.RatingBuckets)),
	}
	for _, c := range categories {
		f.Categories = append(f.Categories, FilterOption{ID: c.ID, Label: c.Title})
	}
	for _, b := range domain.PriceBuckets {
		f.PriceRange = append(f.PriceRange, FilterOption{ID: string(b), Label: b.Label()})
	}
	for _, b := range domain.RatingBuckets {
		f.Rating = append(f.Rating, FilterOption{ID: string(b), Label: b.Label()})
	}

	return f
}

// buildQuery собирает неизменяемый запрос из параметров.
// Значения копируются, неизвестные фасеты сохраняются и ничему не соответствуют.
func buildQuery(req *Request) domain.Query {
	if req == nil {
		return domain.Query{}
	}

	q := domain.Query{Text: req.Text}
	if len(req.Categories) > 0 {
		q.Categories = append([]string(nil), req.Categories...)
	}
	for _, p := range req.PriceRange {
		q.PriceRange = append(q.PriceRange, domain.PriceBucket(p))
	}
	for _, r := range req.MinRating {
		q.MinRating = append(q.MinRating, domain.RatingBucket(r))
	}
	return q
}
