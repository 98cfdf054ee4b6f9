package search_services

import (
	"strings"

	"github.com/m04kA/D2D-MarketplaceService/internal/domain"
)

// Filter применяет запрос к списку услуг.
// Чистая функция: не изменяет аргументы, сохраняет исходный порядок.
// Внутри группы фасетов условия объединяются по ИЛИ, группы между собой по И.
func Filter(services []domain.Service, q domain.Query) []domain.Service {
	text := strings.ToLower(q.Text)

	result := make([]domain.Service, 0, len(services))
	for _, svc := range services {
		if text != "" && !strings.Contains(strings.ToLower(svc.Title), text) {
			continue
		}
		if !matchCategory(svc, q.Categories) {
			continue
		}
		if !matchPrice(svc, q.PriceRange) {
			continue
		}
		if !matchRating(svc, q.MinRating) {
			continue
		}
		result = append(result, svc)
	}

	return result
}

func matchCategory(svc domain.Service, categories []string) bool {
	if len(categories) == 0 {
		return true
	}
	for _, c := range categories {
		if svc.Category == c {
			return true
		}
	}
	return false
}

func matchPrice(svc domain.Service, buckets []domain.PriceBucket) bool {
	if len(buckets) == 0 {
		return true
	}
	for _, b := range buckets {
		if b.Contains(svc.Price) {
			return true
		}
	}
	return false
}

func matchRating(svc domain.Service, buckets []domain.RatingBucket) bool {
	if len(buckets) == 0 {
		return true
	}
	for _, b := range buckets {
		if b.Admits(svc.Rating) {
			return true
		}
	}
	return false
}
