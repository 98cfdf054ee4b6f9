package search_services

import (
	"net/url"
	"strings"

	"github.com/m04kA/D2D-MarketplaceService/internal/domain"
	"github.com/m04kA/D2D-MarketplaceService/internal/service/catalog/models"
	searchServices "github.com/m04kA/D2D-MarketplaceService/internal/usecase/search_services"
)

// SearchResponse HTTP response model
type SearchResponse struct {
	Services []models.ServiceResponse `json:"services"`
	Count    int                      `json:"count"`
}

// ToUseCaseRequest собирает запрос из query параметров
// Фасеты можно передавать повторяющимися параметрами или списком через запятую
func ToUseCaseRequest(query url.Values) *searchServices.Request {
	return &searchServices.Request{
		Text:       query.Get("q"),
		Categories: multiValue(query, "category"),
		PriceRange: multiValue(query, "price"),
		MinRating:  ratingValues(query),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *searchServices.Response) *SearchResponse {
	return &SearchResponse{
		Services: models.FromDomainServiceList(resp.Services),
		Count:    resp.Count,
	}
}

func multiValue(query url.Values, key string) []string {
	var values []string
	for _, raw := range query[key] {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				values = append(values, v)
			}
		}
	}
	return values
}

// ratingValues читает фасет рейтинга
// Незакодированный "+" в query приходит пробелом, поэтому "4" и "3" считаются "4+" и "3+"
func ratingValues(query url.Values) []string {
	values := multiValue(query, "rating")
	for i, v := range values {
		if alias := v + "+"; isRatingBucket(alias) {
			values[i] = alias
		}
	}
	return values
}

func isRatingBucket(v string) bool {
	for _, b := range domain.RatingBuckets {
		if string(b) == v {
			return true
		}
	}
	return false
}
