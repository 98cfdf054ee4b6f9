package models

import "github.com/m04kA/D2D-MarketplaceService/internal/domain"

// Response модели

// ServiceResponse карточка услуги
type ServiceResponse struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Category        string  `json:"category"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	Rating          float64 `json:"rating"`
	NumberOfRatings int     `json:"numberOfRatings"`
	Image           string  `json:"image"`
	ProviderID      string  `json:"providerId"`
}

// ProviderResponse профиль провайдера
type ProviderResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Avatar      string   `json:"avatar"`
	Profession  string   `json:"profession"`
	Description string   `json:"description"`
	Rating      float64  `json:"rating"`
	TotalJobs   int      `json:"totalJobs"`
	Location    string   `json:"location"`
	Services    []string `json:"services"`
}

// ReviewResponse отзыв
type ReviewResponse struct {
	ID         string  `json:"id"`
	ServiceID  string  `json:"serviceId"`
	ProviderID string  `json:"providerId"`
	UserID     string  `json:"userId"`
	UserName   string  `json:"userName"`
	Avatar     *string `json:"avatar,omitempty"`
	Rating     int     `json:"rating"`
	Comment    string  `json:"comment"`
	Date       string  `json:"date"`
}

// CategoryResponse категория
type CategoryResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	IconName string `json:"iconName"`
}

// ServiceDetailsResponse экран услуги: услуга, её провайдер и отзывы
type ServiceDetailsResponse struct {
	Service  ServiceResponse  `json:"service"`
	Provider ProviderResponse `json:"provider"`
	Reviews  []ReviewResponse `json:"reviews"`
}

// ProviderDetailsResponse экран провайдера: профиль, услуги и отзывы
type ProviderDetailsResponse struct {
	Provider ProviderResponse  `json:"provider"`
	Services []ServiceResponse `json:"services"`
	Reviews  []ReviewResponse  `json:"reviews"`
}

// Методы конвертации

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:              s.ID,
		Title:           s.Title,
		Category:        s.Category,
		Description:     s.Description,
		Price:           s.Price,
		Rating:          s.Rating,
		NumberOfRatings: s.NumberOfRatings,
		Image:           s.Image,
		ProviderID:      s.ProviderID,
	}
}

// FromDomainServiceList конвертирует список услуг
func FromDomainServiceList(services []domain.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, FromDomainService(s))
	}
	return out
}

// FromDomainProvider конвертирует domain модель в DTO
func FromDomainProvider(p domain.Provider) ProviderResponse {
	services := p.ServiceIDs
	if services == nil {
		services = []string{}
	}
	return ProviderResponse{
		ID:          p.ID,
		Name:        p.Name,
		Avatar:      p.Avatar,
		Profession:  p.Profession,
		Description: p.Description,
		Rating:      p.Rating,
		TotalJobs:   p.TotalJobs,
		Location:    p.Location,
		Services:    services,
	}
}

// FromDomainProviderList конвертирует список провайдеров
func FromDomainProviderList(providers []domain.Provider) []ProviderResponse {
	out := make([]ProviderResponse, 0, len(providers))
	for _, p := range providers {
		out = append(out, FromDomainProvider(p))
	}
	return out
}

// FromDomainReviewList конвертирует список отзывов
func FromDomainReviewList(reviews []domain.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, ReviewResponse{
			ID:         r.ID,
			ServiceID:  r.ServiceID,
			ProviderID: r.ProviderID,
			UserID:     r.UserID,
			UserName:   r.UserName,
			Avatar:     r.Avatar,
			Rating:     r.Rating,
			Comment:    r.Comment,
			Date:       r.Date,
		})
	}
	return out
}

// FromDomainCategoryList конвертирует список категорий
func FromDomainCategoryList(categories []domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryResponse{
			ID:       c.ID,
			Title:    c.Title,
			IconName: c.IconName,
		})
	}
	return out
}
