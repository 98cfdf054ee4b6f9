package catalogservice

import "github.com/m04kA/D2D-MarketplaceService/internal/domain"

// Service модель услуги из сервиса каталога
type Service struct {
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

// Provider модель провайдера из сервиса каталога
type Provider struct {
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

// Review модель отзыва из сервиса каталога
type Review struct {
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

// Category модель категории из сервиса каталога
type Category struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	IconName string `json:"iconName"`
}

func (s Service) toDomain() domain.Service {
	return domain.Service{
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

func (p Provider) toDomain() domain.Provider {
	return domain.Provider{
		ID:          p.ID,
		Name:        p.Name,
		Avatar:      p.Avatar,
		Profession:  p.Profession,
		Description: p.Description,
		Rating:      p.Rating,
		TotalJobs:   p.TotalJobs,
		Location:    p.Location,
		ServiceIDs:  p.Services,
	}
}

func (r Review) toDomain() domain.Review {
	return domain.Review{
		ID:         r.ID,
		ServiceID:  r.ServiceID,
		ProviderID: r.ProviderID,
		UserID:     r.UserID,
		UserName:   r.UserName,
		Avatar:     r.Avatar,
		Rating:     r.Rating,
		Comment:    r.Comment,
		Date:       r.Date,
	}
}

func (c Category) toDomain() domain.Category {
	return domain.Category{
		ID:       c.ID,
		Title:    c.Title,
		IconName: c.IconName,
	}
}
