package catalog

import (
	"context"
	"errors"
	"fmt"

	catalogStore "github.com/m04kA/D2D-MarketplaceService/internal/catalog"
	"github.com/m04kA/D2D-MarketplaceService/internal/service/catalog/models"
)

// Service сервис чтения каталога
type Service struct {
	store  CatalogStore
	logger Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(store CatalogStore, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// GetService возвращает услугу вместе с провайдером и отзывами
func (s *Service) GetService(ctx context.Context, serviceID string) (*models.ServiceDetailsResponse, error) {
	service, err := s.store.ServiceByID(serviceID)
	if err != nil {
		if errors.Is(err, catalogStore.ErrNotFound) {
			s.logger.Warn("GetService: service id=%s not found", serviceID)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetService: catalog error for service id=%s: %v", serviceID, err)
		return nil, fmt.Errorf("%w: GetService - catalog error: %v", ErrInternal, err)
	}

	provider, err := s.store.ProviderByID(service.ProviderID)
	if err != nil {
		// Каталог проверяет ссылки при загрузке, сюда попадать не должны
		s.logger.Error("GetService: provider id=%s of service id=%s is missing: %v", service.ProviderID, serviceID, err)
		return nil, fmt.Errorf("%w: GetService - provider lookup: %v", ErrInternal, err)
	}

	return &models.ServiceDetailsResponse{
		Service:  models.FromDomainService(service),
		Provider: models.FromDomainProvider(provider),
		Reviews:  models.FromDomainReviewList(s.store.ReviewsByService(serviceID)),
	}, nil
}

// GetProvider возвращает профиль провайдера с его услугами и отзывами
func (s *Service) GetProvider(ctx context.Context, providerID string) (*models.ProviderDetailsResponse, error) {
	provider, err := s.store.ProviderByID(providerID)
	if err != nil {
		if errors.Is(err, catalogStore.ErrNotFound) {
			s.logger.Warn("GetProvider: provider id=%s not found", providerID)
			return nil, ErrProviderNotFound
		}
		s.logger.Error("GetProvider: catalog error for provider id=%s: %v", providerID, err)
		return nil, fmt.Errorf("%w: GetProvider - catalog error: %v", ErrInternal, err)
	}

	return &models.ProviderDetailsResponse{
		Provider: models.FromDomainProvider(provider),
		Services: models.FromDomainServiceList(s.store.ServicesByProvider(providerID)),
		Reviews:  models.FromDomainReviewList(s.store.ReviewsByProvider(providerID)),
	}, nil
}

// ListProviders возвращает всех провайдеров
func (s *Service) ListProviders(ctx context.Context) []models.ProviderResponse {
	return models.FromDomainProviderList(s.store.Providers())
}

// ListCategories возвращает все категории
func (s *Service) ListCategories(ctx context.Context) []models.CategoryResponse {
	return models.FromDomainCategoryList(s.store.Categories())
}
