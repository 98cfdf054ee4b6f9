package catalog

import (
	"fmt"

	"github.com/m04kA/D2D-MarketplaceService/internal/domain"
)

// Dataset исходные данные каталога
type Dataset struct {
	Services   []domain.Service
	Providers  []domain.Provider
	Reviews    []domain.Review
	Categories []domain.Category
}

// Store read-only каталог услуг, провайдеров, отзывов и категорий.
// Не изменяется после создания, поэтому безопасен для конкурентного чтения без блокировок.
type Store struct {
	services   []domain.Service
	providers  []domain.Provider
	reviews    []domain.Review
	categories []domain.Category

	serviceIdx  map[string]int
	providerIdx map[string]int
}

// New валидирует набор данных и строит каталог
func New(ds Dataset) (*Store, error) {
	s := &Store{
		services:    make([]domain.Service, len(ds.Services)),
		providers:   make([]domain.Provider, len(ds.Providers)),
		reviews:     make([]domain.Review, len(ds.Reviews)),
		categories:  make([]domain.Category, len(ds.Categories)),
		serviceIdx:  make(map[string]int, len(ds.Services)),
		providerIdx: make(map[string]int, len(ds.Providers)),
	}
	copy(s.services, ds.Services)
	copy(s.reviews, ds.Reviews)
	copy(s.categories, ds.Categories)
	for i, p := range ds.Providers {
		s.providers[i] = copyProvider(p)
	}

	if err := s.index(); err != nil {
		return nil, err
	}
	if err := s.validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// MustNew то же, что New, но паникует на ошибке
func MustNew(ds Dataset) *Store {
	s, err := New(ds)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Store) index() error {
	for i, svc := range s.services {
		if _, ok := s.serviceIdx[svc.ID]; ok {
			return fmt.Errorf("%w: service %q", ErrDuplicateID, svc.ID)
		}
		s.serviceIdx[svc.ID] = i
	}
	for i, p := range s.providers {
		if _, ok := s.providerIdx[p.ID]; ok {
			return fmt.Errorf("%w: provider %q", ErrDuplicateID, p.ID)
		}
		s.providerIdx[p.ID] = i
	}
	return nil
}

func (s *Store) validate() error {
	categories := make(map[string]struct{}, len(s.categories))
	for _, c := range s.categories {
		if _, ok := categories[c.ID]; ok {
			return fmt.Errorf("%w: category %q", ErrDuplicateID, c.ID)
		}
		categories[c.ID] = struct{}{}
	}

	for _, svc := range s.services {
		if _, ok := s.providerIdx[svc.ProviderID]; !ok {
			return fmt.Errorf("%w: service %q references provider %q", ErrDanglingReference, svc.ID, svc.ProviderID)
		}
		if _, ok := categories[svc.Category]; !ok {
			return fmt.Errorf("%w: service %q references category %q", ErrDanglingReference, svc.ID, svc.Category)
		}
	}

	for _, p := range s.providers {
		for _, id := range p.ServiceIDs {
			if _, ok := s.serviceIdx[id]; !ok {
				return fmt.Errorf("%w: provider %q references service %q", ErrDanglingReference, p.ID, id)
			}
		}
	}

	seen := make(map[string]struct{}, len(s.reviews))
	for _, r := range s.reviews {
		if _, ok := seen[r.ID]; ok {
			return fmt.Errorf("%w: review %q", ErrDuplicateID, r.ID)
		}
		seen[r.ID] = struct{}{}
		if _, ok := s.serviceIdx[r.ServiceID]; !ok {
			return fmt.Errorf("%w: review %q references service %q", ErrDanglingReference, r.ID, r.ServiceID)
		}
		if _, ok := s.providerIdx[r.ProviderID]; !ok {
			return fmt.Errorf("%w: review %q references provider %q", ErrDanglingReference, r.ID, r.ProviderID)
		}
	}

	return nil
}

// Services возвращает все услуги в порядке каталога
func (s *Store) Services() []domain.Service {
	out := make([]domain.Service, len(s.services))
	copy(out, s.services)
	return out
}

// ServiceByID возвращает услугу по ID
func (s *Store) ServiceByID(id string) (domain.Service, error) {
	i, ok := s.serviceIdx[id]
	if !ok {
		return domain.Service{}, fmt.Errorf("%w: service %q", ErrNotFound, id)
	}
	return s.services[i], nil
}

// ProviderByID возвращает провайдера по ID
func (s *Store) ProviderByID(id string) (domain.Provider, error) {
	i, ok := s.providerIdx[id]
	if !ok {
		return domain.Provider{}, fmt.Errorf("%w: provider %q", ErrNotFound, id)
	}
	return copyProvider(s.providers[i]), nil
}

// Providers возвращает всех провайдеров
func (s *Store) Providers() []domain.Provider {
	out := make([]domain.Provider, len(s.providers))
	for i, p := range s.providers {
		out[i] = copyProvider(p)
	}
	return out
}

// Categories возвращает все категории
func (s *Store) Categories() []domain.Category {
	out := make([]domain.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// ServicesByProvider возвращает услуги провайдера в порядке его списка
func (s *Store) ServicesByProvider(providerID string) []domain.Service {
	i, ok := s.providerIdx[providerID]
	if !ok {
		return []domain.Service{}
	}
	ids := s.providers[i].ServiceIDs
	out := make([]domain.Service, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.services[s.serviceIdx[id]])
	}
	return out
}

// ReviewsByService возвращает отзывы об услуге
func (s *Store) ReviewsByService(serviceID string) []domain.Review {
	return s.filterReviews(func(r domain.Review) bool { return r.ServiceID == serviceID })
}

// ReviewsByProvider возвращает отзывы о провайдере
func (s *Store) ReviewsByProvider(providerID string) []domain.Review {
	return s.filterReviews(func(r domain.Review) bool { return r.ProviderID == providerID })
}

func (s *Store) filterReviews(match func(domain.Review) bool) []domain.Review {
	out := make([]domain.Review, 0)
	for _, r := range s.reviews {
		if match(r) {
			out = append(out, copyReview(r))
		}
	}
	return out
}

func copyProvider(p domain.Provider) domain.Provider {
	ids := make([]string, len(p.ServiceIDs))
	copy(ids, p.ServiceIDs)
	p.ServiceIDs = ids
	return p
}

func copyReview(r domain.Review) domain.Review {
	if r.Avatar != nil {
		avatar := *r.Avatar
		r.Avatar = &avatar
	}
	return r
}
