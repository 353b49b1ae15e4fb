package catalog

import (
	"context"

	"github.com/abir-25/doctors-portal-server/internal/domain"
)

type Service struct {
	services ServiceRepository
}

func NewService(services ServiceRepository) *Service {
	return &Service{services: services}
}

// List returns every treatment with its full daily slot template.
func (s *Service) List(ctx context.Context) ([]domain.Service, error) {
	return s.services.List(ctx)
}

// Specialties returns the name-only projection of the catalog.
func (s *Service) Specialties(ctx context.Context) ([]domain.Specialty, error) {
	return s.services.ListNames(ctx)
}
