package catalog

import (
	"context"

	"github.com/abir-25/doctors-portal-server/internal/domain"
)

// ServiceRepository defines the catalog reads this module needs.
type ServiceRepository interface {
	List(ctx context.Context) ([]domain.Service, error)
	ListNames(ctx context.Context) ([]domain.Specialty, error)
}
