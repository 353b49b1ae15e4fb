package doctor

import (
	"context"

	"github.com/abir-25/doctors-portal-server/internal/domain"
)

type DoctorRepository interface {
	Create(ctx context.Context, d *domain.Doctor) error
	List(ctx context.Context) ([]domain.Doctor, error)
	Delete(ctx context.Context, id int64) error
}
