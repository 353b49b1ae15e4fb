package doctor

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/abir-25/doctors-portal-server/internal/domain"
)

var ErrNotFound = errors.New("doctor not found")

type Service struct {
	doctors DoctorRepository
}

func NewService(doctors DoctorRepository) *Service {
	return &Service{doctors: doctors}
}

func (s *Service) Create(ctx context.Context, req CreateDoctorRequest) (*domain.Doctor, error) {
	d := &domain.Doctor{
		Name:      req.Name,
		Email:     req.Email,
		Specialty: req.Specialty,
		ImageURL:  req.ImageURL,
	}
	if err := s.doctors.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Doctor, error) {
	return s.doctors.List(ctx)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.doctors.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
