package availability

import (
	"context"
	"time"

	"github.com/abir-25/doctors-portal-server/internal/domain"
)

type Service struct {
	services ServiceLister
	bookings BookingLister
}

func NewService(services ServiceLister, bookings BookingLister) *Service {
	return &Service{services: services, bookings: bookings}
}

// ForDate returns each service with only its still-open slots for the date.
// An empty date means today. Both reads are fresh on every call; nothing is
// cached and nothing is reserved.
func (s *Service) ForDate(ctx context.Context, date string) ([]domain.Service, error) {
	if date == "" {
		date = time.Now().Format(domain.DateLayout)
	}

	services, err := s.services.List(ctx)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookings.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	return Remaining(services, bookings), nil
}
