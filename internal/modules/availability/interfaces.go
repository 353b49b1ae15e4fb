package availability

import (
	"context"

	"github.com/abir-25/doctors-portal-server/internal/domain"
)

type ServiceLister interface {
	List(ctx context.Context) ([]domain.Service, error)
}

type BookingLister interface {
	ListByDate(ctx context.Context, date string) ([]domain.Booking, error)
}
