package booking

import (
	"context"

	"github.com/abir-25/doctors-portal-server/internal/domain"
)

// BookingRepository defines the store operations admission needs. Create must
// be a conditional insert: it returns repository.ErrDuplicateAdmission or
// repository.ErrDuplicateSlot instead of inserting a conflicting row.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	FindByAdmissionKey(ctx context.Context, treatment, date, patient string) (*domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByPatient(ctx context.Context, patient string) ([]domain.Booking, error)
}

// NotificationSender is the fire-and-forget confirmation hook. Errors are
// ignored by the caller.
type NotificationSender interface {
	NotifyBookingConfirmed(ctx context.Context, patient, patientName, treatment, date, slot string) error
}
