package booking

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/abir-25/doctors-portal-server/internal/domain"
	"github.com/abir-25/doctors-portal-server/internal/repository"
)

type Service struct {
	bookings BookingRepository
	notifs   NotificationSender
}

func NewService(bookings BookingRepository, notifs NotificationSender) *Service {
	return &Service{
		bookings: bookings,
		notifs:   notifs,
	}
}

// SubmitResult distinguishes a fresh admission from an idempotent replay.
// Accepted=false carries the previously stored booking, never a new one.
type SubmitResult struct {
	Accepted bool
	Booking  *domain.Booking
}

// Submit admits a booking. The insert itself is the duplicate check: the
// store's unique indexes serialize concurrent identical submissions, so there
// is no read-then-write window.
func (s *Service) Submit(ctx context.Context, req CreateBookingRequest) (*SubmitResult, error) {
	if strings.TrimSpace(req.Treatment) == "" ||
		strings.TrimSpace(req.Patient) == "" ||
		strings.TrimSpace(req.Date) == "" ||
		strings.TrimSpace(req.Slot) == "" {
		return nil, ErrValidation
	}

	b := &domain.Booking{
		Treatment:   req.Treatment,
		Patient:     req.Patient,
		PatientName: req.PatientName,
		Date:        req.Date,
		Slot:        req.Slot,
		Price:       req.Price,
	}

	err := s.bookings.Create(ctx, b)
	switch {
	case errors.Is(err, repository.ErrDuplicateAdmission):
		existing, ferr := s.bookings.FindByAdmissionKey(ctx, req.Treatment, req.Date, req.Patient)
		if ferr != nil {
			return nil, ferr
		}
		return &SubmitResult{Accepted: false, Booking: existing}, nil

	case errors.Is(err, repository.ErrDuplicateSlot):
		return nil, ErrSlotTaken

	case err != nil:
		return nil, err
	}

	// best-effort confirmation; failure never reaches the caller
	if s.notifs != nil {
		_ = s.notifs.NotifyBookingConfirmed(ctx, b.Patient, b.PatientName, b.Treatment, b.Date, b.Slot)
	}

	return &SubmitResult{Accepted: true, Booking: b}, nil
}

func (s *Service) ListForPatient(ctx context.Context, patient string) ([]domain.Booking, error) {
	return s.bookings.ListByPatient(ctx, patient)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}
