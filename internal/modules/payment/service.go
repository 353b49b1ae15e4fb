package payment

import (
	"context"
	"errors"
	"math"

	"github.com/abir-25/doctors-portal-server/internal/domain"
	"github.com/abir-25/doctors-portal-server/internal/repository"
)

type Service struct {
	payments PaymentRepository
	gateway  IntentCreator
}

func NewService(payments PaymentRepository, gateway IntentCreator) *Service {
	return &Service{payments: payments, gateway: gateway}
}

// CreateIntent asks the gateway for a payment intent over the booking price.
// Prices are dollars on the wire, cents at the gateway.
func (s *Service) CreateIntent(ctx context.Context, price float64) (string, error) {
	cents := int64(math.Round(price * 100))
	intent, err := s.gateway.CreateIntent(ctx, cents, "usd")
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}

// Reconcile records the payment and flips the referenced booking to paid.
// The repository runs both writes in one transaction, so a missing booking
// leaves no orphaned payment behind.
func (s *Service) Reconcile(ctx context.Context, req RecordPaymentRequest) (*domain.Payment, *domain.Booking, error) {
	p := &domain.Payment{
		BookingID:     req.BookingID,
		Patient:       req.Patient,
		TransactionID: req.TransactionID,
		Amount:        req.Amount,
	}

	booking, err := s.payments.Reconcile(ctx, p)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, nil, ErrBookingNotFound
		}
		return nil, nil, err
	}
	return p, booking, nil
}
