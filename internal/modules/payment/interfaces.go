package payment

import (
	"context"

	"github.com/abir-25/doctors-portal-server/internal/domain"
)

// PaymentRepository persists payments. Reconcile must be atomic: payment
// insert plus booking paid-update in one transaction.
type PaymentRepository interface {
	Reconcile(ctx context.Context, p *domain.Payment) (*domain.Booking, error)
}

// IntentCreator talks to the payment gateway.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amountCents int64, currency string) (*Intent, error)
}

// Intent is what the gateway hands back for a created payment intent.
type Intent struct {
	ID           string
	ClientSecret string
}
