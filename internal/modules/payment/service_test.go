package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/abir-25/doctors-portal-server/internal/domain"
	"github.com/abir-25/doctors-portal-server/internal/repository"
)

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Reconcile(ctx context.Context, p *domain.Payment) (*domain.Booking, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	if args.Error(1) == nil && p != nil {
		p.ID = 77
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type MockIntentCreator struct {
	mock.Mock
}

func (m *MockIntentCreator) CreateIntent(ctx context.Context, amountCents int64, currency string) (*Intent, error) {
	args := m.Called(ctx, amountCents, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Intent), args.Error(1)
}

func TestService_CreateIntent_ConvertsToCents(t *testing.T) {
	repo := new(MockPaymentRepository)
	gateway := new(MockIntentCreator)
	svc := NewService(repo, gateway)

	gateway.On("CreateIntent", mock.Anything, int64(9950), "usd").
		Return(&Intent{ID: "pi_1", ClientSecret: "pi_1_secret"}, nil)

	secret, err := svc.CreateIntent(context.Background(), 99.50)

	assert.NoError(t, err)
	assert.Equal(t, "pi_1_secret", secret)
	gateway.AssertExpectations(t)
}

func TestService_Reconcile_MarksBookingPaid(t *testing.T) {
	repo := new(MockPaymentRepository)
	svc := NewService(repo, new(MockIntentCreator))

	paidBooking := &domain.Booking{ID: 12, Paid: true, TransactionID: "tx_abc"}
	repo.On("Reconcile", mock.Anything, mock.MatchedBy(func(p *domain.Payment) bool {
		return p.BookingID == 12 && p.TransactionID == "tx_abc"
	})).Return(paidBooking, nil)

	p, booking, err := svc.Reconcile(context.Background(), RecordPaymentRequest{
		BookingID:     12,
		TransactionID: "tx_abc",
		Amount:        60,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(77), p.ID)
	assert.True(t, booking.Paid)
	assert.Equal(t, "tx_abc", booking.TransactionID)
}

func TestService_Reconcile_MissingBooking(t *testing.T) {
	repo := new(MockPaymentRepository)
	svc := NewService(repo, new(MockIntentCreator))

	repo.On("Reconcile", mock.Anything, mock.Anything).Return(nil, repository.ErrBookingNotFound)

	_, _, err := svc.Reconcile(context.Background(), RecordPaymentRequest{
		BookingID:     404,
		TransactionID: "tx_abc",
	})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_Reconcile_StoreFailure(t *testing.T) {
	repo := new(MockPaymentRepository)
	svc := NewService(repo, new(MockIntentCreator))

	repo.On("Reconcile", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	_, _, err := svc.Reconcile(context.Background(), RecordPaymentRequest{BookingID: 1, TransactionID: "t"})

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrBookingNotFound)
}
