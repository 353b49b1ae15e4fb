package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/abir-25/doctors-portal-server/internal/domain"
)

// ErrBookingNotFound aborts a reconcile whose payment references a booking
// that does not exist.
var ErrBookingNotFound = errors.New("referenced booking not found")

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

type paymentModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	BookingID     int64     `gorm:"column:booking_id"`
	Patient       string    `gorm:"column:patient"`
	TransactionID string    `gorm:"column:transaction_id"`
	Amount        float64   `gorm:"column:amount"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (paymentModel) TableName() string { return "payments" }

func toDomainPayment(m paymentModel) *domain.Payment {
	return &domain.Payment{
		ID:            m.ID,
		BookingID:     m.BookingID,
		Patient:       m.Patient,
		TransactionID: m.TransactionID,
		Amount:        m.Amount,
		CreatedAt:     m.CreatedAt,
	}
}

// Reconcile stores the payment and marks the referenced booking paid in one
// transaction. Either both writes land or neither does. The paid flag only
// ever moves false -> true here; nothing clears it.
func (r *PaymentRepository) Reconcile(ctx context.Context, p *domain.Payment) (*domain.Booking, error) {
	var booking *domain.Booking

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := paymentModel{
			BookingID:     p.BookingID,
			Patient:       p.Patient,
			TransactionID: p.TransactionID,
			Amount:        p.Amount,
		}
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		*p = *toDomainPayment(m)

		res := tx.Model(&bookingModel{}).
			Where("id = ?", p.BookingID).
			Updates(map[string]any{
				"paid":           true,
				"transaction_id": p.TransactionID,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrBookingNotFound
		}

		var bm bookingModel
		if err := tx.First(&bm, p.BookingID).Error; err != nil {
			return err
		}
		booking = toDomainBooking(bm)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

func (r *PaymentRepository) GetByBookingID(ctx context.Context, bookingID int64) (*domain.Payment, error) {
	var m paymentModel
	tx := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainPayment(m), nil
}
