package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/abir-25/doctors-portal-server/internal/domain"
)

// Admission conflicts are surfaced as sentinels so the service layer can
// tell "same patient rebooked" from "slot grabbed by someone else".
var (
	ErrDuplicateAdmission = errors.New("booking already exists for this treatment, date and patient")
	ErrDuplicateSlot      = errors.New("slot already booked for this treatment and date")
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	Treatment     string    `gorm:"column:treatment"`
	Patient       string    `gorm:"column:patient"`
	PatientName   *string   `gorm:"column:patient_name"`
	Date          string    `gorm:"column:date"`
	Slot          string    `gorm:"column:slot"`
	Price         float64   `gorm:"column:price"`
	Paid          bool      `gorm:"column:paid"`
	TransactionID *string   `gorm:"column:transaction_id"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var name, txID string
	if m.PatientName != nil {
		name = *m.PatientName
	}
	if m.TransactionID != nil {
		txID = *m.TransactionID
	}

	return &domain.Booking{
		ID:            m.ID,
		Treatment:     m.Treatment,
		Patient:       m.Patient,
		PatientName:   name,
		Date:          m.Date,
		Slot:          m.Slot,
		Price:         m.Price,
		Paid:          m.Paid,
		TransactionID: txID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var name, txID *string
	if b.PatientName != "" {
		v := b.PatientName
		name = &v
	}
	if b.TransactionID != "" {
		v := b.TransactionID
		txID = &v
	}

	return bookingModel{
		ID:            b.ID,
		Treatment:     b.Treatment,
		Patient:       strings.TrimSpace(strings.ToLower(b.Patient)),
		PatientName:   name,
		Date:          b.Date,
		Slot:          b.Slot,
		Price:         b.Price,
		Paid:          b.Paid,
		TransactionID: txID,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// Create is the conditional insert behind booking admission. The unique
// indexes on the bookings table do the serialization; a violation comes back
// as one of the sentinel errors above.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return classifyBookingConflict(tx.Error)
	}
	*b = *toDomainBooking(m)
	return nil
}

func classifyBookingConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "idx_booking_admission_key":
			return ErrDuplicateAdmission
		case "idx_booking_slot_key":
			return ErrDuplicateSlot
		}
		return err
	}

	// sqlite reports the violated columns in the message
	msg := err.Error()
	if strings.Contains(msg, "UNIQUE constraint failed") {
		if strings.Contains(msg, "bookings.patient") {
			return ErrDuplicateAdmission
		}
		if strings.Contains(msg, "bookings.slot") {
			return ErrDuplicateSlot
		}
	}
	return err
}

func (r *BookingRepository) FindByAdmissionKey(ctx context.Context, treatment, date, patient string) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).
		Where("treatment = ? AND date = ? AND patient = ?", treatment, date, strings.TrimSpace(strings.ToLower(patient))).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) ListByPatient(ctx context.Context, patient string) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Where("patient = ?", strings.TrimSpace(strings.ToLower(patient))).
		Order("id").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) ListByDate(ctx context.Context, date string) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).Where("date = ?", date).Order("id").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}
