package domain

import "time"

// DateLayout is the wire format for booking dates, e.g. "Jan 1, 2023".
// Dates are treated as opaque comparable keys everywhere except the
// availability default, which renders today in this layout.
const DateLayout = "Jan 2, 2006"

// Booking admission is serialized by two named unique indexes rather than a
// read-then-write check:
//
//	idx_booking_admission_key (treatment, date, patient) — idempotency key
//	idx_booking_slot_key      (treatment, date, slot)    — one patient per slot
type Booking struct {
	ID            int64     `json:"_id"`
	Treatment     string    `json:"treatment" gorm:"uniqueIndex:idx_booking_admission_key;uniqueIndex:idx_booking_slot_key" validate:"required"`
	Patient       string    `json:"patient" gorm:"uniqueIndex:idx_booking_admission_key" validate:"required,email"`
	PatientName   string    `json:"patientName,omitempty"`
	Date          string    `json:"date" gorm:"uniqueIndex:idx_booking_admission_key;uniqueIndex:idx_booking_slot_key" validate:"required"`
	Slot          string    `json:"slot" gorm:"uniqueIndex:idx_booking_slot_key" validate:"required"`
	Price         float64   `json:"price"`
	Paid          bool      `json:"paid"`
	TransactionID string    `json:"transactionId,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
