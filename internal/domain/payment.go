package domain

import "time"

// Payment is immutable once inserted. Reconciliation writes the payment and
// flips the referenced booking to paid in a single transaction.
type Payment struct {
	ID            int64     `json:"_id"`
	BookingID     int64     `json:"bookingId" validate:"required"`
	Patient       string    `json:"patient"`
	TransactionID string    `json:"transactionId" validate:"required"`
	Amount        float64   `json:"amount"`
	CreatedAt     time.Time `json:"created_at"`
}
