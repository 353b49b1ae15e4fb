package payment

type CreateIntentRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

type IntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type RecordPaymentRequest struct {
	BookingID     int64   `json:"bookingId" binding:"required"`
	Patient       string  `json:"patient"`
	TransactionID string  `json:"transactionId" binding:"required"`
	Amount        float64 `json:"amount"`
}
