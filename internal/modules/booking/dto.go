package booking

type CreateBookingRequest struct {
	Treatment   string  `json:"treatment" binding:"required"`
	Patient     string  `json:"patient" binding:"required,email"`
	PatientName string  `json:"patientName"`
	Date        string  `json:"date" binding:"required"`
	Slot        string  `json:"slot" binding:"required"`
	Price       float64 `json:"price"`
}
