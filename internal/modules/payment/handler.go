package payment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abir-25/doctors-portal-server/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/create-payment-intent", h.CreateIntent)
	rg.POST("/payments", h.RecordPayment)
}

func (h *Handler) CreateIntent(c *gin.Context) {
	var req CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "A positive price is required")
		return
	}

	clientSecret, err := h.service.CreateIntent(c.Request.Context(), req.Price)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create payment intent")
		return
	}
	response.Success(c, http.StatusOK, IntentResponse{ClientSecret: clientSecret})
}

func (h *Handler) RecordPayment(c *gin.Context) {
	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "bookingId and transactionId are required")
		return
	}

	p, booking, err := h.service.Reconcile(c.Request.Context(), req)
	if err != nil {
		if err == ErrBookingNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Referenced booking not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to record payment")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"payment": p,
		"booking": booking,
	})
}
