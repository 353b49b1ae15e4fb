package booking

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/abir-25/doctors-portal-server/internal/middleware"
	"github.com/abir-25/doctors-portal-server/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the endpoints that take no credential.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/booking", h.CreateBooking)
	rg.GET("/bookings/:id", h.GetBooking)
}

// RegisterProtectedRoutes mounts the endpoints behind JWTAuth.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/booking", h.ListMyBookings)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Treatment, patient, date and slot are required")
		case ErrSlotTaken:
			response.Error(c, http.StatusConflict, "SLOT_TAKEN", "Slot is already booked for this treatment and date")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
		}
		return
	}

	// The duplicate case keeps its historical shape: success=false plus the
	// originally stored booking, as a 200. It is not an error.
	if !result.Accepted {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"booking": result.Booking,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"booking": result.Booking,
	})
}

// ListMyBookings is self-match guarded: the patient query parameter must
// equal the authenticated email exactly.
func (h *Handler) ListMyBookings(c *gin.Context) {
	patient := c.Query("patient")
	if patient == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing patient query parameter")
		return
	}

	email := middleware.AuthenticatedEmail(c)
	if !strings.EqualFold(patient, email) {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Forbidden access")
		return
	}

	bookings, err := h.service.ListForPatient(c.Request.Context(), patient)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load bookings")
		return
	}
	response.Success(c, http.StatusOK, bookings)
}

func (h *Handler) GetBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking id")
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load booking")
		return
	}
	response.Success(c, http.StatusOK, b)
}
