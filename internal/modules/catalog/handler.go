package catalog

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
	rg.GET("/service", h.ListServices)
	rg.GET("/appointmentSpecialty", h.ListSpecialties)
}

func (h *Handler) ListServices(c *gin.Context) {
	services, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load services")
		return
	}
	response.Success(c, http.StatusOK, services)
}

func (h *Handler) ListSpecialties(c *gin.Context) {
	specialties, err := h.service.Specialties(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load specialties")
		return
	}
	response.Success(c, http.StatusOK, specialties)
}
