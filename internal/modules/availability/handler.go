package availability

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
	rg.GET("/available", h.GetAvailable)
}

func (h *Handler) GetAvailable(c *gin.Context) {
	services, err := h.service.ForDate(c.Request.Context(), c.Query("date"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute availability")
		return
	}
	response.Success(c, http.StatusOK, services)
}
