package doctor

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/abir-25/doctors-portal-server/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the roster CRUD; the whole group sits behind
// JWTAuth + AdminOnly.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/doctors", h.CreateDoctor)
	rg.GET("/doctors", h.ListDoctors)
	rg.DELETE("/doctors/:id", h.DeleteDoctor)
}

func (h *Handler) CreateDoctor(c *gin.Context) {
	var req CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Name, email and specialty are required")
		return
	}

	d, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to add doctor")
		return
	}
	response.Success(c, http.StatusCreated, d)
}

func (h *Handler) ListDoctors(c *gin.Context) {
	doctors, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load doctors")
		return
	}
	response.Success(c, http.StatusOK, doctors)
}

func (h *Handler) DeleteDoctor(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid doctor id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Doctor not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete doctor")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
