package user

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

// RegisterPublicRoutes mounts the credential-free endpoints: the admin-check
// probe, the signup upsert and token issuance.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/users/admin/:email", h.CheckAdmin)
	rg.PUT("/user/:email", h.UpsertUser)
	rg.GET("/jwt", h.IssueToken)
}

// RegisterAdminRoutes mounts the endpoints behind JWTAuth + AdminOnly.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/users", h.ListUsers)
	rg.PUT("/user/admin/:id", h.PromoteUser)
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load users")
		return
	}
	response.Success(c, http.StatusOK, users)
}

func (h *Handler) CheckAdmin(c *gin.Context) {
	isAdmin, err := h.service.IsAdmin(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to check role")
		return
	}
	response.Success(c, http.StatusOK, AdminCheckResponse{IsAdmin: isAdmin})
}

func (h *Handler) PromoteUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid user id")
		return
	}

	if err := h.service.Promote(c.Request.Context(), id); err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to promote user")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"modified": true})
}

func (h *Handler) UpsertUser(c *gin.Context) {
	var req UpsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	u, err := h.service.Upsert(c.Request.Context(), c.Param("email"), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to upsert user")
		return
	}
	response.Success(c, http.StatusOK, u)
}

func (h *Handler) IssueToken(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing email query parameter")
		return
	}

	token, err := h.service.IssueToken(c.Request.Context(), email)
	if err != nil {
		if err == ErrUnknownUser {
			c.JSON(http.StatusForbidden, gin.H{
				"success":     false,
				"accessToken": "",
			})
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to issue token")
		return
	}
	response.Success(c, http.StatusOK, TokenResponse{AccessToken: token})
}
