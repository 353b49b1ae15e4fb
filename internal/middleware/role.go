package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abir-25/doctors-portal-server/internal/pkg/response"
)

// RoleChecker looks up whether an email's stored record carries the admin
// role. Implemented by repository.UserRepository.
type RoleChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// AdminGate guards admin-only routes. Roles live in the store, not in the
// token, so promotion and demotion take effect on the next request.
type AdminGate struct {
	users RoleChecker
}

func NewAdminGate(users RoleChecker) *AdminGate {
	return &AdminGate{users: users}
}

// AdminOnly requires the authenticated email to hold the admin role. Any
// other role, and an absent user record, are rejected alike.
func (g *AdminGate) AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := AuthenticatedEmail(c)
		if email == "" {
			response.AbortError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			return
		}

		isAdmin, err := g.users.IsAdmin(c.Request.Context(), email)
		if err != nil {
			response.AbortError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Role lookup failed")
			return
		}
		if !isAdmin {
			response.AbortError(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			return
		}

		c.Next()
	}
}
