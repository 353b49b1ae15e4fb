package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	jwtsvc "github.com/abir-25/doctors-portal-server/internal/pkg/jwt"
	"github.com/abir-25/doctors-portal-server/internal/pkg/response"
)

// ContextEmailKey is where JWTAuth stores the authenticated email.
const ContextEmailKey = "email"

// JWTAuth authenticates the bearer credential. A missing credential is
// unauthenticated (401); a credential that is present but malformed, signed
// wrong or expired is forbidden (403). The two outcomes stay distinct.
func JWTAuth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.AbortError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing Authorization header")
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			response.AbortError(c, http.StatusForbidden, "FORBIDDEN", "Invalid Authorization header")
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.AbortError(c, http.StatusForbidden, "FORBIDDEN", "Empty token")
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.AbortError(c, http.StatusForbidden, "FORBIDDEN", "Invalid token")
			return
		}

		c.Set(ContextEmailKey, claims.Email)

		c.Next()
	}
}

// AuthenticatedEmail returns the email JWTAuth stored for this request.
func AuthenticatedEmail(c *gin.Context) string {
	return c.GetString(ContextEmailKey)
}
