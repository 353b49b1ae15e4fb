package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeRoleChecker struct {
	admins map[string]bool
	err    error
}

func (f fakeRoleChecker) IsAdmin(_ context.Context, email string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.admins[email], nil
}

func adminTestRouter(checker RoleChecker, email string) *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if email != "" {
			c.Set(ContextEmailKey, email)
		}
	})
	router.Use(NewAdminGate(checker).AdminOnly())
	router.GET("/admin", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestAdminOnly_AdminAllowed(t *testing.T) {
	router := adminTestRouter(fakeRoleChecker{admins: map[string]bool{"admin@x.com": true}}, "admin@x.com")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/admin", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminOnly_NonAdminForbidden(t *testing.T) {
	router := adminTestRouter(fakeRoleChecker{admins: map[string]bool{}}, "user@x.com")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/admin", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "FORBIDDEN")
}

func TestAdminOnly_AbsentUserRecordForbidden(t *testing.T) {
	// no record at all behaves exactly like a non-admin role
	router := adminTestRouter(fakeRoleChecker{admins: map[string]bool{}}, "ghost@x.com")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/admin", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminOnly_NoAuthenticatedEmail(t *testing.T) {
	router := adminTestRouter(fakeRoleChecker{}, "")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/admin", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminOnly_LookupFailure(t *testing.T) {
	router := adminTestRouter(fakeRoleChecker{err: errors.New("connection refused")}, "admin@x.com")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/admin", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
