//go:build unit

package middleware_test

import (
	"log/slog"
	"net/http"
	"testing"
	"time"

	"floorplan-service/internal/domain/user"
	"floorplan-service/internal/handler/middleware"
	"floorplan-service/internal/pkg/config"
	"floorplan-service/internal/pkg/jwt"
	"floorplan-service/internal/usecase"
	"floorplan-service/tests/common/authtest"
	"floorplan-service/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *authtest.JWTHelper) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig().JWT
	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(jwt.NewService(cfg.Secret, time.Hour, jwt.WithIssuer(cfg.Issuer))))

	r := gin.New()
	r.Use(middleware.ErrorHandler(slog.New(slog.DiscardHandler)))
	protected := r.Group("/", auth.RequireAuth())
	protected.GET("/whoami", func(c *gin.Context) {
		p, ok := middleware.GetPrincipal(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"userId": p.UserID, "role": p.Role})
	})
	protected.POST("/operate", auth.RequireRoleAtLeast(user.RoleOperator), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r, authtest.NewJWTHelper(cfg)
}

func TestRequireAuth(t *testing.T) {
	r, tokens := newAuthRouter(t)
	userID := uuid.New()

	t.Run("valid token sets the principal", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/whoami", nil, tokens.GenerateToken(t, userID, user.RoleViewer))

		var body struct {
			UserID uuid.UUID `json:"userId"`
			Role   string    `json:"role"`
		}
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, userID, body.UserID)
		assert.Equal(t, "viewer", body.Role)
	})

	t.Run("missing token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/whoami", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("non-bearer scheme", func(t *testing.T) {
		rec := httptest.PerformRequestWithHeaders(t, r, http.MethodGet, "/whoami", nil, "",
			map[string]string{"Authorization": "Basic dXNlcjpwYXNz"})
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("expired token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/whoami", nil, tokens.CreateExpiredToken(t, userID, user.RoleAdmin))
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/whoami", nil, "not.a.jwt")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func TestRequireRoleAtLeast(t *testing.T) {
	r, tokens := newAuthRouter(t)

	cases := []struct {
		role       user.Role
		expectCode int
	}{
		{role: user.RoleViewer, expectCode: http.StatusForbidden},
		{role: user.RoleOperator, expectCode: http.StatusNoContent},
		{role: user.RoleAdmin, expectCode: http.StatusNoContent},
	}
	for _, tc := range cases {
		t.Run(tc.role.String(), func(t *testing.T) {
			rec := httptest.PerformRequest(t, r, http.MethodPost, "/operate", nil, tokens.GenerateToken(t, uuid.New(), tc.role))
			assert.Equal(t, tc.expectCode, rec.Code)
		})
	}
}
