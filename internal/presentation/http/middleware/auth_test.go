package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nexuspos/pos-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestRouter(t *testing.T, permissions []string) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	manager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	token, err := manager.GenerateAccessToken(uuid.New(), "till-1", "cashier", permissions)
	require.NoError(t, err)

	router := gin.New()
	protected := router.Group("", AuthMiddleware(manager))
	protected.GET("/open", func(c *gin.Context) { c.Status(http.StatusOK) })
	protected.GET("/gated", RequirePermission("sales.create"), func(c *gin.Context) { c.Status(http.StatusOK) })
	return router, token
}

func perform(router *gin.Engine, token string, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware_RejectsMissingOrBadToken(t *testing.T) {
	router, _ := newAuthTestRouter(t, nil)

	assert.Equal(t, http.StatusUnauthorized, perform(router, "", "/open").Code)
	assert.Equal(t, http.StatusUnauthorized, perform(router, "not-a-token", "/open").Code)
}

func TestAuthMiddleware_AcceptsValidToken(t *testing.T) {
	router, token := newAuthTestRouter(t, nil)

	assert.Equal(t, http.StatusOK, perform(router, token, "/open").Code)
}

func TestRequirePermission_ChecksCapabilitySlug(t *testing.T) {
	granted, grantedToken := newAuthTestRouter(t, []string{"sales.create", "sales.view"})
	assert.Equal(t, http.StatusOK, perform(granted, grantedToken, "/gated").Code)

	denied, deniedToken := newAuthTestRouter(t, []string{"sales.view"})
	assert.Equal(t, http.StatusForbidden, perform(denied, deniedToken, "/gated").Code)

	none, noneToken := newAuthTestRouter(t, nil)
	assert.Equal(t, http.StatusForbidden, perform(none, noneToken, "/gated").Code)
}
