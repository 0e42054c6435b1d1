package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"synergysphere/internal/pkg/config"
	"synergysphere/internal/pkg/jwt"
)

func newAuthedRouter(jwtMgr *jwt.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(jwtMgr), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": CurrentUserID(c)})
	})
	return r
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	jwtMgr := jwt.NewManager(&config.JWTConfig{Secret: "test", TokenExpire: 3600})
	r := newAuthedRouter(jwtMgr)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	jwtMgr := jwt.NewManager(&config.JWTConfig{Secret: "test", TokenExpire: 3600})
	r := newAuthedRouter(jwtMgr)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc123")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	jwtMgr := jwt.NewManager(&config.JWTConfig{Secret: "test", TokenExpire: 3600})
	r := newAuthedRouter(jwtMgr)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	jwtMgr := jwt.NewManager(&config.JWTConfig{Secret: "test", TokenExpire: 3600})
	r := newAuthedRouter(jwtMgr)

	token, err := jwtMgr.GenerateToken("user-42", "alice@example.com", "Alice")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-42")
}
