package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/interfaces/http/middleware"
	"github.com/crowdwaveeu-gif/crowdwave-crm/pkg/jwt"
)

func authRouter(jwtService *jwt.JWTService, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append([]gin.HandlerFunc{middleware.AuthMiddleware(jwtService)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		email, _ := middleware.GetUserEmail(c)
		role, _ := middleware.GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"id": id, "email": email, "role": role})
	})
	r.GET("/protected", handlers...)
	return r
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	jwtService := jwt.NewJWTService("secret", time.Hour, time.Hour)
	r := authRouter(jwtService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_BadScheme(t *testing.T) {
	jwtService := jwt.NewJWTService("secret", time.Hour, time.Hour)
	r := authRouter(jwtService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	jwtService := jwt.NewJWTService("secret", time.Hour, time.Hour)
	r := authRouter(jwtService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	jwtService := jwt.NewJWTService("secret", -time.Hour, -time.Hour)
	pair, err := jwtService.GenerateTokenPair(uuid.New(), "admin@crowdwave.eu", "admin")
	assert.NoError(t, err)

	r := authRouter(jwtService)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "expired")
}

func TestAuthMiddleware_ValidTokenPopulatesContext(t *testing.T) {
	jwtService := jwt.NewJWTService("secret", time.Hour, time.Hour)
	userID := uuid.New()
	pair, err := jwtService.GenerateTokenPair(userID, "admin@crowdwave.eu", "admin")
	assert.NoError(t, err)

	r := authRouter(jwtService)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
	assert.Contains(t, w.Body.String(), "admin@crowdwave.eu")
}

func TestRequireAdmin_ForbidsNonAdmin(t *testing.T) {
	jwtService := jwt.NewJWTService("secret", time.Hour, time.Hour)
	pair, err := jwtService.GenerateTokenPair(uuid.New(), "sender@mail.com", "sender")
	assert.NoError(t, err)

	r := authRouter(jwtService, middleware.RequireAdmin())
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	jwtService := jwt.NewJWTService("secret", time.Hour, time.Hour)
	pair, err := jwtService.GenerateTokenPair(uuid.New(), "admin@crowdwave.eu", "admin")
	assert.NoError(t, err)

	r := authRouter(jwtService, middleware.RequireAdmin())
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
