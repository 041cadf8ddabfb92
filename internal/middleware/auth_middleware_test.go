package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cabanes/backstage/internal/pkg/auth"
)

func protectedRouter(jwtService *auth.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/staff/student/add", NewAuthMiddleware(jwtService).JWTAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"staffID": c.MustGet(ContextStaffID),
			"email":   c.MustGet(ContextEmail),
		})
	})
	return router
}

func TestJWTAuthRejectsMissingHeader(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "s", AccessTokenExp: time.Hour, TokenIssuer: "t"})
	router := protectedRouter(jwtService)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/staff/student/add", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "authentication required")
}

func TestJWTAuthRejectsGarbageToken(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "s", AccessTokenExp: time.Hour, TokenIssuer: "t"})
	router := protectedRouter(jwtService)

	req := httptest.NewRequest(http.MethodPost, "/staff/student/add", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid token")
}

func TestJWTAuthRejectsExpiredToken(t *testing.T) {
	expired := auth.NewJWTService(auth.JWTConfig{SecretKey: "s", AccessTokenExp: -time.Hour, TokenIssuer: "t"})
	token, _, err := expired.GenerateToken(7, "sm@example.edu")
	require.NoError(t, err)

	router := protectedRouter(expired)
	req := httptest.NewRequest(http.MethodPost, "/staff/student/add", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "token expired")
}

func TestJWTAuthSetsStaffIdentity(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "s", AccessTokenExp: time.Hour, TokenIssuer: "t"})
	token, _, err := jwtService.GenerateToken(7, "sm@example.edu")
	require.NoError(t, err)

	router := protectedRouter(jwtService)
	req := httptest.NewRequest(http.MethodPost, "/staff/student/add", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"staffID":7`)
	assert.Contains(t, w.Body.String(), "sm@example.edu")
}
