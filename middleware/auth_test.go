package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booking/models"
	"booking/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeSessions struct {
	sessions map[string]*models.Session
}

func (f *fakeSessions) FindByToken(token string) (*models.Session, error) {
	return f.sessions[token], nil
}

func newAuthRouter(sessions *fakeSessions) (*gin.Engine, *uint) {
	var gotUserID uint
	router := gin.New()
	router.GET("/protected", AuthMiddleware(sessions), func(c *gin.Context) {
		gotUserID = c.MustGet("userID").(uint)
		c.Status(http.StatusOK)
	})
	return router, &gotUserID
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_NoHeader(t *testing.T) {
	router, _ := newAuthRouter(&fakeSessions{})

	w := doRequest(router, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router, _ := newAuthRouter(&fakeSessions{})

	w := doRequest(router, "Bearer khong.phai.token")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ValidTokenWithoutSession(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := services.GenerateToken(services.UserInfo{UserId: 7}, 60)
	require.NoError(t, err)

	// Token ký đúng nhưng session đã bị xóa (đã logout)
	router, _ := newAuthRouter(&fakeSessions{})

	w := doRequest(router, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ValidTokenWithSession(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := services.GenerateToken(services.UserInfo{UserId: 7}, 60)
	require.NoError(t, err)

	sessions := &fakeSessions{sessions: map[string]*models.Session{
		token: {ID: 1, UserID: 7, Token: token},
	}}
	router, gotUserID := newAuthRouter(sessions)

	w := doRequest(router, "Bearer "+token)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), *gotUserID)
}
