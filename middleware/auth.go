package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"booking/models"
	"booking/response"
	"booking/services"
)

// SessionFinder tra cứu session theo token
type SessionFinder interface {
	FindByToken(token string) (*models.Session, error)
}

// AuthMiddleware xử lý authentication: token phải hợp lệ và còn session
func AuthMiddleware(sessions SessionFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, err := services.GetUserIDFromToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// Token ký đúng nhưng đã logout thì không còn session
		session, err := sessions.FindByToken(tokenString)
		if err != nil || session == nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// Lưu thông tin user vào context
		c.Set("userID", userID)
		c.Set("token", tokenString)
		c.Next()
	}
}
