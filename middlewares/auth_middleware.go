// middlewares/auth_middleware.go
package middlewares

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/PoojaSancheti/Low-PocEat/config"
	"github.com/PoojaSancheti/Low-PocEat/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware requires a Bearer JWT whose sid claim points at a live
// session row. A deleted (logged-out) or expired session rejects the
// token even when its signature is still valid. Rejections carry the
// login path plus the attempted path so clients can continue after
// authenticating.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortToLogin(c, "Authorization header required")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		secret := []byte(os.Getenv("JWT_SECRET"))
		if len(secret) == 0 {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "server misconfigured: JWT_SECRET not set"})
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			abortToLogin(c, "invalid token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortToLogin(c, "invalid claims")
			return
		}

		sid, _ := claims["sid"].(string)
		if sid == "" {
			abortToLogin(c, "session claim missing")
			return
		}

		var session models.Session
		if err := config.DB.Where("token = ?", sid).First(&session).Error; err != nil {
			abortToLogin(c, "session expired or logged out")
			return
		}
		if time.Now().After(session.ExpiresAt) {
			abortToLogin(c, "session expired or logged out")
			return
		}

		var user models.User
		if err := config.DB.First(&user, session.UserID).Error; err != nil {
			abortToLogin(c, "user not found")
			return
		}

		c.Set("userID", user.ID)
		c.Set("username", user.Username)
		c.Set("sessionToken", sid)

		c.Next()
	}
}

func abortToLogin(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": msg,
		"login": "/auth/login",
		"next":  c.Request.URL.RequestURI(),
	})
}
