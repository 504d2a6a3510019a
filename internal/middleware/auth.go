package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/BDF-Tech/BDF-Mobile/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware creates a Gin middleware handler that validates JWT bearer
// tokens and stores the portal user (token subject) in the request context.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "unauthorized", "message": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "unauthorized", "message": "Authorization header format must be Bearer {token}"})
			return
		}

		claims, err := utils.ParseAndValidateJWT(parts[1], jwtSecret)
		if err != nil {
			logger.Warn("Invalid token", "error", err)
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "unauthorized", "message": msg})
			return
		}

		portalUser := claims.Subject
		if portalUser == "" {
			logger.Error("Subject missing from valid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "unauthorized", "message": "Invalid token claims"})
			return
		}

		ctxWithUser := context.WithValue(c.Request.Context(), portalUserKey, portalUser)
		enrichedLogger := logger.With(slog.String("portal_user", portalUser))
		c.Request = c.Request.WithContext(context.WithValue(ctxWithUser, loggerCtxKey, enrichedLogger))

		c.Next()
	}
}
