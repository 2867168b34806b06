package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/wavehouse/studio-booking/internal/httperr"
)

const (
	ContextAdmin = "admin"
	RoleAdmin    = "admin"
)

// AdminAuth accepts HS256 tokens carrying role=admin.
func AdminAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Authorization header is required.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Expected a bearer token.")
			c.Abort()
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			httperr.Unauthorized(c, "invalid_token", "Token is invalid or expired.")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			httperr.Unauthorized(c, "invalid_token_claims", "Token is invalid or expired.")
			c.Abort()
			return
		}

		subject, _ := claims["sub"].(string)
		role, _ := claims["role"].(string)
		if subject == "" || role != RoleAdmin {
			httperr.Unauthorized(c, "invalid_token_payload", "Token is not an admin token.")
			c.Abort()
			return
		}

		c.Set(ContextAdmin, subject)
		c.Next()
	}
}

// Actor names who is calling, for audit records.
func Actor(c *gin.Context) string {
	if admin := c.GetString(ContextAdmin); admin != "" {
		return admin
	}
	return "anonymous"
}
