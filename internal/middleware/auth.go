package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/delivery-insights-go/internal/auth"
	"github.com/jengzang/delivery-insights-go/pkg/response"
)

// ClaimsKey is the gin context key holding verified token claims
const ClaimsKey = "claims"

// Auth requires a valid "Authorization: Bearer <token>" header
func Auth(tokens auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			response.Unauthorized(c, "Missing bearer token")
			return
		}

		claims, err := tokens.Parse(strings.TrimSpace(token))
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}
