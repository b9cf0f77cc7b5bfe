package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tourmuse/pkg/utils"
)

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

// SessionMiddleware attaches identity when a valid token is present but lets
// anonymous requests through. The planning form is open to everyone;
// authentication is a side-gate on trip creation, not a precondition for
// filling the form.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := &Session{}
		if token := bearerToken(c); token != "" {
			if claims, err := utils.ValidateToken(token); err == nil {
				session = &Session{
					UserID:        claims.UserID,
					Name:          claims.Name,
					Email:         claims.Email,
					Authenticated: true,
				}
			}
		}
		setSession(c, session)
		c.Next()
	}
}

// JWTAuthMiddleware rejects requests without a valid token.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(token)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		setSession(c, &Session{
			UserID:        claims.UserID,
			Name:          claims.Name,
			Email:         claims.Email,
			Authenticated: true,
		})
		c.Next()
	}
}
