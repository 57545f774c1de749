package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/radenmas/socialite-api/pkg/helpers"
	"github.com/radenmas/socialite-api/pkg/response"
)

const CtxUserIDKey = "userID"

// Auth validates the X-Access-Token header and injects the token's subject
// into the Gin context as userID/userName.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-Access-Token")
		if token == "" {
			response.AbortFailure(c, http.StatusUnauthorized, "missing access token")
			return
		}
		claims, err := jwt.Verify(token)
		if err != nil {
			response.AbortFailure(c, http.StatusUnauthorized, "invalid access token")
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Set("userName", claims.Username)
		c.Next()
	}
}
