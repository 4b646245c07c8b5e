package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atendemei/painel/internal/pkg/response"
)

// SessionCookie carries the signed session token.
const SessionCookie = "session_token"

type Authenticator interface {
	Authenticated(token string) bool
}

// SessionAuth guards mutation endpoints. The token must parse, be unexpired
// and still exist server-side; anything else is a plain 401.
func SessionAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || !auth.Authenticated(token) {
			response.Error(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}
		c.Next()
	}
}
