package middleware

import (
	"net/http"
	"strings"

	"IsletmeBulucu/utils"

	"github.com/gin-gonic/gin"
)

// ClientIDKey is the gin context key holding the authenticated client id.
const ClientIDKey = "clientId"

// TokenVerifier resolves a bearer token to a client id.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// AuthMiddleware requires a valid client token and stores its subject under
// ClientIDKey.
func AuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authorization token is required")
			return
		}

		clientID, err := verifier.Verify(strings.TrimSpace(token))
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		c.Set(ClientIDKey, clientID)
		c.Next()
	}
}
