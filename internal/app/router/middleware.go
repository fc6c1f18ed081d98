package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tienda_backend/internal/shared/response"
)

// MaxBodyBytes caps the request body size. Product images travel as
// base64 inside the JSON body, so the cap has to leave room for them.
func MaxBodyBytes(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}

// APIKeyRequired rejects requests that do not carry the internal API key.
// When no key is configured the check is disabled.
func APIKeyRequired(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			c.Next()
			return
		}
		if c.GetHeader("x-api-key") != apiKey {
			response.Detail(c, http.StatusUnauthorized, "Unauthorized", "Falta la api key o es invalida")
			c.Abort()
			return
		}
		c.Next()
	}
}
