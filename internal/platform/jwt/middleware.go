package jwtmw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tienda_backend/internal/shared/response"
)

// Context keys set by AuthRequired for downstream handlers.
const (
	ContextUserID    = "userID"
	ContextUserEmail = "userEmail"
	ContextUserRole  = "userRole"
)

// AuthRequired returns a gin middleware that validates the bearer session
// token and stores the caller's identity in the request context.
func AuthRequired(m *Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			response.Detail(c, http.StatusUnauthorized, "No autorizado", "Falta el token de sesion")
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		claims, err := m.VerifySessionToken(tokenStr)
		if err != nil {
			response.Detail(c, http.StatusUnauthorized, "No autorizado", "El token de sesion no es valido")
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.Subject)
		c.Set(ContextUserEmail, claims.Email)
		c.Set(ContextUserRole, claims.Role)
		c.Next()
	}
}

// RequireRole returns a gin middleware that rejects callers whose session
// role differs from required. It must run after AuthRequired.
func RequireRole(required string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextUserRole)
		if role == "" {
			response.Detail(c, http.StatusUnauthorized, "No autorizado", "Falta el contexto de identidad")
			c.Abort()
			return
		}
		if role != required {
			response.Detail(c, http.StatusForbidden, "Prohibido", "No tenes permisos para esta operacion")
			c.Abort()
			return
		}
		c.Next()
	}
}
