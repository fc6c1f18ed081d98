// Package router wires the HTTP routes of the API.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authentity "tienda_backend/internal/feature/auth/domain/entity"
	authhandler "tienda_backend/internal/feature/auth/transport/handler"
	producthandler "tienda_backend/internal/feature/product/transport/handler"
	platformhandler "tienda_backend/internal/platform/http/handler"
	jwtmw "tienda_backend/internal/platform/jwt"
)

// bodyLimit caps JSON bodies, product images travel base64-encoded.
const bodyLimit = 5 << 20

// NewRouter builds the gin engine with every route of the API.
func NewRouter(auth *authhandler.AuthHandler, products *producthandler.ProductHandler,
	tokens *jwtmw.Manager, apiKey string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.Default())
	r.Use(MaxBodyBytes(bodyLimit))

	// Uptime check, reachable without the internal api key.
	r.GET("/api/status", platformhandler.Status)
	r.HEAD("/api/status", platformhandler.Status)

	api := r.Group("/api", APIKeyRequired(apiKey))

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", auth.Register)
		authGroup.GET("/verify/:verification_token", auth.VerifyEmail)
		authGroup.POST("/login", auth.Login)
		authGroup.POST("/forgot-password", auth.ForgotPassword)
		authGroup.PUT("/reset-password/:reset_token", auth.ResetPassword)
	}

	productGroup := api.Group("/products", jwtmw.AuthRequired(tokens))
	{
		productGroup.GET("", products.List)
		productGroup.GET("/:id", products.Get)
		productGroup.POST("", products.Create)
		productGroup.PUT("/:id", products.Update)
		productGroup.DELETE("/:id", jwtmw.RequireRole(authentity.RoleAdmin), products.Delete)
	}

	return r
}
