// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"tienda_backend/internal/feature/auth/domain"
	"tienda_backend/internal/feature/auth/domain/entity"
	"tienda_backend/internal/feature/auth/transport/http/dto"
	"tienda_backend/internal/shared/response"
)

// AuthUsecase defines the auth operations consumed by this handler.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type AuthUsecase interface {
	Register(ctx context.Context, name, email, password string) error
	VerifyEmail(ctx context.Context, token string) error
	Login(ctx context.Context, email, password string) (string, *entity.User, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// AuthHandler handles the HTTP requests of the auth flows and translates
// domain errors into the response envelope. User-facing messages stay in
// Spanish; operational detail goes to the structured log only.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, "Bad request", "El cuerpo de la peticion no es un JSON valido")
		return
	}

	err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		var vErr *domain.ValidationError
		switch {
		case errors.As(err, &vErr):
			response.FieldErrors(c, http.StatusBadRequest, "Bad request", map[string]string{vErr.Field: vErr.Message})
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			response.FieldErrors(c, http.StatusBadRequest, "Bad request", map[string]string{"email": "El email ya esta en uso"})
		case errors.Is(err, domain.ErrNotificationFailed):
			slog.Error("verification email send failed", "email", req.Email, "error", err)
			response.Detail(c, http.StatusInternalServerError, "Internal server error", "No se pudo enviar el correo de verificación")
		default:
			slog.Error("registration failed", "email", req.Email, "error", err)
			response.Detail(c, http.StatusInternalServerError, "Internal server error", "Ocurrio un error al registrar el usuario")
		}
		return
	}

	slog.Info("user registered", "email", req.Email)
	response.Success(c, http.StatusOK, "Created", nil)
}

// VerifyEmail handles GET /api/auth/verify/:verification_token.
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	token := c.Param("verification_token")

	err := h.auth.VerifyEmail(c.Request.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingToken):
			response.Detail(c, http.StatusBadRequest, "Bad request", "Falta enviar token")
		case errors.Is(err, domain.ErrInvalidToken):
			response.Detail(c, http.StatusBadRequest, "Token invalido", "El token de verificacion no es válido o expiró")
		case errors.Is(err, domain.ErrUserNotFound):
			response.Detail(c, http.StatusNotFound, "Usuario no encontrado", "No se encontró un usuario con el correo especificado")
		case errors.Is(err, domain.ErrAlreadyVerified):
			response.Detail(c, http.StatusBadRequest, "Correo ya verificado", "Este correo electrónico ya ha sido verificado")
		case errors.Is(err, domain.ErrTokenMismatch):
			response.Detail(c, http.StatusBadRequest, "Token invalido", "El token de verificacion no es válido")
		default:
			slog.Error("email verification failed", "error", err)
			response.Detail(c, http.StatusInternalServerError, "Error interno del servidor", "Ocurrio un error al verificar el correo electronico")
		}
		return
	}

	response.Success(c, http.StatusOK, "Email verificado con éxito", gin.H{"message": "Usuario validado"})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, "Bad request", "El cuerpo de la peticion no es un JSON valido")
		return
	}

	token, user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			response.FieldErrors(c, http.StatusNotFound, "Usuario no encontrado", map[string]string{"email": "El email no esta registrado"})
		case errors.Is(err, domain.ErrEmailNotVerified):
			response.FieldErrors(c, http.StatusForbidden, "Email no verificado", map[string]string{"email": "Por favor, verifica tu email antes de iniciar sesión"})
		case errors.Is(err, domain.ErrInvalidCredentials):
			slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
			response.FieldErrors(c, http.StatusUnauthorized, "Credenciales incorrectas", map[string]string{"password": "La contraseña es incorrecta"})
		default:
			slog.Error("login failed", "email", req.Email, "error", err)
			response.Detail(c, http.StatusInternalServerError, "Internal Server Error", "Ocurrio un error al iniciar sesión")
		}
		return
	}

	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	response.Success(c, http.StatusOK, "Logueado", gin.H{
		"token": token,
		"user":  user.Public(),
	})
}

// ForgotPassword handles POST /api/auth/forgot-password.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, "Bad Request", "El cuerpo de la peticion no es un JSON valido")
		return
	}

	err := h.auth.ForgotPassword(c.Request.Context(), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingEmail):
			response.FieldErrors(c, http.StatusBadRequest, "Bad Request", map[string]string{"email": "El email es requerido"})
		case errors.Is(err, domain.ErrUserNotFound):
			response.FieldErrors(c, http.StatusNotFound, "Usuario no encontrado", map[string]string{"email": "No se encontro un usuario registrado con el correo proporcionado"})
		default:
			slog.Error("forgot password failed", "email", req.Email, "error", err)
			response.Detail(c, http.StatusInternalServerError, "Error interno del servidor", "Ocurrió un error al procesar la solicitud de restablecimiento")
		}
		return
	}

	response.Success(c, http.StatusOK, "Se envio el correo", gin.H{
		"detail": "Se envio un correo electronico con las instrucciones para restablecer tu contraseña",
	})
}

// ResetPassword handles PUT /api/auth/reset-password/:reset_token.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, "Bad request", "El cuerpo de la peticion no es un JSON valido")
		return
	}
	token := c.Param("reset_token")

	err := h.auth.ResetPassword(c.Request.Context(), token, req.Password)
	if err != nil {
		var vErr *domain.ValidationError
		switch {
		case errors.As(err, &vErr):
			response.Detail(c, http.StatusBadRequest, "Bad request", vErr.Message)
		case errors.Is(err, domain.ErrMissingToken), errors.Is(err, domain.ErrInvalidToken):
			response.Detail(c, http.StatusBadRequest, "Token incorrecto", "El reset token expiro o no es valido")
		case errors.Is(err, domain.ErrUserNotFound):
			response.Detail(c, http.StatusBadRequest, "No se encontro el usuario", "Usuario inexistente o invalido")
		default:
			slog.Error("password reset failed", "error", err)
			response.Detail(c, http.StatusInternalServerError, "Error interno del servidor", "Ocurrió un error al intentar restablecer la contraseña")
		}
		return
	}

	response.Success(c, http.StatusOK, "Contraseña restablecida", gin.H{"detail": "Se actualizo la contraseña correctamente"})
}
