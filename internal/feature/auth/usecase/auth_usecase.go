// Package usecase implements the business logic for the auth feature.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"golang.org/x/crypto/bcrypt"

	"tienda_backend/internal/feature/auth/domain"
	"tienda_backend/internal/feature/auth/domain/entity"
)

// minPasswordLength applies to registration and password reset alike.
const minPasswordLength = 8

// Input shapes accepted by the flows. Locale-aware letters for names, a basic
// local@domain.tld shape for emails.
var (
	nameRegex  = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑ\s'-]+$`)
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// UserRepository abstracts the credential store.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns domain.ErrEmailAlreadyExists when
	// the store's uniqueness constraint rejects the email.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user by email, or domain.ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user by its opaque id, or domain.ErrUserNotFound.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// Save persists mutations to an existing user.
	Save(ctx context.Context, user *entity.User) error
}

// TokenService issues and verifies the signed tokens used by the flows.
type TokenService interface {
	IssueVerificationToken(email string) (string, error)
	IssueSessionToken(id, email, role string) (string, error)
	IssueResetToken(email string) (string, error)

	// VerifyEmailToken and VerifyResetToken return the email the token is
	// bound to, or an error on bad signature or expiry.
	VerifyEmailToken(token string) (string, error)
	VerifyResetToken(token string) (string, error)
}

// Mailer delivers the verification and reset links.
type Mailer interface {
	SendVerificationEmail(ctx context.Context, to, token string) error
	SendPasswordResetEmail(ctx context.Context, to, token string) error
}

// authUsecase orchestrates the register, verify, login and password-reset
// flows. It holds no mutable state; every call is a single-shot request.
type authUsecase struct {
	users  UserRepository
	tokens TokenService
	mail   Mailer
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(users UserRepository, tokens TokenService, mail Mailer) *authUsecase {
	return &authUsecase{users: users, tokens: tokens, mail: mail}
}

// Register creates a new unverified account and sends the verification email.
// The email send is awaited: when it fails, no user record is left behind.
func (u *authUsecase) Register(ctx context.Context, name, email, password string) error {
	if name == "" || !nameRegex.MatchString(name) {
		return &domain.ValidationError{Field: "name", Message: "El nombre no es válido. Debe contener solo letras, espacios o guiones"}
	}
	if email == "" || !emailRegex.MatchString(email) {
		return &domain.ValidationError{Field: "email", Message: "El email no es válido"}
	}
	if len(password) < minPasswordLength {
		return &domain.ValidationError{Field: "password", Message: "La contraseña debe tener al menos 8 caracteres"}
	}

	// The lookup gives a friendly error on the common path; the store's unique
	// index still decides the concurrent case.
	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("failed to check existing user: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	verificationToken, err := u.tokens.IssueVerificationToken(email)
	if err != nil {
		return fmt.Errorf("failed to issue verification token: %w", err)
	}

	if err := u.mail.SendVerificationEmail(ctx, email, verificationToken); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrNotificationFailed, err)
	}

	now := time.Now()
	user := &entity.User{
		Name:              name,
		Email:             email,
		Password:          string(hashed),
		EmailVerified:     false,
		VerificationToken: verificationToken,
		Role:              entity.RoleUser,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	return u.users.Create(ctx, user)
}

// VerifyEmail consumes a verification token and marks the account verified.
// A second call with the same token fails with domain.ErrAlreadyVerified.
func (u *authUsecase) VerifyEmail(ctx context.Context, token string) error {
	if token == "" {
		return domain.ErrMissingToken
	}

	email, err := u.tokens.VerifyEmailToken(token)
	if err != nil {
		return domain.ErrInvalidToken
	}

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user.EmailVerified {
		return domain.ErrAlreadyVerified
	}
	// A well-signed token that is not the one stored on the user is rejected:
	// only the exact token issued at registration may verify the account.
	if user.VerificationToken != token {
		return domain.ErrTokenMismatch
	}

	user.EmailVerified = true
	user.UpdatedAt = time.Now()
	return u.users.Save(ctx, user)
}

// Login authenticates a verified user and returns a session token together
// with the user record. The verification check runs before the password
// comparison, so unverified accounts always get domain.ErrEmailNotVerified.
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if !user.EmailVerified {
		return "", nil, domain.ErrEmailNotVerified
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueSessionToken(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue session token: %w", err)
	}
	return token, user, nil
}

// ForgotPassword issues a reset token and sends the reset email without
// waiting for delivery. A send failure is logged and the request still
// succeeds; the client may simply request another reset.
func (u *authUsecase) ForgotPassword(ctx context.Context, email string) error {
	if email == "" {
		return domain.ErrMissingEmail
	}

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	resetToken, err := u.tokens.IssueResetToken(user.Email)
	if err != nil {
		return fmt.Errorf("failed to issue reset token: %w", err)
	}

	// Fire and forget: the send outlives the request, so it runs on a context
	// detached from the request's cancellation.
	go func(to, token string) {
		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
		defer cancel()
		if err := u.mail.SendPasswordResetEmail(sendCtx, to, token); err != nil {
			slog.Error("failed to send password reset email", "email", to, "error", err)
		}
	}(user.Email, resetToken)

	return nil
}

// ResetPassword consumes a reset token and replaces the stored password hash.
// Outstanding session tokens stay valid until their own expiry.
func (u *authUsecase) ResetPassword(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return &domain.ValidationError{Field: "password", Message: "La contraseña debe tener al menos 8 caracteres"}
	}
	if token == "" {
		return domain.ErrMissingToken
	}

	email, err := u.tokens.VerifyResetToken(token)
	if err != nil {
		return domain.ErrInvalidToken
	}

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashed)
	user.UpdatedAt = time.Now()
	return u.users.Save(ctx, user)
}
