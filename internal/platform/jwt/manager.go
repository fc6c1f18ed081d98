// Package jwtmw issues and verifies the signed tokens used by the auth flows
// and provides the gin middleware that guards protected routes.
package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token lifetimes. Short TTLs are the only mitigation for leaked tokens;
// there is no revocation list.
const (
	VerificationTTL = 24 * time.Hour
	SessionTTL      = 24 * time.Hour
	ResetTTL        = time.Hour
)

// Verification failures. Transport maps both to the same user-facing error.
var (
	// ErrTokenExpired indicates the embedded expiry is in the past.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid indicates a bad signature, malformed token or
	// unexpected signing method.
	ErrTokenInvalid = errors.New("token invalid")
)

// SessionClaims is the claim set of a session token. Subject carries the
// user id as issued by the credential store.
type SessionClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// emailClaims is the claim set shared by verification and reset tokens.
// They are bound to an email only; validity is proven by signature and
// expiry alone.
type emailClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Manager signs and verifies all token kinds with a single process-wide
// secret injected at construction. Rotating the secret invalidates every
// outstanding token.
type Manager struct {
	secret []byte
}

// NewManager creates a Manager for the given signing secret.
func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret)}
}

// IssueVerificationToken creates an email-verification token bound to email.
func (m *Manager) IssueVerificationToken(email string) (string, error) {
	return m.signEmailClaims(email, VerificationTTL)
}

// IssueResetToken creates a password-reset token bound to email.
func (m *Manager) IssueResetToken(email string) (string, error) {
	return m.signEmailClaims(email, ResetTTL)
}

// IssueSessionToken creates the bearer credential returned at login.
func (m *Manager) IssueSessionToken(id, email, role string) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyEmailToken checks a verification token and returns the bound email.
func (m *Manager) VerifyEmailToken(token string) (string, error) {
	return m.parseEmailClaims(token)
}

// VerifyResetToken checks a password-reset token and returns the bound email.
func (m *Manager) VerifyResetToken(token string) (string, error) {
	return m.parseEmailClaims(token)
}

// VerifySessionToken checks a session token and returns its claims.
func (m *Manager) VerifySessionToken(token string) (*SessionClaims, error) {
	var claims SessionClaims
	if err := m.parse(token, &claims); err != nil {
		return nil, err
	}
	return &claims, nil
}

func (m *Manager) signEmailClaims(email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := emailClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (m *Manager) parseEmailClaims(token string) (string, error) {
	var claims emailClaims
	if err := m.parse(token, &claims); err != nil {
		return "", err
	}
	return claims.Email, nil
}

func (m *Manager) parse(token string, claims jwt.Claims) error {
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC is accepted; anything else is treated as forgery.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrTokenExpired
		}
		return ErrTokenInvalid
	}
	if !parsed.Valid {
		return ErrTokenInvalid
	}
	return nil
}
