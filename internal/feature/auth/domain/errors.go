// Package domain defines domain-level errors for the auth feature.
package domain

import (
	"errors"
	"fmt"
)

// Domain errors for authentication operations.
// These errors represent business logic failures and are translated to the
// response envelope at the transport boundary.
var (
	// ErrEmailAlreadyExists indicates that a user with the given email already
	// exists. Returned during registration, including the concurrent case where
	// the store's unique index rejects the insert.
	ErrEmailAlreadyExists = errors.New("email already in use")

	// ErrUserNotFound indicates that no user matched the given email or id.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials indicates that the password comparison failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailNotVerified blocks login for accounts that never confirmed their
	// email address. Checked before the password so unverified users always get
	// this error, right or wrong password.
	ErrEmailNotVerified = errors.New("email not verified")

	// ErrAlreadyVerified is returned when a valid verification token is
	// presented for an account that is already verified. Verification is
	// idempotent-reject: the second call fails.
	ErrAlreadyVerified = errors.New("email already verified")

	// ErrTokenMismatch is returned when a well-signed verification token does
	// not match the token stored on the user.
	ErrTokenMismatch = errors.New("verification token mismatch")

	// ErrInvalidToken covers both bad signatures and expired tokens; the two
	// are indistinguishable to clients on purpose.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrMissingToken indicates that no token was supplied at all.
	ErrMissingToken = errors.New("missing token")

	// ErrMissingEmail indicates that no email was supplied at all.
	ErrMissingEmail = errors.New("missing email")

	// ErrNotificationFailed indicates that an awaited email send failed.
	// Registration surfaces this to the caller; no user record is persisted.
	ErrNotificationFailed = errors.New("notification delivery failed")
)

// ValidationError reports the first input field that failed validation.
// Validation short-circuits, so a request never carries more than one.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}
