// Package entity defines the domain entities for the auth feature.
package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User roles. New accounts always start as RoleUser.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered account stored in the users collection.
type User struct {
	// ID is assigned by the store at insertion and is immutable afterwards.
	ID bson.ObjectID `bson:"_id,omitempty"`

	// Name is the display name. Letters, spaces, hyphens and apostrophes only.
	Name string `bson:"name"`

	// Email is unique across all users; uniqueness is enforced by the store.
	Email string `bson:"email"`

	// Password holds the bcrypt hash of the current password, never plaintext.
	Password string `bson:"password"`

	// EmailVerified starts false and becomes true exactly once. A user with
	// EmailVerified false may not log in regardless of password correctness.
	EmailVerified bool `bson:"emailVerified"`

	// VerificationToken is the exact token issued at registration. It is
	// compared byte for byte against incoming verification requests.
	VerificationToken string `bson:"verificationToken"`

	// Role is either RoleUser or RoleAdmin.
	Role string `bson:"role"`

	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// PublicUser is the projection of a User that may be returned to clients.
// It never carries the password hash or the verification token.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Public returns the client-safe projection of the user.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:    u.ID.Hex(),
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
