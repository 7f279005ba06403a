package models

import "time"

// User represents an account of the auth provider.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"user_id,omitempty"`

	// Email is the unique sign-in identifier.
	Email string `json:"email"`

	// Password is the plaintext password as received from the client.
	// It is only ever populated on the inbound side of sign-up, sign-in and
	// password changes and is never persisted or serialized back.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored in the users table.
	PasswordHash string `json:"-"`

	// EmailVerified tells whether the email address was confirmed.
	// Unverified accounts cannot sign in when verification is required.
	EmailVerified bool `json:"email_verified"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns a copy of u without any credential material.
func (u User) Public() User {
	u.Password = ""
	u.PasswordHash = ""
	return u
}
