package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is assigned by the database on creation and never reassigned.
	UserID int64 `json:"-"`

	// Username is the short handle of the user.
	Username string `json:"username"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Email is the unique login identifier of the account.
	// Stored lowercase; uniqueness is enforced by the database.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt derivation of the user's password.
	// This value MUST never hold plaintext and is never serialized to callers.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Sanitized returns a copy of the user with the password hash removed.
// Handlers must only ever expose sanitized views.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}
