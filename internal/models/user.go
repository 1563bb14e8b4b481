package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`            // Primary key
	Username     string    `json:"username" db:"username"`     // Unique username
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt hash, never serialized
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// UserPublic is the part of a user returned to clients.
// swagger:model UserPublic
type UserPublic struct {
	// example: 0b7d8a52-6f1e-4d2b-9a61-3f6a2f0b9c11
	ID uuid.UUID `json:"id"`
	// example: john_doe
	Username string `json:"username"`
}

// Public strips the credential fields from a stored user.
func (u *UserDB) Public() UserPublic {
	return UserPublic{ID: u.UserID, Username: u.Username}
}
