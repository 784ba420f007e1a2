package models

import "github.com/google/uuid"

// User is one registered account. SessionToken is nil while the user has
// no active session; at most one token is live per user.
type User struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash []byte    `db:"password_hash"`
	SessionToken *string   `db:"session_token"`
}
