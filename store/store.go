package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/ariel-ams/photos-api-back/models"
)

var (
	ErrDuplicateEmail = errors.New("email already exists")
	ErrUserNotFound   = errors.New("user not found")
)

// UserStore is the persistence contract for user records. It is injected
// into the auth manager rather than held as shared state.
type UserStore interface {
	CreateUser(ctx context.Context, email string, passwordHash []byte) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	GetUserByToken(ctx context.Context, token string) (models.User, error)
	SetSessionToken(ctx context.Context, userID uuid.UUID, token string) error
	ClearSessionToken(ctx context.Context, userID uuid.UUID) error
}
