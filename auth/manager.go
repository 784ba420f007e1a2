package auth

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/ariel-ams/photos-api-back/models"
	"github.com/ariel-ams/photos-api-back/store"
)

var (
	ErrPasswordMismatch   = errors.New("password does not match")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenMismatch      = errors.New("token mismatch")
)

// Session tokens are 32 random bytes, the sole bearer credential.
const tokenBytes = 32

// Manager bundles registration and session handling over the injected
// user store.
type Manager struct {
	store store.UserStore
}

func NewManager(s store.UserStore) *Manager {
	return &Manager{store: s}
}

// Register creates a new account. The plaintext password is hashed here
// and never persisted.
func (m *Manager) Register(ctx context.Context, email, password, password2 string) (models.User, error) {
	if password != password2 {
		return models.User{}, ErrPasswordMismatch
	}

	hash, err := HashPassword(password)
	if err != nil {
		log.Println("error hashing password", err)
		return models.User{}, err
	}

	return m.store.CreateUser(ctx, email, hash)
}

// Login verifies the credentials and issues a fresh session token,
// overwriting whatever token the user had before. The previous token
// stops resolving from that point on.
func (m *Manager) Login(ctx context.Context, email, password string) (models.User, string, error) {
	user, err := m.store.GetUserByEmail(ctx, email)
	if err != nil {
		return models.User{}, "", err
	}

	if !CheckPasswordHash(password, user.PasswordHash) {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := GenerateToken(tokenBytes)
	if err != nil {
		return models.User{}, "", err
	}

	if err := m.store.SetSessionToken(ctx, user.ID, token); err != nil {
		return models.User{}, "", fmt.Errorf("error storing session token: %w", err)
	}

	user.SessionToken = &token
	return user, token, nil
}

// Logout revokes the user's current session token. The supplied token has
// to match the one on record.
func (m *Manager) Logout(ctx context.Context, user models.User, token string) error {
	if user.SessionToken == nil || *user.SessionToken != token {
		return ErrTokenMismatch
	}
	return m.store.ClearSessionToken(ctx, user.ID)
}

// Authenticate resolves a session token to its user. An empty token never
// authenticates.
func (m *Manager) Authenticate(ctx context.Context, token string) (models.User, error) {
	if token == "" {
		return models.User{}, store.ErrUserNotFound
	}
	return m.store.GetUserByToken(ctx, token)
}
