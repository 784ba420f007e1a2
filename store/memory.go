package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/ariel-ams/photos-api-back/models"
)

// MemoryUserStore is a mutex-guarded in-memory UserStore with the same
// semantics as the Postgres implementation. Used in tests.
type MemoryUserStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[uuid.UUID]models.User)}
}

func (s *MemoryUserStore) CreateUser(_ context.Context, email string, passwordHash []byte) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return models.User{}, ErrDuplicateEmail
		}
	}

	user := models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
	}
	s.users[user.ID] = user
	return user, nil
}

func (s *MemoryUserStore) GetUserByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (s *MemoryUserStore) GetUserByToken(_ context.Context, token string) (models.User, error) {
	if token == "" {
		return models.User{}, ErrUserNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.SessionToken != nil && *u.SessionToken == token {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (s *MemoryUserStore) SetSessionToken(_ context.Context, userID uuid.UUID, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return ErrUserNotFound
	}

	user.SessionToken = &token
	s.users[userID] = user
	return nil
}

func (s *MemoryUserStore) ClearSessionToken(_ context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return ErrUserNotFound
	}

	user.SessionToken = nil
	s.users[userID] = user
	return nil
}

// Count returns the number of stored users.
func (s *MemoryUserStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}
