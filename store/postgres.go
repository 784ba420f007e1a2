package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ariel-ams/photos-api-back/models"
)

const queryTimeout = 10 * time.Second

// pgUniqueViolation is the Postgres error code for a unique index conflict.
const pgUniqueViolation = "23505"

// OpenDB initializes the database connection pool.
func OpenDB(dsn string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("error parsing DSN: %w", err)
	}

	config.MaxConns = 50
	config.MaxConnIdleTime = 20 * time.Second
	config.MinConns = 2

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	// Test the connection
	if err := pool.Ping(context.Background()); err != nil {
		return nil, err
	}

	return pool, nil
}

// PostgresUserStore persists users in Postgres. The unique index on email
// makes concurrent registrations for the same address safe, and token
// issuance is a single UPDATE.
type PostgresUserStore struct {
	db *pgxpool.Pool
}

func NewPostgresUserStore(db *pgxpool.Pool) *PostgresUserStore {
	return &PostgresUserStore{db: db}
}

func (s *PostgresUserStore) CreateUser(ctx context.Context, email string, passwordHash []byte) (models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	stmt := "INSERT INTO users (email, password_hash) VALUES ($1, $2) RETURNING id;"

	var user models.User
	if err := s.db.QueryRow(ctx, stmt, email, passwordHash).Scan(&user.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return models.User{}, ErrDuplicateEmail
		}
		log.Println("error adding user", err)
		return models.User{}, fmt.Errorf("error adding user: %w", err)
	}

	user.Email = email
	user.PasswordHash = passwordHash
	return user, nil
}

func (s *PostgresUserStore) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	stmt := "SELECT id, email, password_hash, session_token FROM users WHERE email = $1;"

	var user models.User
	row := s.db.QueryRow(ctx, stmt, email)
	if err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.SessionToken); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("database error fetching user: %w", err)
	}

	return user, nil
}

func (s *PostgresUserStore) GetUserByToken(ctx context.Context, token string) (models.User, error) {
	// A cleared token is NULL in the database; an empty string must never
	// match it.
	if token == "" {
		return models.User{}, ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	stmt := "SELECT id, email, password_hash, session_token FROM users WHERE session_token = $1;"

	var user models.User
	row := s.db.QueryRow(ctx, stmt, token)
	if err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.SessionToken); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("database error fetching user by token: %w", err)
	}

	return user, nil
}

func (s *PostgresUserStore) SetSessionToken(ctx context.Context, userID uuid.UUID, token string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	stmt := "UPDATE users SET session_token = $1 WHERE id = $2;"

	tag, err := s.db.Exec(ctx, stmt, token, userID)
	if err != nil {
		return fmt.Errorf("error updating session token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (s *PostgresUserStore) ClearSessionToken(ctx context.Context, userID uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	stmt := "UPDATE users SET session_token = NULL WHERE id = $1;"

	tag, err := s.db.Exec(ctx, stmt, userID)
	if err != nil {
		return fmt.Errorf("error clearing session token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}
