package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"deals-room-service/internal/models"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionRepository stores server-side login sessions.
type SessionRepository interface {
	CreateSession(ctx context.Context, user models.User) (models.Session, error)
	GetSession(ctx context.Context, token string) (models.Session, error)
	DeleteSession(ctx context.Context, token string) error
}

// SessionRepo is a sqlx implementation of SessionRepository.
type SessionRepo struct {
	db *sqlx.DB
}

// NewSessionRepo constructs a SessionRepo.
func NewSessionRepo(db *sqlx.DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// CreateSession issues a fresh token for the user.
func (r *SessionRepo) CreateSession(ctx context.Context, user models.User) (models.Session, error) {
	var session models.Session
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO sessions (token, user_id, email, name)
         VALUES ($1, $2, $3, $4) RETURNING token, user_id, email, name, login_time`,
		uuid.NewString(), user.ID, user.Email, user.Name).
		StructScan(&session)
	return session, err
}

// GetSession resolves a token to its session.
func (r *SessionRepo) GetSession(ctx context.Context, token string) (models.Session, error) {
	if _, err := uuid.Parse(token); err != nil {
		return models.Session{}, ErrSessionNotFound
	}
	var session models.Session
	err := r.db.GetContext(ctx, &session,
		`SELECT token, user_id, email, name, login_time FROM sessions WHERE token=$1`, token)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	return session, err
}

// DeleteSession revokes a token. Deleting an unknown token is not an error.
func (r *SessionRepo) DeleteSession(ctx context.Context, token string) error {
	if _, err := uuid.Parse(token); err != nil {
		return nil
	}
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE token=$1`, token)
	return err
}
