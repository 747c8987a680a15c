package postgres

// Package postgres provides a Postgres-backed session store, used when
// Redis is not available in the deployment environment.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	domainauth "github.com/SowvikSuvo/chefbazaar-gateway/internal/domain/auth"
	apperrors "github.com/SowvikSuvo/chefbazaar-gateway/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SessionStore persists gateway sessions in a single sessions table.
// Expiry is enforced on read; Purge removes expired rows in bulk and is
// expected to run periodically.
type SessionStore struct {
	pool *pgxpool.Pool
}

// NewSessionStore creates a Postgres-backed session store.
func NewSessionStore(pool *pgxpool.Pool) *SessionStore {
	return &SessionStore{pool: pool}
}

// EnsureSchema creates the sessions table if it does not exist.
func (s *SessionStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS sessions (
			id         TEXT PRIMARY KEY,
			data       JSONB NOT NULL,
			expires_at TIMESTAMPTZ NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("ensure sessions schema: %w", err)
	}
	return nil
}

func (s *SessionStore) Save(ctx context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	if time.Until(sess.ExpiresAt) <= 0 {
		return errors.New("session is expired")
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO sessions (id, data, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET data = $2, expires_at = $3
	`, sess.ID, data, sess.ExpiresAt)
	if err != nil {
		return apperrors.MapDBError(fmt.Errorf("save session: %w", err))
	}
	return nil
}

func (s *SessionStore) Get(ctx context.Context, id string) (domainauth.Session, error) {
	if id == "" {
		return domainauth.Session{}, apperrors.NotFound("session not found")
	}

	var data []byte
	var expiresAt time.Time
	err := s.pool.QueryRow(ctx,
		`SELECT data, expires_at FROM sessions WHERE id = $1`, id,
	).Scan(&data, &expiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainauth.Session{}, apperrors.NotFound("session not found")
		}
		return domainauth.Session{}, apperrors.MapDBError(fmt.Errorf("get session: %w", err))
	}

	if time.Now().After(expiresAt) {
		if deleteErr := s.Delete(ctx, id); deleteErr != nil {
			return domainauth.Session{}, fmt.Errorf("cleanup expired session: %w", deleteErr)
		}
		return domainauth.Session{}, apperrors.NotFound("session not found")
	}

	var sess domainauth.Session
	if unmarshalErr := json.Unmarshal(data, &sess); unmarshalErr != nil {
		return domainauth.Session{}, fmt.Errorf("unmarshal session: %w", unmarshalErr)
	}
	return sess, nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	if _, err := s.pool.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id); err != nil {
		return apperrors.MapDBError(fmt.Errorf("delete session: %w", err))
	}
	return nil
}

// Purge deletes all expired sessions and returns the number removed.
func (s *SessionStore) Purge(ctx context.Context) (int64, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM sessions WHERE expires_at < now()`)
	if err != nil {
		return 0, apperrors.MapDBError(fmt.Errorf("purge sessions: %w", err))
	}
	return tag.RowsAffected(), nil
}
