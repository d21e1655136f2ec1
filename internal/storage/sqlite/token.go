package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// TokenStore persists the session credential on the local device. The
// credential is opaque to the store: no format or expiry checks happen here.
type TokenStore struct {
	db *sqlx.DB
}

const tokenSchema = `
	CREATE TABLE IF NOT EXISTS session_token (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		token TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`

// Open connects to the token database at path, creating it if needed.
func Open(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open token db: %w", err)
	}
	if _, err := db.Exec(tokenSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create token table: %w", err)
	}
	return db, nil
}

func NewTokenStore(db *sqlx.DB) *TokenStore {
	return &TokenStore{db: db}
}

// Get returns the stored credential, or "" when none is stored.
func (s *TokenStore) Get(ctx context.Context) (string, error) {
	var token string
	err := s.db.GetContext(ctx, &token, "SELECT token FROM session_token WHERE id = 1")
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	return token, nil
}

// Set stores the credential, overwriting any prior value.
func (s *TokenStore) Set(ctx context.Context, token string) error {
	if token == "" {
		return errors.New("empty token")
	}

	query := `
		INSERT INTO session_token (id, token, updated_at)
		VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			token = EXCLUDED.token,
			updated_at = EXCLUDED.updated_at`

	if _, err := s.db.ExecContext(ctx, query, token, time.Now().UTC()); err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	return nil
}

// Clear removes the stored credential. Safe to call when nothing is stored.
func (s *TokenStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM session_token WHERE id = 1"); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}
