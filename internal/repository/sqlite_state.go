package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// SQLiteStateRepo implements StateRepo on the app_state key-value table.
type SQLiteStateRepo struct {
	db  *sql.DB
	key string
}

// NewSQLiteStateRepo creates a repo bound to the canonical StateKey.
func NewSQLiteStateRepo(db *sql.DB) *SQLiteStateRepo {
	return &SQLiteStateRepo{db: db, key: StateKey}
}

func (r *SQLiteStateRepo) Load(ctx context.Context) ([]byte, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM app_state WHERE key = ?`, r.key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("loading state %q: %w", r.key, err)
	}
	return []byte(value), true, nil
}

func (r *SQLiteStateRepo) Save(ctx context.Context, payload []byte) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO app_state (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		r.key, string(payload), now)
	if err != nil {
		return fmt.Errorf("saving state %q: %w", r.key, err)
	}
	return nil
}
