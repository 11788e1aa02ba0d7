package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// ErrPoolNotFound is returned when no pool row exists for the given name.
var ErrPoolNotFound = fmt.Errorf("recipient pool not found")

// PostgresPoolRepository implements pool.Repository over the email_pools
// table. The addresses column holds whatever the admin UI saved: a JSON
// array or a comma-separated list; decoding stays as loose as the store.
type PostgresPoolRepository struct {
	db *sql.DB
}

func NewPostgresPoolRepository(db *sql.DB) *PostgresPoolRepository {
	return &PostgresPoolRepository{db: db}
}

func (r *PostgresPoolRepository) Get(ctx context.Context, name string) (any, error) {
	query := `SELECT addresses FROM email_pools WHERE name = $1`
	var raw string
	err := r.db.QueryRowContext(ctx, query, name).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, ErrPoolNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error reading pool %q: %w", name, err)
	}

	var decoded any
	if json.Unmarshal([]byte(raw), &decoded) == nil {
		if list, ok := decoded.([]any); ok {
			return list, nil
		}
	}
	return raw, nil
}
