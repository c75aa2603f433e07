// postgres.go provides the database-backed Source. Lists live in two
// tables keyed by field:
//
//	CREATE TABLE field_values (
//	    field_key TEXT NOT NULL,
//	    value     TEXT NOT NULL,
//	    position  INT  NOT NULL DEFAULT 0
//	);
//	CREATE TABLE field_replacements (
//	    field_key TEXT NOT NULL,
//	    variant   TEXT NOT NULL,
//	    canonical TEXT NOT NULL
//	);
package values

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// DB is the query surface PostgresSource needs.
// Satisfied by both *pgxpool.Pool and pgx.Tx.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresSource loads value lists from the field_values and
// field_replacements tables.
type PostgresSource struct {
	db DB
}

// NewPostgresSource builds a source over db. The caller owns the pool
// lifecycle.
func NewPostgresSource(db DB) *PostgresSource {
	return &PostgresSource{db: db}
}

const queryFieldValues = `
	SELECT value
	FROM field_values
	WHERE field_key = $1
	ORDER BY position, value`

const queryFieldReplacements = `
	SELECT variant, canonical
	FROM field_replacements
	WHERE field_key = $1`

// Load implements Source. A key with no value rows is ErrNotFound even
// when replacement rows exist for it.
func (s *PostgresSource) Load(ctx context.Context, key string) (*ValueList, error) {
	key = normalizeKey(key)

	rows, err := s.db.Query(ctx, queryFieldValues, key)
	if err != nil {
		return nil, fmt.Errorf("query field values: %w", err)
	}
	defer rows.Close()

	var vals []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan field value: %w", err)
		}
		vals = append(vals, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	if len(vals) == 0 {
		return nil, ErrNotFound
	}

	repl, err := s.loadReplacements(ctx, key)
	if err != nil {
		return nil, err
	}
	return NewValueList(key, vals, repl), nil
}

func (s *PostgresSource) loadReplacements(ctx context.Context, key string) (map[string]string, error) {
	rows, err := s.db.Query(ctx, queryFieldReplacements, key)
	if err != nil {
		return nil, fmt.Errorf("query field replacements: %w", err)
	}
	defer rows.Close()

	repl := make(map[string]string)
	for rows.Next() {
		var variant, canonical string
		if err := rows.Scan(&variant, &canonical); err != nil {
			return nil, fmt.Errorf("scan field replacement: %w", err)
		}
		repl[variant] = canonical
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return repl, nil
}
