package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/A1-D0/CP-DSSTox/internal/schema"
)

// SQLiteClient manages the connection to SQLite
type SQLiteClient struct {
	db *sql.DB
}

// NewSQLiteClient creates a new SQLite client. Foreign-key
// enforcement is off by default in SQLite, so it is enabled here.
func NewSQLiteClient(ctx context.Context, path string) (*SQLiteClient, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &SQLiteClient{db: db}, nil
}

// Dialect returns the SQLite dialect
func (c *SQLiteClient) Dialect() schema.Dialect {
	return schema.DialectSQLite
}

// Exec executes a statement
func (c *SQLiteClient) Exec(ctx context.Context, query string, args ...any) error {
	_, err := c.db.ExecContext(ctx, query, args...)
	return err
}

// QueryStrings runs a query and returns every row as strings, with
// NULL rendered as the empty string.
func (c *SQLiteClient) QueryStrings(ctx context.Context, query string) ([][]string, error) {
	return queryStrings(ctx, c.db, query)
}

// Close closes the database connection
func (c *SQLiteClient) Close(ctx context.Context) error {
	return c.db.Close()
}

// queryStrings is shared by the database/sql backed clients
func queryStrings(ctx context.Context, db *sql.DB, query string) ([][]string, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out [][]string
	for rows.Next() {
		raw := make([]sql.NullString, len(cols))
		ptrs := make([]any, len(cols))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		vals := make([]string, len(cols))
		for i, ns := range raw {
			if ns.Valid {
				vals[i] = ns.String
			}
		}
		out = append(out, vals)
	}

	return out, rows.Err()
}
