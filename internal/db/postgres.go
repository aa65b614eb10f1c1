package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/A1-D0/CP-DSSTox/internal/schema"
)

// PostgresClient manages the connection to PostgreSQL
type PostgresClient struct {
	conn *pgx.Conn
}

// NewPostgresClient creates a new PostgreSQL client
func NewPostgresClient(ctx context.Context, connString string) (*PostgresClient, error) {
	conn, err := pgx.Connect(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Test the connection
	if err := conn.Ping(ctx); err != nil {
		_ = conn.Close(ctx)
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresClient{conn: conn}, nil
}

// Dialect returns the PostgreSQL dialect
func (c *PostgresClient) Dialect() schema.Dialect {
	return schema.DialectPostgres
}

// Exec executes a statement
func (c *PostgresClient) Exec(ctx context.Context, query string, args ...any) error {
	_, err := c.conn.Exec(ctx, query, args...)
	return err
}

// QueryStrings runs a query and returns every row as strings, with
// NULL rendered as the empty string.
func (c *PostgresClient) QueryStrings(ctx context.Context, query string) ([][]string, error) {
	rows, err := c.conn.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out [][]string
	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			return nil, err
		}
		strs := make([]string, len(vals))
		for i, v := range vals {
			if v != nil {
				strs[i] = fmt.Sprint(v)
			}
		}
		out = append(out, strs)
	}

	return out, rows.Err()
}

// Close closes the database connection
func (c *PostgresClient) Close(ctx context.Context) error {
	return c.conn.Close(ctx)
}
