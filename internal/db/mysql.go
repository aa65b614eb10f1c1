package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"

	"github.com/A1-D0/CP-DSSTox/internal/schema"
)

// MySQLClient manages the connection to MySQL
type MySQLClient struct {
	db *sql.DB
}

// NewMySQLClient creates a new MySQL client
func NewMySQLClient(ctx context.Context, connString string) (*MySQLClient, error) {
	db, err := sql.Open("mysql", connString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &MySQLClient{db: db}, nil
}

// Dialect returns the MySQL dialect
func (c *MySQLClient) Dialect() schema.Dialect {
	return schema.DialectMySQL
}

// Exec executes a statement
func (c *MySQLClient) Exec(ctx context.Context, query string, args ...any) error {
	_, err := c.db.ExecContext(ctx, query, args...)
	return err
}

// QueryStrings runs a query and returns every row as strings, with
// NULL rendered as the empty string.
func (c *MySQLClient) QueryStrings(ctx context.Context, query string) ([][]string, error) {
	return queryStrings(ctx, c.db, query)
}

// Close closes the database connection
func (c *MySQLClient) Close(ctx context.Context) error {
	return c.db.Close()
}
