package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/A1-D0/CP-DSSTox/internal/schema"
)

// Conn is the destination-database surface the loader needs. Each
// engine client implements it so the insert path is engine-agnostic.
type Conn interface {
	Dialect() schema.Dialect
	Exec(ctx context.Context, query string, args ...any) error
	QueryStrings(ctx context.Context, query string) ([][]string, error)
	Close(ctx context.Context) error
}

// InsertSQL builds a parameterized INSERT for the table's loadable
// columns and returns the statement with the column order the
// arguments must follow.
func InsertSQL(d schema.Dialect, t *schema.Table) (string, []string) {
	cols := t.InsertColumns()
	quoted := make([]string, len(cols))
	params := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = schema.QuoteIdent(d, c)
		params[i] = placeholder(d, i+1)
	}
	stmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		schema.QuoteIdent(d, t.Name), strings.Join(quoted, ", "), strings.Join(params, ", "))
	return stmt, cols
}

// SelectSQL builds a SELECT of the given columns over the whole table
func SelectSQL(d schema.Dialect, table string, cols []string) string {
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = schema.QuoteIdent(d, c)
	}
	return fmt.Sprintf("SELECT %s FROM %s", strings.Join(quoted, ", "), schema.QuoteIdent(d, table))
}

func placeholder(d schema.Dialect, n int) string {
	if d == schema.DialectPostgres {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// CreateSchema applies the built-in DDL to the destination. Every
// statement is CREATE TABLE IF NOT EXISTS, so applying it to a
// database that already has the tables is a no-op.
func CreateSchema(ctx context.Context, conn Conn) error {
	for _, stmt := range schema.DDL(conn.Dialect()) {
		if err := conn.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// ExecScript executes an external SQL schema file's statements. The
// split on ';' is naive but sufficient for DDL scripts.
func ExecScript(ctx context.Context, conn Conn, script string) error {
	for _, stmt := range splitStatements(script) {
		if err := conn.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute schema script: %w", err)
		}
	}
	return nil
}

func splitStatements(script string) []string {
	var stmts []string
	for _, part := range strings.Split(script, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		stmts = append(stmts, strings.TrimSpace(part)+";")
	}
	return stmts
}
