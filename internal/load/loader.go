package load

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/A1-D0/CP-DSSTox/internal/db"
	"github.com/A1-D0/CP-DSSTox/internal/schema"
	"github.com/A1-D0/CP-DSSTox/internal/validate"
)

// Report summarizes a completed load
type Report struct {
	// Inserted counts committed rows per table
	Inserted map[string]int

	// Skipped counts rows rejected by a constraint or the engine
	Skipped map[string]int

	// Warnings holds one message per skipped row, in load order
	Warnings []string
}

// insertStmt caches the prepared statement text per table
type insertStmt struct {
	sql  string
	cols []string
}

// Loader populates a destination database from a resolved file
// layout. Each row is validated against the constraint model, then
// inserted; any row-level failure is downgraded to a warning and the
// load continues with the next row.
type Loader struct {
	conn      db.Conn
	validator *validate.Validator
	warn      io.Writer
	report    *Report
	stmts     map[string]insertStmt
}

// New creates a loader writing warnings to warn
func New(conn db.Conn, warn io.Writer) *Loader {
	return &Loader{
		conn:      conn,
		validator: validate.New(),
		warn:      warn,
		report: &Report{
			Inserted: make(map[string]int),
			Skipped:  make(map[string]int),
		},
		stmts: make(map[string]insertStmt),
	}
}

// Run executes the load: seed the validator's indexes from the
// destination, then load every table in dependency order. Dictionary
// tables land before the fact tables that reference them.
func (l *Loader) Run(ctx context.Context, layout Layout) (*Report, error) {
	if err := l.seedIndexes(ctx); err != nil {
		return nil, fmt.Errorf("failed to index existing rows: %w", err)
	}

	for _, t := range schema.Tables() {
		files := layout[t.Name]
		if len(files) == 0 {
			continue
		}
		for _, path := range files {
			if err := l.loadFile(ctx, t.Name, path); err != nil {
				return nil, err
			}
		}
	}

	return l.report, nil
}

// seedIndexes reads the primary keys and referenced column values
// already present in the destination, so a re-run skips existing rows
// instead of duplicating them.
func (l *Loader) seedIndexes(ctx context.Context) error {
	for _, t := range schema.Tables() {
		cols := l.validator.IndexColumns(t.Name)
		if len(cols) == 0 {
			continue
		}
		rows, err := l.conn.QueryStrings(ctx, db.SelectSQL(l.conn.Dialect(), t.Name, cols))
		if err != nil {
			return fmt.Errorf("table %s: %w", t.Name, err)
		}
		for _, vals := range rows {
			row := schema.Row{}
			for i, c := range cols {
				if i < len(vals) && vals[i] != "" {
					row[c] = vals[i]
				}
			}
			l.validator.Register(t.Name, row)
		}
	}
	return nil
}

// loadFile reads one source file and inserts its rows
func (l *Loader) loadFile(ctx context.Context, table, path string) error {
	var data *TableData
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		data, err = ReadXLSX(path)
	case ".csv":
		data, err = ReadCSV(path)
	default:
		return fmt.Errorf("unsupported file format for %s", path)
	}
	if err != nil {
		return fmt.Errorf("error reading file %s: %w", path, err)
	}

	t := schema.ByName(table)
	for _, record := range data.Rows {
		row := l.buildRow(t, record)
		if table == "DSSTox" {
			l.insertIdentifiers(ctx, row)
		}
		l.insertRow(ctx, table, row)
	}

	return nil
}

// buildRow maps a record onto the table's loadable columns
// positionally, normalizing nulls and converting numeric cells.
// Records shorter than the column list are padded with NULL.
func (l *Loader) buildRow(t *schema.Table, record []string) schema.Row {
	row := schema.Row{}
	for i, name := range t.InsertColumns() {
		var raw string
		if i < len(record) {
			raw = record[i]
		}
		val := NormalizeNull(raw)
		if val == nil {
			row[name] = nil
			continue
		}
		col := t.Column(name)
		switch {
		case t.Name == "document_dictionary" && name == "doc_date":
			row[name] = ParseDate(raw)
		case col.Type == schema.TypeReal || col.Type == schema.TypeInteger:
			if f, ok := ToFloat(raw); ok {
				row[name] = f
			} else {
				row[name] = nil
			}
		default:
			row[name] = raw
		}
	}
	return row
}

// insertIdentifiers explodes the IDENTIFIER cell of a DSSTox row into
// Identifier rows and inserts them. They go in ahead of the DSSTox
// row so its identifier reference resolves.
func (l *Loader) insertIdentifiers(ctx context.Context, row schema.Row) {
	cell, ok := row["IDENTIFIER"].(string)
	if !ok {
		return
	}
	first, alternatives := ExplodeIdentifiers(cell)
	if first == "" {
		row["IDENTIFIER"] = nil
		return
	}
	row["IDENTIFIER"] = first

	// Rows for this identifier are already present when a re-run (or a
	// repeated identifier) reaches here; inserting them again would
	// duplicate content.
	if l.validator.HasReference("Identifier", "IDENTIFIER", first) {
		return
	}

	if len(alternatives) == 0 {
		l.insertRow(ctx, "Identifier", schema.Row{
			"IDENTIFIER":             first,
			"CASRN":                  first,
			"ALTERNATIVE_IDENTIFIER": nil,
		})
		return
	}
	for _, alt := range alternatives {
		l.insertRow(ctx, "Identifier", schema.Row{
			"IDENTIFIER":             first,
			"CASRN":                  first,
			"ALTERNATIVE_IDENTIFIER": alt,
		})
	}
}

// insertRow runs validate-then-commit for a single row. Constraint
// violations and engine errors alike are downgraded to a warning.
func (l *Loader) insertRow(ctx context.Context, table string, row schema.Row) {
	if err := l.validator.Check(table, row); err != nil {
		l.warnf(table, err)
		return
	}

	stmt, ok := l.stmts[table]
	if !ok {
		sql, cols := db.InsertSQL(l.conn.Dialect(), schema.ByName(table))
		stmt = insertStmt{sql: sql, cols: cols}
		l.stmts[table] = stmt
	}

	args := make([]any, len(stmt.cols))
	for i, c := range stmt.cols {
		args[i] = row[c]
	}

	if err := l.conn.Exec(ctx, stmt.sql, args...); err != nil {
		l.warnf(table, err)
		return
	}

	l.validator.Register(table, row)
	l.report.Inserted[table]++
}

func (l *Loader) warnf(table string, err error) {
	msg := fmt.Sprintf("Error importing data for table '%s': %v", table, err)
	fmt.Fprintln(l.warn, msg)
	l.report.Skipped[table]++
	l.report.Warnings = append(l.report.Warnings, msg)
}
