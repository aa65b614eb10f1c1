package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// QuoteIdent quotes an identifier for the given dialect. The table
// names are mixed case (DSSTox, PUC_dictionary), so every identifier
// is quoted to keep the names stable across engines.
func QuoteIdent(d Dialect, name string) string {
	if d == DialectMySQL {
		return "`" + name + "`"
	}
	return `"` + name + `"`
}

// DDL renders idempotent CREATE TABLE statements for every table in
// load order. Creating the schema twice produces the same set of
// tables as creating it once.
func DDL(d Dialect) []string {
	keyCols := keyColumns()
	stmts := make([]string, 0, len(tables))
	for i := range tables {
		stmts = append(stmts, createTable(d, &tables[i], keyCols))
	}
	return stmts
}

// Script renders the DDL as a single executable script
func Script(d Dialect) string {
	return strings.Join(DDL(d), "\n\n") + "\n"
}

// keyColumns collects every column that participates in a primary key
// or a rendered foreign key, per table. MySQL needs these rendered as
// VARCHAR so they are indexable.
func keyColumns() map[string]map[string]bool {
	keys := make(map[string]map[string]bool)
	mark := func(table, column string) {
		if keys[table] == nil {
			keys[table] = make(map[string]bool)
		}
		keys[table][column] = true
	}
	for i := range tables {
		t := &tables[i]
		for _, pk := range t.PrimaryKey {
			mark(t.Name, pk)
		}
		for _, fk := range t.ForeignKeys {
			if fk.SkipDDL {
				continue
			}
			mark(t.Name, fk.Column)
			mark(fk.RefTable, fk.RefColumn)
		}
	}
	return keys
}

func createTable(d Dialect, t *Table, keyCols map[string]map[string]bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n", QuoteIdent(d, t.Name))

	var lines []string
	for _, col := range t.Columns {
		lines = append(lines, "    "+columnDef(d, col, keyCols[t.Name][col.Name]))
	}

	if len(t.PrimaryKey) > 0 && !t.HasAutoIncrementKey() {
		quoted := make([]string, len(t.PrimaryKey))
		for i, pk := range t.PrimaryKey {
			quoted[i] = QuoteIdent(d, pk)
		}
		lines = append(lines, fmt.Sprintf("    PRIMARY KEY (%s)", strings.Join(quoted, ", ")))
	}

	for _, fk := range t.ForeignKeys {
		if fk.SkipDDL {
			continue
		}
		lines = append(lines, fmt.Sprintf("    FOREIGN KEY (%s) REFERENCES %s (%s)",
			QuoteIdent(d, fk.Column), QuoteIdent(d, fk.RefTable), QuoteIdent(d, fk.RefColumn)))
	}

	b.WriteString(strings.Join(lines, ",\n"))
	b.WriteString("\n);")
	return b.String()
}

func columnDef(d Dialect, col Column, isKey bool) string {
	parts := []string{QuoteIdent(d, col.Name), columnType(d, col, isKey)}

	if col.AutoIncrement {
		switch d {
		case DialectSQLite:
			parts = append(parts, "PRIMARY KEY AUTOINCREMENT")
		case DialectPostgres:
			parts = append(parts, "GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY")
		case DialectMySQL:
			parts = append(parts, "AUTO_INCREMENT PRIMARY KEY")
		}
		return strings.Join(parts, " ")
	}

	if col.NotNull {
		parts = append(parts, "NOT NULL")
	}
	if check := checkClause(d, col); check != "" {
		parts = append(parts, check)
	}
	return strings.Join(parts, " ")
}

func columnType(d Dialect, col Column, isKey bool) string {
	if d == DialectMySQL && col.Type == TypeText && isKey {
		return "VARCHAR(255)"
	}
	if d == DialectPostgres && col.Type == TypeReal {
		return "DOUBLE PRECISION"
	}
	return string(col.Type)
}

// checkClause renders the column's value-domain constraint. NULL
// passes a CHECK in all three engines, so nullable constrained
// columns need no special casing.
func checkClause(d Dialect, col Column) string {
	if len(col.Enum) > 0 {
		vals := make([]string, len(col.Enum))
		for i, v := range col.Enum {
			vals[i] = "'" + v + "'"
		}
		return fmt.Sprintf("CHECK (%s IN (%s))", QuoteIdent(d, col.Name), strings.Join(vals, ", "))
	}
	if col.Bounds != nil {
		var conds []string
		name := QuoteIdent(d, col.Name)
		if col.Bounds.Min != nil {
			conds = append(conds, name+" >= "+formatBound(*col.Bounds.Min))
		}
		if col.Bounds.Max != nil {
			conds = append(conds, name+" <= "+formatBound(*col.Bounds.Max))
		}
		if len(conds) > 0 {
			return "CHECK (" + strings.Join(conds, " AND ") + ")"
		}
	}
	return ""
}

func formatBound(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
