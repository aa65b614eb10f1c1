package validate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/A1-D0/CP-DSSTox/internal/schema"
)

// keySep joins composite key values. It cannot occur in the source
// data, which is printable text.
const keySep = "\x1f"

// Validator checks rows against the schema's constraint model before
// they reach the database. It keeps an in-memory index per dictionary
// table: the set of existing primary keys and the value sets of every
// referenced column. Indexes are seeded from an existing database and
// updated as rows are committed, so a re-run against a populated
// database skips conflicting keys instead of duplicating them.
type Validator struct {
	tables map[string]*schema.Table

	// keys maps table name to the set of composite primary keys
	keys map[string]map[string]struct{}

	// refs maps "table.column" to the set of values present in that
	// referenced column
	refs map[string]map[string]struct{}

	// refCols maps table name to the columns other tables reference
	refCols map[string][]string
}

// New creates a validator over the full CP_DSSTox table set
func New() *Validator {
	v := &Validator{
		tables:  make(map[string]*schema.Table),
		keys:    make(map[string]map[string]struct{}),
		refs:    make(map[string]map[string]struct{}),
		refCols: make(map[string][]string),
	}
	for _, t := range schema.Tables() {
		v.tables[t.Name] = schema.ByName(t.Name)
		v.keys[t.Name] = make(map[string]struct{})
	}
	for _, t := range schema.Tables() {
		for _, fk := range t.ForeignKeys {
			ref := fk.RefTable + "." + fk.RefColumn
			if _, ok := v.refs[ref]; ok {
				continue
			}
			v.refs[ref] = make(map[string]struct{})
			v.refCols[fk.RefTable] = append(v.refCols[fk.RefTable], fk.RefColumn)
		}
	}
	return v
}

// IndexColumns returns the columns the validator needs to see from
// existing rows of the table: the primary key (unless surrogate) and
// every column referenced by another table. An empty result means the
// table needs no seeding.
func (v *Validator) IndexColumns(table string) []string {
	t, ok := v.tables[table]
	if !ok {
		return nil
	}
	var cols []string
	seen := make(map[string]bool)
	if !t.HasAutoIncrementKey() {
		for _, pk := range t.PrimaryKey {
			cols = append(cols, pk)
			seen[pk] = true
		}
	}
	for _, rc := range v.refCols[table] {
		if !seen[rc] {
			cols = append(cols, rc)
		}
	}
	return cols
}

// HasReference reports whether a referenced column already holds the
// value, from a committed row or the seeded destination index.
func (v *Validator) HasReference(table, column, value string) bool {
	_, ok := v.refs[table+"."+column][value]
	return ok
}

// Check validates a row against the table's constraints: NOT NULL,
// enumerated domains, numeric ranges, referential integrity, and
// primary-key uniqueness, in that order. The first violation is
// returned; nothing is recorded.
func (v *Validator) Check(table string, row schema.Row) error {
	t, ok := v.tables[table]
	if !ok {
		return fmt.Errorf("unknown table %q", table)
	}

	for _, col := range t.Columns {
		if col.AutoIncrement {
			continue
		}
		val := row[col.Name]
		if val == nil {
			if col.NotNull {
				return &DomainConstraintError{Table: table, Field: col.Name}
			}
			continue
		}
		if len(col.Enum) > 0 {
			s := valueString(val)
			if !contains(col.Enum, s) {
				return &DomainConstraintError{Table: table, Field: col.Name, Value: s, Allowed: col.Enum}
			}
		}
		if col.Bounds != nil {
			f, ok := toFloat(val)
			if ok {
				if (col.Bounds.Min != nil && f < *col.Bounds.Min) || (col.Bounds.Max != nil && f > *col.Bounds.Max) {
					return &RangeConstraintError{Table: table, Field: col.Name, Value: f, Min: col.Bounds.Min, Max: col.Bounds.Max}
				}
			}
		}
	}

	for _, fk := range t.ForeignKeys {
		val := row[fk.Column]
		if val == nil {
			continue
		}
		s := valueString(val)
		if _, ok := v.refs[fk.RefTable+"."+fk.RefColumn][s]; !ok {
			return &ReferentialIntegrityError{Table: table, Column: fk.Column, RefTable: fk.RefTable, Value: s}
		}
	}

	if key, ok := v.rowKey(t, row); ok {
		if _, exists := v.keys[table][key]; exists {
			return &UniquenessViolation{Table: table, KeyColumns: t.PrimaryKey, Key: strings.ReplaceAll(key, keySep, ", ")}
		}
	}

	return nil
}

// Register records a committed row in the key and reference indexes.
// Call it only after the row has been inserted.
func (v *Validator) Register(table string, row schema.Row) {
	t, ok := v.tables[table]
	if !ok {
		return
	}
	if key, ok := v.rowKey(t, row); ok {
		v.keys[table][key] = struct{}{}
	}
	for _, rc := range v.refCols[table] {
		if val := row[rc]; val != nil {
			v.refs[table+"."+rc][valueString(val)] = struct{}{}
		}
	}
}

// rowKey builds the composite primary key string for a row. Tables
// with a surrogate auto-increment key have no loader-visible key.
func (v *Validator) rowKey(t *schema.Table, row schema.Row) (string, bool) {
	if len(t.PrimaryKey) == 0 || t.HasAutoIncrementKey() {
		return "", false
	}
	parts := make([]string, len(t.PrimaryKey))
	for i, pk := range t.PrimaryKey {
		parts[i] = valueString(row[pk])
	}
	return strings.Join(parts, keySep), true
}

func valueString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
