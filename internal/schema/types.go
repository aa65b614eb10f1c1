package schema

// Dialect identifies a destination database engine
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
	DialectMySQL    Dialect = "mysql"
)

// ColumnType is the logical storage type of a column
type ColumnType string

const (
	TypeText    ColumnType = "TEXT"
	TypeInteger ColumnType = "INTEGER"
	TypeReal    ColumnType = "REAL"
)

// Range bounds a numeric column. A nil bound is open on that side.
type Range struct {
	Min *float64
	Max *float64
}

// Column represents a table column and its value domain
type Column struct {
	Name    string
	Type    ColumnType
	NotNull bool

	// AutoIncrement marks a surrogate integer key generated by the
	// engine. Auto-increment columns are excluded from inserts.
	AutoIncrement bool

	// Enum restricts the column to a closed value set
	Enum []string

	// Bounds restricts a numeric column to an interval
	Bounds *Range
}

// ForeignKey represents a reference from a column to a parent table
type ForeignKey struct {
	Column    string
	RefTable  string
	RefColumn string

	// SkipDDL suppresses the SQL FOREIGN KEY clause. Used when the
	// parent column is not unique, so only the loader's in-memory
	// index can enforce the reference.
	SkipDDL bool
}

// Table represents a database table
type Table struct {
	Name        string
	Columns     []Column
	PrimaryKey  []string
	ForeignKeys []ForeignKey
}

// Row holds one record keyed by column name. Values are nil, string,
// or float64.
type Row map[string]any

// Column returns the named column definition, or nil if absent
func (t *Table) Column(name string) *Column {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i]
		}
	}
	return nil
}

// InsertColumns returns the columns populated by the loader, in
// declaration order. Auto-increment keys are excluded.
func (t *Table) InsertColumns() []string {
	var cols []string
	for _, c := range t.Columns {
		if c.AutoIncrement {
			continue
		}
		cols = append(cols, c.Name)
	}
	return cols
}

// HasAutoIncrementKey reports whether the table's primary key is an
// engine-generated surrogate.
func (t *Table) HasAutoIncrementKey() bool {
	for _, c := range t.Columns {
		if c.AutoIncrement {
			return true
		}
	}
	return false
}
