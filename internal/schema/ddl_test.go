package schema

import (
	"strings"
	"testing"
)

func TestDDLCoversAllTables(t *testing.T) {
	for _, dialect := range []Dialect{DialectSQLite, DialectPostgres, DialectMySQL} {
		t.Run(string(dialect), func(t *testing.T) {
			stmts := DDL(dialect)
			if len(stmts) != len(Tables()) {
				t.Fatalf("Expected %d statements, got %d", len(Tables()), len(stmts))
			}
			for i, table := range Tables() {
				if !strings.Contains(stmts[i], "CREATE TABLE IF NOT EXISTS") {
					t.Errorf("Statement for %s is not idempotent:\n%s", table.Name, stmts[i])
				}
				if !strings.Contains(stmts[i], QuoteIdent(dialect, table.Name)) {
					t.Errorf("Statement %d does not name table %s", i, table.Name)
				}
			}
		})
	}
}

func TestDDLRendersConstraints(t *testing.T) {
	script := Script(DialectSQLite)

	tests := []struct {
		name string
		want string
	}{
		{name: "probability range", want: `CHECK ("probability" >= 0 AND "probability" <= 1)`},
		{name: "weight fraction range", want: `CHECK ("clean_min_wf" >= 0 AND "clean_min_wf" <= 1)`},
		{name: "raw comp lower bound only", want: `CHECK ("raw_min_comp" >= 0)`},
		{name: "harmonized function enum", want: `'surfactant'`},
		{name: "puc kind enum", want: `CHECK ("kind" IN ('F', 'A', 'O'))`},
		{name: "classification enum", want: `CHECK ("classification" IN ('MA', 'MB', 'PR'))`},
		{name: "curation level enum", want: `CHECK ("curation_level" IN ('C', 'PR'))`},
		{name: "not null preferred name", want: `"PREFERRED_NAME" TEXT NOT NULL`},
		{name: "composite primary key", want: `PRIMARY KEY ("DTXSID", "harmonized_function")`},
		{name: "foreign key", want: `FOREIGN KEY ("DTXSID") REFERENCES "DSSTox" ("DTXSID")`},
		{name: "surrogate key", want: `"id" INTEGER PRIMARY KEY AUTOINCREMENT`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(script, tt.want) {
				t.Errorf("Expected script to contain %q", tt.want)
			}
		})
	}
}

// The DSSTox identifier reference has a non-unique parent column, so
// it must never become an SQL constraint.
func TestDSSToxIdentifierReferenceOmitted(t *testing.T) {
	script := Script(DialectSQLite)
	if strings.Contains(script, `REFERENCES "Identifier"`) {
		t.Error("Expected no FOREIGN KEY clause against Identifier")
	}
}

func TestDialectSpecificRendering(t *testing.T) {
	tests := []struct {
		name    string
		dialect Dialect
		want    string
	}{
		{name: "postgres identity key", dialect: DialectPostgres, want: `"id" INTEGER GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY`},
		{name: "postgres double precision", dialect: DialectPostgres, want: `"probability" DOUBLE PRECISION`},
		{name: "mysql auto increment", dialect: DialectMySQL, want: "`id` INTEGER AUTO_INCREMENT PRIMARY KEY"},
		{name: "mysql varchar keys", dialect: DialectMySQL, want: "`DTXSID` VARCHAR(255) NOT NULL"},
		{name: "mysql backtick quoting", dialect: DialectMySQL, want: "CREATE TABLE IF NOT EXISTS `PUC_dictionary`"},
		{name: "sqlite text keys", dialect: DialectSQLite, want: `"DTXSID" TEXT NOT NULL`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script := Script(tt.dialect)
			if !strings.Contains(script, tt.want) {
				t.Errorf("Expected %s script to contain %q", tt.dialect, tt.want)
			}
		})
	}
}

// Non-key text columns stay TEXT in MySQL; only columns used in keys
// are shortened to VARCHAR.
func TestMySQLNonKeyColumnsStayText(t *testing.T) {
	script := Script(DialectMySQL)
	if !strings.Contains(script, "`IUPAC_NAME` TEXT") {
		t.Error("Expected IUPAC_NAME to remain TEXT in MySQL")
	}
}
