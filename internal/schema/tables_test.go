package schema

import "testing"

func TestTableLookup(t *testing.T) {
	for _, name := range []string{
		"DSSTox", "Identifier", "QSUR_data", "chemical_dictionary",
		"document_dictionary", "list_presence_dictionary", "list_presence_data",
		"HHE_data", "functional_use_dictionary", "functional_use_data",
		"product_composition_data", "PUC_dictionary",
	} {
		if ByName(name) == nil {
			t.Errorf("Expected table %s to be defined", name)
		}
	}

	if ByName("no_such_table") != nil {
		t.Error("Expected nil for unknown table")
	}
}

func TestForeignKeyTargetsExist(t *testing.T) {
	for _, table := range Tables() {
		for _, fk := range table.ForeignKeys {
			parent := ByName(fk.RefTable)
			if parent == nil {
				t.Errorf("%s.%s references unknown table %s", table.Name, fk.Column, fk.RefTable)
				continue
			}
			if parent.Column(fk.RefColumn) == nil {
				t.Errorf("%s.%s references unknown column %s.%s", table.Name, fk.Column, fk.RefTable, fk.RefColumn)
			}
		}
	}
}

// TestLoadOrder verifies that every table appears after the tables it
// references, so loading in declaration order never dangles a foreign
// key. The Identifier reference is the one exception: its rows are
// derived from the DSSTox files themselves and inserted first.
func TestLoadOrder(t *testing.T) {
	position := make(map[string]int)
	for i, table := range Tables() {
		position[table.Name] = i
	}

	for _, table := range Tables() {
		for _, fk := range table.ForeignKeys {
			if position[fk.RefTable] > position[table.Name] {
				t.Errorf("%s loads before its parent %s", table.Name, fk.RefTable)
			}
		}
	}
}

func TestInsertColumnsExcludeSurrogates(t *testing.T) {
	tests := []struct {
		table     string
		wantCount int
		excluded  string
	}{
		{table: "Identifier", wantCount: 3, excluded: "id"},
		{table: "product_composition_data", wantCount: 14, excluded: "id"},
		{table: "DSSTox", wantCount: 12},
	}

	for _, tt := range tests {
		t.Run(tt.table, func(t *testing.T) {
			table := ByName(tt.table)
			cols := table.InsertColumns()
			if len(cols) != tt.wantCount {
				t.Errorf("Expected %d insert columns, got %d", tt.wantCount, len(cols))
			}
			for _, c := range cols {
				if tt.excluded != "" && c == tt.excluded {
					t.Errorf("Expected %s to be excluded from insert columns", tt.excluded)
				}
			}
		})
	}
}

func TestEnumSizes(t *testing.T) {
	if len(HarmonizedFunctions) != 36 {
		t.Errorf("Expected 36 harmonized functions, got %d", len(HarmonizedFunctions))
	}

	col := ByName("QSUR_data").Column("harmonized_function")
	if col == nil || len(col.Enum) != len(HarmonizedFunctions) {
		t.Error("Expected harmonized_function to carry the full enum")
	}

	kind := ByName("PUC_dictionary").Column("kind")
	if kind == nil || len(kind.Enum) != 3 {
		t.Error("Expected PUC kind enum {F, A, O}")
	}
}
