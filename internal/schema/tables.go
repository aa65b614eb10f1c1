package schema

func ptr(f float64) *float64 { return &f }

// unitInterval bounds probabilities and cleaned weight fractions
var unitInterval = &Range{Min: ptr(0), Max: ptr(1)}

// nonNegative bounds raw composition values, which are not
// weight-fraction normalized and so have no upper bound.
var nonNegative = &Range{Min: ptr(0)}

// tables lists every CP_DSSTox table in dependency order: dictionary
// tables first, then DSSTox and its identifiers, then the fact tables
// that reference them. Loading in this order keeps every foreign key
// satisfiable.
var tables = []Table{
	{
		Name: "document_dictionary",
		Columns: []Column{
			{Name: "document_id", Type: TypeText, NotNull: true},
			{Name: "title", Type: TypeText},
			{Name: "subtitle", Type: TypeText},
			{Name: "doc_date", Type: TypeText},
		},
		PrimaryKey: []string{"document_id"},
	},
	{
		Name: "chemical_dictionary",
		Columns: []Column{
			{Name: "chemical_id", Type: TypeText, NotNull: true},
			{Name: "raw_chem_name", Type: TypeText},
			{Name: "raw_casrn", Type: TypeText},
			{Name: "preferred_name", Type: TypeText},
			{Name: "preferred_casrn", Type: TypeText},
			{Name: "DTXSID", Type: TypeText},
			{Name: "curation_level", Type: TypeText, Enum: CurationLevels},
		},
		PrimaryKey: []string{"chemical_id"},
	},
	{
		Name: "list_presence_dictionary",
		Columns: []Column{
			{Name: "list_presence_id", Type: TypeText, NotNull: true},
			{Name: "name", Type: TypeText},
			{Name: "definition", Type: TypeText},
			{Name: "kind", Type: TypeText, NotNull: true, Enum: ListPresenceKinds},
		},
		PrimaryKey: []string{"list_presence_id"},
	},
	{
		Name: "PUC_dictionary",
		Columns: []Column{
			{Name: "puc_id", Type: TypeText, NotNull: true},
			{Name: "gen_cat", Type: TypeText},
			{Name: "prod_fam", Type: TypeText},
			{Name: "prod_type", Type: TypeText},
			{Name: "description", Type: TypeText},
			{Name: "puc_code", Type: TypeText},
			{Name: "kind", Type: TypeText, NotNull: true, Enum: PUCKinds},
		},
		PrimaryKey: []string{"puc_id"},
	},
	{
		Name: "functional_use_dictionary",
		Columns: []Column{
			{Name: "chemical_id", Type: TypeText, NotNull: true},
			{Name: "functional_use_id", Type: TypeText, NotNull: true},
			{Name: "report_funcuse", Type: TypeText},
			{Name: "oecd_function", Type: TypeText},
		},
		PrimaryKey: []string{"functional_use_id"},
		ForeignKeys: []ForeignKey{
			{Column: "chemical_id", RefTable: "chemical_dictionary", RefColumn: "chemical_id"},
		},
	},
	{
		Name: "Identifier",
		Columns: []Column{
			{Name: "id", Type: TypeInteger, AutoIncrement: true},
			{Name: "IDENTIFIER", Type: TypeText, NotNull: true},
			{Name: "CASRN", Type: TypeText, NotNull: true},
			{Name: "ALTERNATIVE_IDENTIFIER", Type: TypeText},
		},
		PrimaryKey: []string{"id"},
	},
	{
		Name: "DSSTox",
		Columns: []Column{
			{Name: "DTXSID", Type: TypeText, NotNull: true},
			{Name: "PREFERRED_NAME", Type: TypeText, NotNull: true},
			{Name: "CASRN", Type: TypeText, NotNull: true},
			{Name: "INCHIKEY", Type: TypeText},
			{Name: "IUPAC_NAME", Type: TypeText},
			{Name: "SMILES", Type: TypeText},
			{Name: "MOLECULAR_FORMULA", Type: TypeText},
			{Name: "AVERAGE_MASS", Type: TypeReal},
			{Name: "MONOISOTOPIC_MASS", Type: TypeReal},
			{Name: "QSAR_READY_SMILES", Type: TypeText},
			{Name: "MS_READY_SMILES", Type: TypeText},
			{Name: "IDENTIFIER", Type: TypeText},
		},
		PrimaryKey: []string{"DTXSID"},
		ForeignKeys: []ForeignKey{
			// IDENTIFIER is not unique in the parent (one row per
			// alternative identifier), so the reference cannot be an
			// SQL constraint.
			{Column: "IDENTIFIER", RefTable: "Identifier", RefColumn: "IDENTIFIER", SkipDDL: true},
		},
	},
	{
		Name: "QSUR_data",
		Columns: []Column{
			{Name: "DTXSID", Type: TypeText, NotNull: true},
			{Name: "preferred_name", Type: TypeText},
			{Name: "preferred_casrn", Type: TypeText},
			{Name: "harmonized_function", Type: TypeText, NotNull: true, Enum: HarmonizedFunctions},
			{Name: "probability", Type: TypeReal, Bounds: unitInterval},
		},
		PrimaryKey: []string{"DTXSID", "harmonized_function"},
		ForeignKeys: []ForeignKey{
			{Column: "DTXSID", RefTable: "DSSTox", RefColumn: "DTXSID"},
		},
	},
	{
		Name: "functional_use_data",
		Columns: []Column{
			{Name: "document_id", Type: TypeText, NotNull: true},
			{Name: "chemical_id", Type: TypeText, NotNull: true},
			{Name: "functional_use_id", Type: TypeText, NotNull: true},
		},
		PrimaryKey: []string{"document_id", "chemical_id", "functional_use_id"},
		ForeignKeys: []ForeignKey{
			{Column: "document_id", RefTable: "document_dictionary", RefColumn: "document_id"},
			{Column: "chemical_id", RefTable: "chemical_dictionary", RefColumn: "chemical_id"},
			{Column: "functional_use_id", RefTable: "functional_use_dictionary", RefColumn: "functional_use_id"},
		},
	},
	{
		Name: "product_composition_data",
		Columns: []Column{
			{Name: "id", Type: TypeInteger, AutoIncrement: true},
			{Name: "document_id", Type: TypeText, NotNull: true},
			{Name: "product_id", Type: TypeText},
			{Name: "chemical_id", Type: TypeText, NotNull: true},
			{Name: "functional_use_id", Type: TypeText},
			{Name: "puc_id", Type: TypeText},
			{Name: "classification", Type: TypeText, Enum: Classifications},
			{Name: "prod_title", Type: TypeText},
			{Name: "brand_name", Type: TypeText},
			{Name: "raw_min_comp", Type: TypeReal, Bounds: nonNegative},
			{Name: "raw_central_comp", Type: TypeReal, Bounds: nonNegative},
			{Name: "raw_max_comp", Type: TypeReal, Bounds: nonNegative},
			{Name: "clean_min_wf", Type: TypeReal, Bounds: unitInterval},
			{Name: "clean_central_wf", Type: TypeReal, Bounds: unitInterval},
			{Name: "clean_max_wf", Type: TypeReal, Bounds: unitInterval},
		},
		PrimaryKey: []string{"id"},
		ForeignKeys: []ForeignKey{
			{Column: "document_id", RefTable: "document_dictionary", RefColumn: "document_id"},
			{Column: "chemical_id", RefTable: "chemical_dictionary", RefColumn: "chemical_id"},
			{Column: "functional_use_id", RefTable: "functional_use_dictionary", RefColumn: "functional_use_id"},
			{Column: "puc_id", RefTable: "PUC_dictionary", RefColumn: "puc_id"},
		},
	},
	{
		Name: "list_presence_data",
		Columns: []Column{
			{Name: "document_id", Type: TypeText, NotNull: true},
			{Name: "chemical_id", Type: TypeText, NotNull: true},
			{Name: "list_presence_id", Type: TypeText, NotNull: true},
		},
		PrimaryKey: []string{"document_id", "chemical_id", "list_presence_id"},
		ForeignKeys: []ForeignKey{
			{Column: "document_id", RefTable: "document_dictionary", RefColumn: "document_id"},
			{Column: "chemical_id", RefTable: "chemical_dictionary", RefColumn: "chemical_id"},
			{Column: "list_presence_id", RefTable: "list_presence_dictionary", RefColumn: "list_presence_id"},
		},
	},
	{
		Name: "HHE_data",
		Columns: []Column{
			{Name: "document_id", Type: TypeText, NotNull: true},
			{Name: "chemical_id", Type: TypeText, NotNull: true},
		},
		PrimaryKey: []string{"document_id", "chemical_id"},
		ForeignKeys: []ForeignKey{
			{Column: "document_id", RefTable: "document_dictionary", RefColumn: "document_id"},
			{Column: "chemical_id", RefTable: "chemical_dictionary", RefColumn: "chemical_id"},
		},
	},
}

// Tables returns all table definitions in FK-safe load order
func Tables() []Table {
	return tables
}

// ByName returns the named table definition, or nil if unknown
func ByName(name string) *Table {
	for i := range tables {
		if tables[i].Name == name {
			return &tables[i]
		}
	}
	return nil
}
