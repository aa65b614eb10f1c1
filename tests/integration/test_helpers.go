//go:build integration
// +build integration

package integration

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/A1-D0/CP-DSSTox/internal/db"
)

// writeSampleFiles lays out a complete sample data directory with one
// known-bad row per constraint kind: a PUC row with an invalid kind, a
// QSUR row with probability above 1, and a duplicate HHE pair.
func writeSampleFiles(t *testing.T, dir string) {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]any{
		{"DTXSID", "PREFERRED_NAME", "CASRN", "INCHIKEY", "IUPAC_NAME", "SMILES",
			"MOLECULAR_FORMULA", "AVERAGE_MASS", "MONOISOTOPIC_MASS",
			"QSAR_READY_SMILES", "MS_READY_SMILES", "IDENTIFIER"},
		{"DTXSID001", "Formaldehyde", "50-00-0", "WSFSSNUMVMOOMR-UHFFFAOYSA-N",
			"formaldehyde", "C=O", "CH2O", "30.026", "30.011", "C=O", "C=O",
			"50-00-0|FORMALDEHYDE"},
		{"DTXSID002", "Bisphenol A", "80-05-7", "IISBACLAFKSPIT-UHFFFAOYSA-N",
			"bisphenol A", "CC(C)(c1ccc(O)cc1)c1ccc(O)cc1", "C15H16O2",
			"228.29", "228.115", "", "", "80-05-7"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("Failed to compute cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("Failed to write sheet row: %v", err)
		}
	}
	if err := f.SaveAs(filepath.Join(dir, "DSSTox_sample.xlsx")); err != nil {
		t.Fatalf("Failed to save workbook: %v", err)
	}

	files := map[string]string{
		"document_dictionary_sample.csv": "document_id,title,subtitle,doc_date\n" +
			"DOC1,Safety Data Sheet,NA,16-Dec-20\n",
		"chemical_dictionary_sample.csv": "chemical_id,raw_chem_name,raw_casrn,preferred_name,preferred_casrn,DTXSID,curation_level\n" +
			"CHEM1,formaldehyde,50-00-0,Formaldehyde,50-00-0,DTXSID001,C\n",
		"list_presence_dictionary_sample.csv": "list_presence_id,name,definition,kind\n" +
			"LP1,Canada,Products sold in Canada,location\n",
		"PUC_dictionary_sample.csv": "puc_id,gen_cat,prod_fam,prod_type,description,puc_code,kind\n" +
			"PUC1,Personal care,hair,shampoo,Hair shampoo,PC-HS,F\n" +
			"PUC2,Personal care,hair,conditioner,Hair conditioner,PC-HC,Z\n",
		"functional_use_dictionary_sample.csv": "chemical_id,functional_use_id,report_funcuse,oecd_function\n" +
			"CHEM1,FU1,preservative,Preservative\n",
		"QSUR_data_sample.csv": "DTXSID,preferred_name,preferred_casrn,harmonized_function,probability\n" +
			"DTXSID001,Formaldehyde,50-00-0,preservative,0.97\n" +
			"DTXSID001,Formaldehyde,50-00-0,surfactant,1.5\n",
		"functional_use_data_sample.csv": "document_id,chemical_id,functional_use_id\n" +
			"DOC1,CHEM1,FU1\n",
		"product_composition_data_sample.csv": "document_id,product_id,chemical_id,functional_use_id,puc_id,classification,prod_title,brand_name,raw_min_comp,raw_central_comp,raw_max_comp,clean_min_wf,clean_central_wf,clean_max_wf\n" +
			"DOC1,PROD1,CHEM1,FU1,PUC1,MA,Shampoo,BrandX,5%,NA,10%,0.05,NA,0.10\n",
		"list_presence_data_sample.csv": "document_id,chemical_id,list_presence_id\n" +
			"DOC1,CHEM1,LP1\n",
		"HHE_data_sample.csv": "document_id,chemical_id\n" +
			"DOC1,CHEM1\n" +
			"DOC1,CHEM1\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
}

// openSQLite connects to a SQLite database file and registers cleanup
func openSQLite(t *testing.T, ctx context.Context, path string) db.Conn {
	t.Helper()

	conn, err := db.NewSQLiteClient(ctx, path)
	if err != nil {
		t.Fatalf("Failed to connect to SQLite: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close(ctx) })
	return conn
}

// countRows returns the row count of a table
func countRows(t *testing.T, ctx context.Context, conn db.Conn, table string) int {
	t.Helper()

	rows, err := conn.QueryStrings(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM "%s"`, table))
	if err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}
	if len(rows) != 1 || len(rows[0]) != 1 {
		t.Fatalf("Unexpected count result for %s: %v", table, rows)
	}
	n, err := strconv.Atoi(rows[0][0])
	if err != nil {
		t.Fatalf("Non-numeric count for %s: %v", table, err)
	}
	return n
}

// verifyRowCount checks that a table holds exactly want rows
func verifyRowCount(t *testing.T, ctx context.Context, conn db.Conn, table string, want int) {
	t.Helper()

	if got := countRows(t, ctx, conn, table); got != want {
		t.Errorf("Expected %d rows in %s, got %d", want, table, got)
	}
}
