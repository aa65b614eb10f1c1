package load

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, path string, rows [][]any) {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("Failed to build cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("Failed to write row: %v", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save workbook: %v", err)
	}
}

func TestReadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.xlsx")
	writeWorkbook(t, path, [][]any{
		{"DTXSID", "PREFERRED_NAME", "CASRN"},
		{"DTXSID001", "Formaldehyde", "50-00-0"},
		{"DTXSID002", "Bisphenol A", "80-05-7"},
	})

	data, err := ReadXLSX(path)
	if err != nil {
		t.Fatalf("ReadXLSX failed: %v", err)
	}

	if len(data.Header) != 3 || data.Header[0] != "DTXSID" {
		t.Errorf("Unexpected header: %v", data.Header)
	}
	if len(data.Rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(data.Rows))
	}
	if data.Rows[1][1] != "Bisphenol A" {
		t.Errorf("Unexpected row: %v", data.Rows[1])
	}
}

func TestReadXLSXMissing(t *testing.T) {
	if _, err := ReadXLSX(filepath.Join(t.TempDir(), "absent.xlsx")); err == nil {
		t.Error("Expected error for missing workbook")
	}
}
