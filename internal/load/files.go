// Package load implements the loader boundary: resolving the source
// file layout, reading CSV/XLSX files, converting raw values, and
// inserting rows with warn-and-continue semantics.
package load

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/A1-D0/CP-DSSTox/internal/validate"
)

const (
	// dsstoxDumpCount is the number of DSSTox XLSX dump files in a
	// full data directory (DSSToxDump1.xlsx .. DSSToxDump13.xlsx).
	dsstoxDumpCount = 13

	// csvRelease is the release suffix of the CP CSV files
	csvRelease = "_20201216.csv"

	sampleCSVSuffix = "_sample.csv"
	sampleXLSXName  = "DSSTox_sample.xlsx"
)

// csvTables lists the tables backed by one CSV file each. DSSTox is
// backed by XLSX dumps and Identifier is derived from them, so
// neither appears here.
var csvTables = []string{
	"document_dictionary",
	"chemical_dictionary",
	"list_presence_dictionary",
	"PUC_dictionary",
	"functional_use_dictionary",
	"QSUR_data",
	"functional_use_data",
	"product_composition_data",
	"list_presence_data",
	"HHE_data",
}

// Layout maps each table to the source files that populate it
type Layout map[string][]string

// FilePaths resolves the full data-directory layout. Individual
// missing files are reported to warn and dropped; a table left with
// no files at all is a fatal precondition failure.
func FilePaths(dataDir string, warn io.Writer) (Layout, error) {
	layout := Layout{}

	for i := 1; i <= dsstoxDumpCount; i++ {
		name := filepath.Join(dataDir, fmt.Sprintf("DSSToxDump%d.xlsx", i))
		layout["DSSTox"] = append(layout["DSSTox"], name)
	}
	for _, table := range csvTables {
		layout[table] = append(layout[table], filepath.Join(dataDir, table+csvRelease))
	}

	return pruneMissing(layout, warn)
}

// SampleFilePaths resolves the smaller sample layout used in test
// mode: one sample file per table.
func SampleFilePaths(dataDir string, warn io.Writer) (Layout, error) {
	layout := Layout{
		"DSSTox": {filepath.Join(dataDir, sampleXLSXName)},
	}
	for _, table := range csvTables {
		layout[table] = append(layout[table], filepath.Join(dataDir, table+sampleCSVSuffix))
	}

	return pruneMissing(layout, warn)
}

// pruneMissing drops files that do not exist. Any table with nothing
// left cannot be loaded, which is fatal before the load begins.
func pruneMissing(layout Layout, warn io.Writer) (Layout, error) {
	for table, paths := range layout {
		var present []string
		for _, p := range paths {
			if _, err := os.Stat(p); err != nil {
				fmt.Fprintf(warn, "File not found: %s\n", p)
				continue
			}
			present = append(present, p)
		}
		if len(present) == 0 {
			return nil, &validate.MissingPreconditionError{
				Path:   table,
				Reason: "no data files present for table",
			}
		}
		layout[table] = present
	}
	return layout, nil
}

// ValidatePreconditions checks the structural preconditions of a
// load: the schema file and the data directory must exist. Violations
// abort the load before any insertion begins.
func ValidatePreconditions(schemaFile, dataDir string) error {
	if _, err := os.Stat(schemaFile); err != nil {
		return &validate.MissingPreconditionError{Path: schemaFile, Reason: "schema file not found"}
	}
	info, err := os.Stat(dataDir)
	if err != nil {
		return &validate.MissingPreconditionError{Path: dataDir, Reason: "data directory not found"}
	}
	if !info.IsDir() {
		return &validate.MissingPreconditionError{Path: dataDir, Reason: "data path is not a directory"}
	}
	return nil
}
