package load

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// TableData holds the contents of one tabular source file
type TableData struct {
	Header []string
	Rows   [][]string
}

// ReadCSV reads a CSV file, decoding it as UTF-8 when valid and
// falling back to Windows-1252 and then ISO-8859-1 for the legacy
// dictionary exports.
func ReadCSV(path string) (*TableData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	text, err := decodeText(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("file %s is empty", path)
	}

	return &TableData{Header: records[0], Rows: records[1:]}, nil
}

// decodeText runs the encoding cascade. Windows-1252 is tried before
// ISO-8859-1 because it maps the C1 range to punctuation the exports
// actually use; ISO-8859-1 is total over all byte values and so
// always succeeds.
func decodeText(raw []byte) (string, error) {
	if utf8.Valid(raw) {
		return string(raw), nil
	}

	if decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw); err == nil && !strings.ContainsRune(string(decoded), utf8.RuneError) {
		return string(decoded), nil
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
