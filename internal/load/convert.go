package load

import (
	"strconv"
	"strings"
	"time"
)

// dateFormats are the layouts doc_date values appear in across the
// source documents, tried in order. Non-padded day/month layouts
// accept padded values as well.
var dateFormats = []string{
	"2006-01-02",
	"2-1-2006",
	"2-Jan-06",
	"2-Jan-2006",
	"2-January-2006",
	"January-06",
	"Jan-06",
	"January 2, 2006",
	"January 2006",
	"2006",
	"2/1/2006",
	"1/2/2006",
	"2 January 2006",
	"1.2.2006",
}

// NormalizeNull maps empty strings and the literal "NA" to nil, the
// SQL NULL equivalent.
func NormalizeNull(s string) any {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || trimmed == "NA" {
		return nil
	}
	return s
}

// ParseDate normalizes a date string to YYYY-MM-DD. Unparseable
// dates become nil rather than failing the row.
func ParseDate(s string) any {
	trimmed := strings.TrimSpace(s)
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return nil
}

// ToFloat converts a raw cell to a float, treating a trailing percent
// sign as a fraction ("12%" becomes 0.12).
func ToFloat(s string) (float64, bool) {
	trimmed := strings.TrimSpace(s)
	percent := strings.Contains(trimmed, "%")
	if percent {
		trimmed = strings.TrimSpace(strings.ReplaceAll(trimmed, "%", ""))
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, false
	}
	if percent {
		f /= 100.0
	}
	return f, true
}

// ExplodeIdentifiers splits a DSSTox IDENTIFIER cell on '|'. The
// first token is the identifier kept on the DSSTox row; every further
// token is an alternative identifier. One Identifier row is produced
// per DSSTox row so the reference from DSSTox always resolves;
// alternatives add one row each.
func ExplodeIdentifiers(cell string) (first string, alternatives []string) {
	parts := strings.Split(cell, "|")
	first = strings.TrimSpace(parts[0])
	for _, alt := range parts[1:] {
		if trimmed := strings.TrimSpace(alt); trimmed != "" {
			alternatives = append(alternatives, trimmed)
		}
	}
	return first, alternatives
}
