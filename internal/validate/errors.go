// Package validate enforces the CP_DSSTox write-time constraint model:
// primary-key uniqueness, referential integrity, enumerated-domain
// membership, and numeric-range validity. Every violation is a typed,
// row-level error the loader can downgrade to a warning.
package validate

import (
	"fmt"
	"strings"
)

// ReferentialIntegrityError reports a foreign-key value with no
// corresponding row in the referenced table.
type ReferentialIntegrityError struct {
	Table    string
	Column   string
	RefTable string
	Value    string
}

func (e *ReferentialIntegrityError) Error() string {
	return fmt.Sprintf("%s.%s = %q has no matching row in %s", e.Table, e.Column, e.Value, e.RefTable)
}

// DomainConstraintError reports a value outside a column's closed set,
// or a NULL in a NOT NULL column (Allowed is empty in that case).
type DomainConstraintError struct {
	Table   string
	Field   string
	Value   string
	Allowed []string
}

func (e *DomainConstraintError) Error() string {
	if len(e.Allowed) == 0 {
		return fmt.Sprintf("%s.%s must not be null", e.Table, e.Field)
	}
	return fmt.Sprintf("%s.%s = %q not in allowed set {%s}", e.Table, e.Field, e.Value, strings.Join(e.Allowed, ", "))
}

// RangeConstraintError reports a numeric value outside its declared
// bounds. A nil bound is open on that side.
type RangeConstraintError struct {
	Table string
	Field string
	Value float64
	Min   *float64
	Max   *float64
}

func (e *RangeConstraintError) Error() string {
	lo, hi := "-inf", "+inf"
	if e.Min != nil {
		lo = fmt.Sprintf("%g", *e.Min)
	}
	if e.Max != nil {
		hi = fmt.Sprintf("%g", *e.Max)
	}
	return fmt.Sprintf("%s.%s = %g outside [%s, %s]", e.Table, e.Field, e.Value, lo, hi)
}

// UniquenessViolation reports a row whose primary key already exists.
// The loader treats this as a recoverable, skippable condition.
type UniquenessViolation struct {
	Table      string
	KeyColumns []string
	Key        string
}

func (e *UniquenessViolation) Error() string {
	return fmt.Sprintf("%s already contains a row with (%s) = %q", e.Table, strings.Join(e.KeyColumns, ", "), e.Key)
}

// MissingPreconditionError reports a directory/file layout problem
// that makes a load impossible. It is fatal, not row-level.
type MissingPreconditionError struct {
	Path   string
	Reason string
}

func (e *MissingPreconditionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}
