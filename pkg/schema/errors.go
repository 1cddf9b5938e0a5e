package schema

import (
	"errors"
	"fmt"
)

var (
	// ErrBadIdentifier is matched by errors for elements not starting with a letter.
	ErrBadIdentifier = errors.New("bad identifier")
	// ErrBadSuffix is matched by errors for elements whose tail is not a known type.
	ErrBadSuffix = errors.New("bad type suffix")
	// ErrDuplicateIdentifier is matched by errors for redeclared identifiers in strict mode.
	ErrDuplicateIdentifier = errors.New("duplicate identifier")
)

// SchemaError represents a malformed schema element.
type SchemaError struct {
	Schema  string // Full schema text
	Element string // Trimmed element that failed
	ID      rune   // Leading character of the element
	Err     error  // One of the sentinel errors above
}

func (e *SchemaError) Error() string {
	switch e.Err {
	case ErrBadIdentifier:
		return fmt.Sprintf("bad character %q in schema %q", e.ID, e.Schema)
	case ErrBadSuffix:
		return fmt.Sprintf("argument %q has invalid format %q", e.ID, e.Element[len(string(e.ID)):])
	case ErrDuplicateIdentifier:
		return fmt.Sprintf("argument %q declared more than once in schema %q", e.ID, e.Schema)
	default:
		return fmt.Sprintf("schema %q: element %q: %v", e.Schema, e.Element, e.Err)
	}
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}
