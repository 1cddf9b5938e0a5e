package schema

import (
	"github.com/aretw0/args/pkg/domain"
)

// Element is one compiled schema entry.
type Element struct {
	ID   rune
	Kind domain.Kind
}

// String renders the element back to its schema form (e.g. "p#").
func (e Element) String() string {
	return string(e.ID) + e.Kind.Suffix()
}

// Schema is a compiled schema. It is immutable after Compile returns.
type Schema struct {
	text     string
	elements []Element
	index    map[rune]int
}

// Text returns the schema exactly as it was given to Compile.
func (s *Schema) Text() string { return s.text }

// Len returns the number of distinct identifiers declared.
func (s *Schema) Len() int { return len(s.index) }

// IsEmpty reports whether the schema text is empty.
func (s *Schema) IsEmpty() bool { return s.text == "" }

// Elements returns the compiled elements in declaration order.
// Redeclared identifiers appear once per declaration.
func (s *Schema) Elements() []Element {
	out := make([]Element, len(s.elements))
	copy(out, s.elements)
	return out
}

// Lookup returns the effective element for an identifier.
// When an identifier was declared twice, the later declaration is returned.
func (s *Schema) Lookup(id rune) (Element, bool) {
	i, ok := s.index[id]
	if !ok {
		return Element{}, false
	}
	return s.elements[i], true
}

// Usage renders the one-line usage string, "-[schema]", or "" for an empty schema.
func (s *Schema) Usage() string {
	if s.text == "" {
		return ""
	}
	return "-[" + s.text + "]"
}
