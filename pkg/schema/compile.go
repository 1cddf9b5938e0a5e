package schema

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/aretw0/args/pkg/domain"
)

type compiler struct {
	strictDuplicates bool
}

// Option configures schema compilation.
type Option func(*compiler)

// WithStrictDuplicates makes Compile fail when an identifier is declared twice
// instead of letting the later declaration replace the earlier one.
func WithStrictDuplicates() Option {
	return func(c *compiler) {
		c.strictDuplicates = true
	}
}

// Compile parses a schema string.
// It fails with a *SchemaError when an element does not start with a letter
// or when its tail is not one of the recognized type suffixes.
func Compile(text string, opts ...Option) (*Schema, error) {
	c := &compiler{}
	for _, opt := range opts {
		opt(c)
	}

	s := &Schema{
		text:  text,
		index: make(map[rune]int),
	}
	if text == "" {
		return s, nil
	}

	for _, raw := range strings.Split(text, ",") {
		element := strings.TrimSpace(raw)
		if element == "" {
			continue
		}
		el, err := parseElement(text, element)
		if err != nil {
			return nil, err
		}
		if _, seen := s.index[el.ID]; seen && c.strictDuplicates {
			return nil, &SchemaError{Schema: text, Element: element, ID: el.ID, Err: ErrDuplicateIdentifier}
		}
		s.elements = append(s.elements, el)
		s.index[el.ID] = len(s.elements) - 1
	}
	return s, nil
}

// MustCompile is like Compile but panics on a malformed schema.
func MustCompile(text string, opts ...Option) *Schema {
	s, err := Compile(text, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

func parseElement(text, element string) (Element, error) {
	id, size := utf8.DecodeRuneInString(element)
	if id == utf8.RuneError || !unicode.IsLetter(id) {
		return Element{}, &SchemaError{Schema: text, Element: element, ID: id, Err: ErrBadIdentifier}
	}
	kind, ok := domain.KindForSuffix(element[size:])
	if !ok {
		return Element{}, &SchemaError{Schema: text, Element: element, ID: id, Err: ErrBadSuffix}
	}
	return Element{ID: id, Kind: kind}, nil
}
