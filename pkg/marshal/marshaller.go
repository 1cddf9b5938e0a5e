package marshal

import (
	"fmt"
	"strconv"

	"github.com/aretw0/args/pkg/domain"
)

// Marshaller parses and stores the value of a single flag.
type Marshaller interface {
	// Kind returns the scalar type handled by the marshaller.
	Kind() domain.Kind
	// Set consumes the flag's value from the cursor, if any, and stores it.
	// Failures are reported as *domain.ValueError.
	Set(c *Cursor) error
	// Value returns the stored value, or the kind's zero value if Set never succeeded.
	Value() any
}

// New creates a marshaller for the given kind.
func New(kind domain.Kind) (Marshaller, error) {
	switch kind {
	case domain.KindBoolean:
		return &BooleanMarshaller{}, nil
	case domain.KindString:
		return &StringMarshaller{}, nil
	case domain.KindInteger:
		return &IntegerMarshaller{}, nil
	case domain.KindDouble:
		return &DoubleMarshaller{}, nil
	default:
		return nil, fmt.Errorf("marshal: unsupported kind %v", kind)
	}
}

// BooleanMarshaller sets its value to true on presence and never reads the cursor.
type BooleanMarshaller struct {
	value bool
}

func (m *BooleanMarshaller) Kind() domain.Kind { return domain.KindBoolean }

func (m *BooleanMarshaller) Set(*Cursor) error {
	m.value = true
	return nil
}

func (m *BooleanMarshaller) Value() any { return m.value }

// StringMarshaller stores the next token verbatim.
type StringMarshaller struct {
	value string
}

func (m *StringMarshaller) Kind() domain.Kind { return domain.KindString }

func (m *StringMarshaller) Set(c *Cursor) error {
	tok, ok := c.Next()
	if !ok {
		return &domain.ValueError{Code: domain.MissingCode(m.Kind())}
	}
	m.value = tok
	return nil
}

func (m *StringMarshaller) Value() any { return m.value }

// IntegerMarshaller parses the next token as a base-10 int.
// Signs are accepted; whitespace, separators and base prefixes are not.
type IntegerMarshaller struct {
	value int
}

func (m *IntegerMarshaller) Kind() domain.Kind { return domain.KindInteger }

func (m *IntegerMarshaller) Set(c *Cursor) error {
	tok, ok := c.Next()
	if !ok {
		return &domain.ValueError{Code: domain.MissingCode(m.Kind())}
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return &domain.ValueError{Code: domain.InvalidCode(m.Kind()), Parameter: tok}
	}
	m.value = v
	return nil
}

func (m *IntegerMarshaller) Value() any { return m.value }

// DoubleMarshaller parses the next token as a float64 literal.
// Out-of-range values are rejected rather than stored as infinities.
type DoubleMarshaller struct {
	value float64
}

func (m *DoubleMarshaller) Kind() domain.Kind { return domain.KindDouble }

func (m *DoubleMarshaller) Set(c *Cursor) error {
	tok, ok := c.Next()
	if !ok {
		return &domain.ValueError{Code: domain.MissingCode(m.Kind())}
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return &domain.ValueError{Code: domain.InvalidCode(m.Kind()), Parameter: tok}
	}
	m.value = v
	return nil
}

func (m *DoubleMarshaller) Value() any { return m.value }
