package schema

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON serializes the schema as its source text.
func (s *Schema) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}
	return json.Marshal(s.text)
}

// UnmarshalJSON compiles the schema from a JSON string.
// Duplicate identifiers follow the default last-write-wins rule.
func (s *Schema) UnmarshalJSON(data []byte) error {
	if s == nil {
		return fmt.Errorf("schema: UnmarshalJSON on nil pointer")
	}

	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("schema: expected string: %w", err)
	}
	compiled, err := Compile(text)
	if err != nil {
		return err
	}
	*s = *compiled
	return nil
}

type elementJSON struct {
	ID     string `json:"id"`
	Kind   string `json:"kind"`
	Suffix string `json:"suffix"`
}

// MarshalJSON serializes the element as its identifier, kind name and suffix.
func (e Element) MarshalJSON() ([]byte, error) {
	return json.Marshal(elementJSON{
		ID:     string(e.ID),
		Kind:   e.Kind.String(),
		Suffix: e.Kind.Suffix(),
	})
}
