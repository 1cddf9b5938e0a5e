package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/args/pkg/domain"
	"github.com/aretw0/args/pkg/schema"
)

var kindHelp = map[domain.Kind]string{
	domain.KindBoolean: "set by presence, consumes nothing",
	domain.KindString:  "takes the next token verbatim",
	domain.KindInteger: "takes the next token as a base-10 integer",
	domain.KindDouble:  "takes the next token as a floating-point number",
}

// SchemaMarkdown describes a compiled schema as a markdown table.
// Redeclared identifiers are annotated with the declaration that wins.
func SchemaMarkdown(s *schema.Schema) string {
	var b strings.Builder
	b.WriteString("# Schema\n\n")
	if s.Usage() == "" {
		b.WriteString("The schema is empty: no flags are accepted.\n")
		return b.String()
	}
	fmt.Fprintf(&b, "Usage: `%s`\n\n", s.Usage())
	b.WriteString("| Flag | Kind | Suffix | Behavior |\n")
	b.WriteString("|------|------|--------|----------|\n")

	elements := s.Elements()
	for i, el := range elements {
		behavior := kindHelp[el.Kind]
		if redeclaredLater(elements[i+1:], el.ID) {
			behavior += " (overridden by a later declaration)"
		}
		suffix := el.Kind.Suffix()
		if !el.Kind.TakesValue() {
			suffix = "(none)"
		}
		fmt.Fprintf(&b, "| `-%c` | %s | `%s` | %s |\n", el.ID, el.Kind, suffix, behavior)
	}
	return b.String()
}

func redeclaredLater(rest []schema.Element, id rune) bool {
	for _, el := range rest {
		if el.ID == id {
			return true
		}
	}
	return false
}
