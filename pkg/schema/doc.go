// Package schema compiles the compact flag schema used by the argument parser.
//
// A schema is a comma-separated list of elements. Each element is a single
// letter (the flag identifier) followed by an optional type suffix:
//
//	""   boolean
//	"*"  string
//	"#"  integer
//	"##" double
//
// Basic usage:
//
//	s, err := schema.Compile("l,p#,d*")
//	if err != nil {
//	    // A malformed schema is a programmer error.
//	}
//	el, ok := s.Lookup('p') // el.Kind == domain.KindInteger
//
// Empty elements are ignored, so trailing commas and the empty schema are
// accepted. When an identifier is declared twice the later declaration wins,
// unless the schema is compiled with WithStrictDuplicates.
//
// This package has no dependencies beyond the standard library and the
// domain vocabulary.
package schema
