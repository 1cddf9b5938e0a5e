package domain

// Result is a serializable snapshot of a finished parse.
// Values holds only the flags that were found, keyed by identifier.
type Result struct {
	Schema      string         `json:"schema" yaml:"schema"`
	Usage       string         `json:"usage" yaml:"usage"`
	Valid       bool           `json:"valid" yaml:"valid"`
	Cardinality int            `json:"cardinality" yaml:"cardinality"`
	Values      map[string]any `json:"values" yaml:"values"`
	Unexpected  []string       `json:"unexpected,omitempty" yaml:"unexpected,omitempty"`
	ErrorCode   string         `json:"error_code,omitempty" yaml:"error_code,omitempty"`
	Error       string         `json:"error,omitempty" yaml:"error,omitempty"`
}
