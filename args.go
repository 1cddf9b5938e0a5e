package args

import (
	"io"
	"log/slog"
	"math"
	"sort"
	"strconv"

	"github.com/aretw0/args/internal/runtime"
	"github.com/aretw0/args/pkg/domain"
	"github.com/aretw0/args/pkg/schema"
)

// Args is the result of parsing one token list against one schema.
// It is read-only after New returns and safe to query in any order.
type Args struct {
	schema  *schema.Schema
	outcome *runtime.Outcome
}

type config struct {
	logger     *slog.Logger
	hooks      domain.ParseHooks
	schemaOpts []schema.Option
	compiled   *schema.Schema
}

// Option defines a functional option for configuring a parse.
type Option func(*config)

// WithLogger sets a structured logger for parse diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.ParseHooks) Option {
	return func(c *config) {
		c.hooks = hooks
	}
}

// WithStrictDuplicates rejects schemas that declare an identifier twice.
// By default the later declaration replaces the earlier one.
func WithStrictDuplicates() Option {
	return func(c *config) {
		c.schemaOpts = append(c.schemaOpts, schema.WithStrictDuplicates())
	}
}

// WithSchema reuses an already compiled schema instead of compiling the text
// passed to New. The text argument is then ignored.
func WithSchema(s *schema.Schema) Option {
	return func(c *config) {
		c.compiled = s
	}
}

// New compiles the schema and parses the tokens.
// It returns an error only when the schema is malformed; problems with the
// tokens are reported by IsValid and ErrorMessage.
func New(schemaText string, tokens []string, opts ...Option) (*Args, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := cfg.compiled
	if s == nil {
		var err error
		s, err = schema.Compile(schemaText, cfg.schemaOpts...)
		if err != nil {
			return nil, err
		}
	}

	engine := runtime.NewEngine(
		runtime.WithLogger(cfg.logger.With("schema", s.Text())),
		runtime.WithLifecycleHooks(cfg.hooks),
	)
	outcome, err := engine.Parse(s, tokens)
	if err != nil {
		return nil, err
	}
	return &Args{schema: s, outcome: outcome}, nil
}

// IsValid reports whether every flag was expected and every value converted.
func (a *Args) IsValid() bool {
	return a.outcome.Valid
}

// Cardinality returns the number of distinct flags found.
func (a *Args) Cardinality() int {
	return len(a.outcome.Found)
}

// Has reports whether the flag was found.
func (a *Args) Has(id rune) bool {
	_, ok := a.outcome.Found[id]
	return ok
}

// Found returns the identifiers of the flags found, in ascending order.
func (a *Args) Found() []rune {
	return sorted(a.outcome.Found)
}

// Unexpected returns the identifiers seen but not declared, in ascending order.
func (a *Args) Unexpected() []rune {
	return sorted(a.outcome.Unexpected)
}

// GetString returns the value of a string flag, or "".
func (a *Args) GetString(id rune) string {
	v, _ := a.value(id).(string)
	return v
}

// GetInt returns the value of an integer flag, or 0.
func (a *Args) GetInt(id rune) int {
	v, _ := a.value(id).(int)
	return v
}

// GetDouble returns the value of a double flag, or 0.
func (a *Args) GetDouble(id rune) float64 {
	v, _ := a.value(id).(float64)
	return v
}

// GetBoolean returns the value of a boolean flag, or false.
func (a *Args) GetBoolean(id rune) bool {
	v, _ := a.value(id).(bool)
	return v
}

func (a *Args) value(id rune) any {
	m, ok := a.outcome.Registry.Lookup(id)
	if !ok {
		return nil
	}
	return m.Value()
}

// Usage returns "-[schema]", or "" when the schema is empty.
func (a *Args) Usage() string {
	return a.schema.Usage()
}

// Schema returns the compiled schema.
func (a *Args) Schema() *schema.Schema {
	return a.schema
}

// Err returns the recorded error as a *domain.ArgsError, or nil.
func (a *Args) Err() error {
	if a.outcome.Err == nil {
		return nil
	}
	return a.outcome.Err
}

// ErrorMessage returns the message for the recorded error.
// It returns domain.ErrNoError when the parse recorded none.
func (a *Args) ErrorMessage() (string, error) {
	if a.outcome.Err == nil {
		return "", domain.ErrNoError
	}
	return a.outcome.Err.Message(), nil
}

// Result returns a serializable snapshot of the parse.
// Non-finite doubles appear in Values as strings ("NaN", "+Inf", "-Inf")
// because JSON has no literal for them.
func (a *Args) Result() domain.Result {
	res := domain.Result{
		Schema:      a.schema.Text(),
		Usage:       a.Usage(),
		Valid:       a.IsValid(),
		Cardinality: a.Cardinality(),
		Values:      make(map[string]any, len(a.outcome.Found)),
	}
	for _, id := range a.Found() {
		res.Values[string(id)] = snapshotValue(a.value(id))
	}
	for _, id := range a.Unexpected() {
		res.Unexpected = append(res.Unexpected, string(id))
	}
	if a.outcome.Err != nil {
		res.ErrorCode = a.outcome.Err.Code.String()
		res.Error = a.outcome.Err.Message()
	}
	return res
}

func snapshotValue(v any) any {
	if f, ok := v.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return v
}

func sorted(set map[rune]struct{}) []rune {
	ids := make([]rune, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
