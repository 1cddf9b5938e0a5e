package runtime

import (
	"errors"
	"io"
	"log/slog"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/args/pkg/domain"
	"github.com/aretw0/args/pkg/marshal"
	"github.com/aretw0/args/pkg/schema"
)

// FlagIntroducer marks a token as a group of flag identifiers.
const FlagIntroducer = "-"

// Engine walks argument tokens against a compiled schema.
// An Engine holds no per-parse state and may be reused.
type Engine struct {
	logger *slog.Logger
	hooks  domain.ParseHooks
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the structured logger used for parse diagnostics.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.ParseHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// NewEngine creates a new engine.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Outcome is the state left behind by one parse.
type Outcome struct {
	Registry   *marshal.Registry
	Found      map[rune]struct{}
	Unexpected map[rune]struct{}
	Valid      bool
	// Err is the last recorded error, nil when Valid.
	Err *domain.ArgsError
	// Halted is set when a marshaller error stopped the scan early.
	Halted bool
}

func newOutcome(reg *marshal.Registry) *Outcome {
	return &Outcome{
		Registry:   reg,
		Found:      make(map[rune]struct{}),
		Unexpected: make(map[rune]struct{}),
		Valid:      true,
	}
}

// Parse compiles the schema's marshallers and walks tokens left to right.
//
// Tokens without the flag introducer are skipped. Every character after the
// introducer is looked up as its own flag. Unknown flags are collected and make
// the outcome invalid without stopping the scan; a marshaller failure records
// its error and stops the scan immediately.
//
// Identifiers are decoded as UTF-8. Each invalid byte decodes to
// utf8.RuneError, which no schema can declare, so a run of bad bytes is
// reported as a single unexpected U+FFFD identifier.
func (e *Engine) Parse(s *schema.Schema, tokens []string) (*Outcome, error) {
	reg, err := marshal.FromSchema(s)
	if err != nil {
		return nil, err
	}
	out := newOutcome(reg)
	e.logger.Debug("parse started", "flags", string(reg.IDs()), "tokens", len(tokens))

	if s.IsEmpty() && len(tokens) == 0 {
		e.complete(out)
		return out, nil
	}

	cursor := marshal.NewCursor(tokens)
	for {
		tok, ok := cursor.Next()
		if !ok {
			break
		}
		if !strings.HasPrefix(tok, FlagIntroducer) {
			e.logger.Debug("skipping non-flag token", "token", tok, "pos", cursor.Pos()-1)
			continue
		}
		if err := e.parseElements(out, tok[len(FlagIntroducer):], cursor); err != nil {
			out.Halted = true
			e.logger.Debug("parse halted", "err", err, "remaining", cursor.Remaining())
			break
		}
	}

	e.complete(out)
	return out, nil
}

func (e *Engine) parseElements(out *Outcome, ids string, cursor *marshal.Cursor) error {
	for len(ids) > 0 {
		id, size := utf8.DecodeRuneInString(ids)
		ids = ids[size:]
		if err := e.parseElement(out, id, cursor); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) parseElement(out *Outcome, id rune, cursor *marshal.Cursor) error {
	m, ok := out.Registry.Lookup(id)
	if !ok {
		out.Unexpected[id] = struct{}{}
		out.Valid = false
		out.Err = &domain.ArgsError{
			Code:       domain.UnexpectedArgument,
			Unexpected: sortedIDs(out.Unexpected),
		}
		e.logger.Debug("unexpected flag", "flag", string(id))
		if e.hooks.OnUnexpected != nil {
			e.hooks.OnUnexpected(id)
		}
		return nil
	}

	if err := m.Set(cursor); err != nil {
		out.Valid = false
		out.Err = argsError(id, err, out.Unexpected)
		e.logger.Debug("flag value rejected", "flag", string(id), "kind", m.Kind().String(), "err", err)
		if e.hooks.OnError != nil {
			e.hooks.OnError(out.Err)
		}
		return out.Err
	}

	out.Found[id] = struct{}{}
	e.logger.Debug("flag parsed", "flag", string(id), "kind", m.Kind().String())
	if e.hooks.OnFlag != nil {
		e.hooks.OnFlag(&domain.FlagEvent{ID: id, Kind: m.Kind(), Value: m.Value()})
	}
	return nil
}

func (e *Engine) complete(out *Outcome) {
	if out.Err != nil && out.Err.Code == domain.UnexpectedArgument && e.hooks.OnError != nil {
		e.hooks.OnError(out.Err)
	}
	if e.hooks.OnComplete != nil {
		e.hooks.OnComplete(out.Valid)
	}
}

func argsError(id rune, err error, unexpected map[rune]struct{}) *domain.ArgsError {
	ae := &domain.ArgsError{
		ArgumentID: id,
		Unexpected: sortedIDs(unexpected),
	}
	var ve *domain.ValueError
	if errors.As(err, &ve) {
		ae.Code = ve.Code
		ae.Parameter = ve.Parameter
	}
	return ae
}

func sortedIDs(set map[rune]struct{}) []rune {
	if len(set) == 0 {
		return nil
	}
	ids := make([]rune, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
