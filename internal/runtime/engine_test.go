package runtime

import (
	"bytes"
	"log/slog"
	"testing"
	"unicode/utf8"

	"github.com/aretw0/args/pkg/domain"
	"github.com/aretw0/args/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, text string, tokens ...string) *Outcome {
	t.Helper()
	out, err := NewEngine().Parse(schema.MustCompile(text), tokens)
	require.NoError(t, err)
	return out
}

func value(t *testing.T, out *Outcome, id rune) any {
	t.Helper()
	m, ok := out.Registry.Lookup(id)
	require.True(t, ok, "no marshaller for %q", id)
	return m.Value()
}

func TestEngine_EmptySchemaAndTokens(t *testing.T) {
	out := parse(t, "")
	assert.True(t, out.Valid)
	assert.Empty(t, out.Found)
	assert.Nil(t, out.Err)
}

func TestEngine_EmptySchemaWithFlags(t *testing.T) {
	out := parse(t, "", "-x")
	assert.False(t, out.Valid)
	require.NotNil(t, out.Err)
	assert.Equal(t, "Argument(s) -x unexpected.", out.Err.Message())
}

func TestEngine_AllKinds(t *testing.T) {
	out := parse(t, "l,p#,d*,r##", "-l", "-p", "42", "-d", "/usr/logs", "-r", "3.5")
	assert.True(t, out.Valid)
	assert.Len(t, out.Found, 4)
	assert.Equal(t, true, value(t, out, 'l'))
	assert.Equal(t, 42, value(t, out, 'p'))
	assert.Equal(t, "/usr/logs", value(t, out, 'd'))
	assert.Equal(t, 3.5, value(t, out, 'r'))
}

func TestEngine_BooleanDoesNotConsume(t *testing.T) {
	out := parse(t, "x", "-x", "somefile")
	assert.True(t, out.Valid)
	assert.Contains(t, out.Found, 'x')
	assert.Nil(t, out.Err)
}

func TestEngine_NonFlagTokensIgnored(t *testing.T) {
	out := parse(t, "x,y*", "stray", "-x", "another", "-y", "val", "tail")
	assert.True(t, out.Valid)
	assert.Len(t, out.Found, 2)
	assert.Equal(t, "val", value(t, out, 'y'))
}

func TestEngine_BareIntroducer(t *testing.T) {
	out := parse(t, "x", "-")
	assert.True(t, out.Valid)
	assert.Empty(t, out.Found)
}

func TestEngine_BundledFlags(t *testing.T) {
	out := parse(t, "x,y", "-xy")
	assert.True(t, out.Valid)
	assert.Len(t, out.Found, 2)
}

func TestEngine_BundledValueFlagsShareCursor(t *testing.T) {
	out := parse(t, "a*,b#,c", "-abc", "first", "2")
	assert.True(t, out.Valid)
	assert.Equal(t, "first", value(t, out, 'a'))
	assert.Equal(t, 2, value(t, out, 'b'))
	assert.Equal(t, true, value(t, out, 'c'))
}

func TestEngine_ValueMayLookLikeFlag(t *testing.T) {
	out := parse(t, "n#,s*", "-n", "-5", "-s", "-q")
	assert.True(t, out.Valid)
	assert.Equal(t, -5, value(t, out, 'n'))
	assert.Equal(t, "-q", value(t, out, 's'))
}

func TestEngine_MissingValues(t *testing.T) {
	tests := []struct {
		text string
		code domain.ErrorCode
		msg  string
	}{
		{"x*", domain.MissingString, "Could not find string parameter for -x."},
		{"x#", domain.MissingInteger, "Could not find integer parameter for -x."},
		{"x##", domain.MissingDouble, "Could not find double parameter for -x."},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			out := parse(t, tt.text, "-x")
			assert.False(t, out.Valid)
			assert.True(t, out.Halted)
			assert.Empty(t, out.Found)
			require.NotNil(t, out.Err)
			assert.Equal(t, tt.code, out.Err.Code)
			assert.Equal(t, 'x', out.Err.ArgumentID)
			assert.Equal(t, tt.msg, out.Err.Message())
		})
	}
}

func TestEngine_InvalidValues(t *testing.T) {
	out := parse(t, "x##", "-x", "Forty two")
	assert.False(t, out.Valid)
	assert.Empty(t, out.Found)
	require.NotNil(t, out.Err)
	assert.Equal(t, domain.InvalidDouble, out.Err.Code)
	assert.Equal(t, "Forty two", out.Err.Parameter)
	assert.Equal(t, "Argument -x expects a double but was 'Forty two'.", out.Err.Message())
	assert.Equal(t, 0.0, value(t, out, 'x'))

	out = parse(t, "x#", "-x", "Forty two")
	require.NotNil(t, out.Err)
	assert.Equal(t, "Argument -x expects an integer but was 'Forty two'.", out.Err.Message())
	assert.Equal(t, 0, value(t, out, 'x'))
}

func TestEngine_UnexpectedAccumulatesSorted(t *testing.T) {
	out := parse(t, "x", "-zy", "-x", "-a")
	assert.False(t, out.Valid)
	assert.False(t, out.Halted, "unexpected flags do not stop the scan")
	assert.Contains(t, out.Found, 'x')
	require.NotNil(t, out.Err)
	assert.Equal(t, domain.UnexpectedArgument, out.Err.Code)
	assert.Equal(t, []rune{'a', 'y', 'z'}, out.Err.Unexpected)
	assert.Equal(t, "Argument(s) -ayz unexpected.", out.Err.Message())
}

// A value error stops the scan: later flags are neither found nor reported
// as unexpected, while unexpected flags seen earlier are kept.
func TestEngine_HaltsOnValueErrorAfterUnexpected(t *testing.T) {
	out := parse(t, "a,n#,b", "-q", "-a", "-n", "oops", "-b", "-w")
	assert.False(t, out.Valid)
	assert.True(t, out.Halted)

	assert.Contains(t, out.Found, 'a')
	assert.NotContains(t, out.Found, 'n')
	assert.NotContains(t, out.Found, 'b')

	assert.Contains(t, out.Unexpected, 'q')
	assert.NotContains(t, out.Unexpected, 'w')

	require.NotNil(t, out.Err)
	assert.Equal(t, domain.InvalidInteger, out.Err.Code)
	assert.Equal(t, []rune{'q'}, out.Err.Unexpected)
	assert.Equal(t, "Argument -n expects an integer but was 'oops'.", out.Err.Message())
}

func TestEngine_HaltsMidBundle(t *testing.T) {
	out := parse(t, "a,n#,b", "-anb")
	assert.True(t, out.Halted)
	assert.Contains(t, out.Found, 'a')
	assert.NotContains(t, out.Found, 'b')
	assert.Equal(t, domain.MissingInteger, out.Err.Code)
}

func TestEngine_DuplicateSchemaIdentifierUsesLastKind(t *testing.T) {
	out := parse(t, "x,x#", "-x", "7")
	assert.True(t, out.Valid)
	assert.Equal(t, 7, value(t, out, 'x'))
}

func TestEngine_RepeatedFlagOverwrites(t *testing.T) {
	out := parse(t, "x#", "-x", "1", "-x", "2")
	assert.True(t, out.Valid)
	assert.Len(t, out.Found, 1)
	assert.Equal(t, 2, value(t, out, 'x'))
}

func TestEngine_Hooks(t *testing.T) {
	var flags []rune
	var unexpected []rune
	var errs []*domain.ArgsError
	var completed []bool

	eng := NewEngine(WithLifecycleHooks(domain.ParseHooks{
		OnFlag:       func(e *domain.FlagEvent) { flags = append(flags, e.ID) },
		OnUnexpected: func(id rune) { unexpected = append(unexpected, id) },
		OnError:      func(err *domain.ArgsError) { errs = append(errs, err) },
		OnComplete:   func(valid bool) { completed = append(completed, valid) },
	}))

	_, err := eng.Parse(schema.MustCompile("a,b#"), []string{"-ab", "3", "-c"})
	require.NoError(t, err)

	assert.Equal(t, []rune{'a', 'b'}, flags)
	assert.Equal(t, []rune{'c'}, unexpected)
	require.Len(t, errs, 1)
	assert.Equal(t, domain.UnexpectedArgument, errs[0].Code)
	assert.Equal(t, []bool{false}, completed)

	errs = nil
	_, err = eng.Parse(schema.MustCompile("b#"), []string{"-b"})
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, domain.MissingInteger, errs[0].Code)
}

func TestEngine_LogsDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := NewEngine(WithLogger(logger)).Parse(schema.MustCompile("x#"), []string{"file", "-x", "nope"})
	require.NoError(t, err)

	logs := buf.String()
	assert.Contains(t, logs, `msg="parse started" flags=x tokens=3`)
	assert.Contains(t, logs, "skipping non-flag token")
	assert.Contains(t, logs, "flag value rejected")
	assert.Contains(t, logs, "parse halted")
}

func TestEngine_IndependentParses(t *testing.T) {
	eng := NewEngine()
	s := schema.MustCompile("x#")

	first, err := eng.Parse(s, []string{"-x", "1"})
	require.NoError(t, err)
	second, err := eng.Parse(s, []string{"-x", "2"})
	require.NoError(t, err)

	assert.Equal(t, 1, value(t, first, 'x'))
	assert.Equal(t, 2, value(t, second, 'x'))
}

func TestEngine_DoubleDashIsUnexpectedIdentifier(t *testing.T) {
	out := parse(t, "x", "--x")
	assert.False(t, out.Valid)
	assert.Equal(t, map[rune]struct{}{'-': {}}, out.Unexpected)
	assert.Contains(t, out.Found, 'x')
	require.NotNil(t, out.Err)
	assert.Equal(t, "Argument(s) -- unexpected.", out.Err.Message())

	out = parse(t, "y", "--x")
	require.NotNil(t, out.Err)
	assert.Equal(t, "Argument(s) --x unexpected.", out.Err.Message())
}

func TestEngine_InvalidUTF8ReportsReplacementRune(t *testing.T) {
	out := parse(t, "x", "-\xff\xfex")
	assert.False(t, out.Valid)
	assert.Equal(t, map[rune]struct{}{utf8.RuneError: {}}, out.Unexpected)
	assert.Contains(t, out.Found, 'x')
}
