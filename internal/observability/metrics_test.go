package observability

import (
	"testing"

	"github.com/aretw0/args"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Hooks(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	_, err := args.New("l,p#,d*", []string{"-l", "-p", "80", "-d", "x"}, args.WithHooks(m.Hooks()))
	require.NoError(t, err)
	_, err = args.New("p#", []string{"-p", "eighty"}, args.WithHooks(m.Hooks()))
	require.NoError(t, err)
	_, err = args.New("p#", []string{"-q"}, args.WithHooks(m.Hooks()))
	require.NoError(t, err)
	m.ObserveSchemaError()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.parses.WithLabelValues("valid")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.parses.WithLabelValues("invalid")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.parses.WithLabelValues("schema_error")))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.flags.WithLabelValues("boolean")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.flags.WithLabelValues("integer")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.flags.WithLabelValues("string")))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.errors.WithLabelValues("invalid_integer")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.errors.WithLabelValues("unexpected_argument")))
}

func TestMetrics_ValueErrorReplacesEarlierUnexpected(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	a, err := args.New("p#", []string{"-q", "-p", "eighty"}, args.WithHooks(m.Hooks()))
	require.NoError(t, err)
	require.Equal(t, []rune{'q'}, a.Unexpected())

	// Only the recorded error is counted.
	assert.Equal(t, 1.0, testutil.ToFloat64(m.errors.WithLabelValues("invalid_integer")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.errors.WithLabelValues("unexpected_argument")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.parses.WithLabelValues("invalid")))
}

func TestNewMetrics_RegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics(reg)
	assert.Panics(t, func() { NewMetrics(reg) }, "duplicate registration must fail")
}
