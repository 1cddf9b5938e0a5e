package observability

import (
	"github.com/aretw0/args/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records parse activity as Prometheus counters.
type Metrics struct {
	parses *prometheus.CounterVec
	flags  *prometheus.CounterVec
	errors *prometheus.CounterVec
}

// NewMetrics creates the counters and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		parses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "args_parses_total",
				Help: "Total number of token lists parsed, by outcome",
			},
			[]string{"outcome"},
		),
		flags: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "args_flags_total",
				Help: "Total number of flags parsed, by kind",
			},
			[]string{"kind"},
		),
		errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "args_errors_total",
				Help: "Total number of recorded parse errors, by code",
			},
			[]string{"code"},
		),
	}
	reg.MustRegister(m.parses, m.flags, m.errors)
	return m
}

// Hooks returns parse hooks feeding the counters.
func (m *Metrics) Hooks() domain.ParseHooks {
	return domain.ParseHooks{
		OnFlag: func(e *domain.FlagEvent) {
			m.flags.WithLabelValues(e.Kind.String()).Inc()
		},
		OnError: func(err *domain.ArgsError) {
			m.errors.WithLabelValues(err.Code.String()).Inc()
		},
		OnComplete: func(valid bool) {
			m.parses.WithLabelValues(outcome(valid)).Inc()
		},
	}
}

// ObserveSchemaError counts a parse rejected because its schema was malformed.
func (m *Metrics) ObserveSchemaError() {
	m.parses.WithLabelValues("schema_error").Inc()
}

func outcome(valid bool) string {
	if valid {
		return "valid"
	}
	return "invalid"
}
