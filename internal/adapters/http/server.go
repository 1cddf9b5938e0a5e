package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/args"
	"github.com/aretw0/args/internal/observability"
	"github.com/aretw0/args/pkg/schema"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ParseRequest is the body of POST /parse.
type ParseRequest struct {
	Schema string   `json:"schema"`
	Args   []string `json:"args"`
}

// ExplainRequest is the body of POST /explain.
type ExplainRequest struct {
	Schema string `json:"schema"`
}

// ExplainResponse lists the compiled elements of a schema.
type ExplainResponse struct {
	Schema   *schema.Schema   `json:"schema"`
	Usage    string           `json:"usage"`
	Elements []schema.Element `json:"elements"`
}

// ErrorResponse is returned for rejected requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Server exposes the parser over HTTP.
type Server struct {
	Logger  *slog.Logger
	Metrics *observability.Metrics
	Options []args.Option
}

// NewHandler creates a new HTTP handler.
// Metrics are registered with reg and served at /metrics.
func NewHandler(logger *slog.Logger, reg *prometheus.Registry, opts ...args.Option) http.Handler {
	server := &Server{
		Logger:  logger,
		Metrics: observability.NewMetrics(reg),
		Options: opts,
	}
	r := chi.NewRouter()

	r.Get("/health", server.GetHealth)
	r.Get("/info", server.GetInfo)
	r.Post("/parse", server.Parse)
	r.Post("/explain", server.Explain)
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(openapiSpec)
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return r
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"app":     "args-http",
		"version": strings.TrimSpace(args.Version),
	})
}

// Parse handles POST /parse.
// Invalid arguments still answer 200 with valid=false; a malformed schema is a 422.
func (s *Server) Parse(w http.ResponseWriter, r *http.Request) {
	var body ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		s.Logger.Warn("Parse: Invalid request body", "error", err)
		return
	}

	opts := append([]args.Option{
		args.WithLogger(s.Logger),
		args.WithHooks(s.Metrics.Hooks()),
	}, s.Options...)

	a, err := args.New(body.Schema, body.Args, opts...)
	if err != nil {
		s.rejectSchema(w, err)
		return
	}

	res := a.Result()
	s.Logger.Info("parsed arguments", "schema", body.Schema, "valid", res.Valid, "cardinality", res.Cardinality)
	writeJSON(w, http.StatusOK, res)
}

// Explain handles POST /explain.
func (s *Server) Explain(w http.ResponseWriter, r *http.Request) {
	var body ExplainRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		s.Logger.Warn("Explain: Invalid request body", "error", err)
		return
	}

	compiled, err := schema.Compile(body.Schema)
	if err != nil {
		s.rejectSchema(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ExplainResponse{
		Schema:   compiled,
		Usage:    compiled.Usage(),
		Elements: compiled.Elements(),
	})
}

func (s *Server) rejectSchema(w http.ResponseWriter, err error) {
	var se *schema.SchemaError
	if !errors.As(err, &se) {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		s.Logger.Error("schema compilation failed", "error", err)
		return
	}
	if s.Metrics != nil {
		s.Metrics.ObserveSchemaError()
	}
	writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: se.Error()})
	s.Logger.Warn("rejected schema", "error", err)
}

// writeJSON encodes v before writing the status so an encoding failure
// becomes a 500 instead of a truncated 200.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"failed to encode response"}` + "\n"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}
