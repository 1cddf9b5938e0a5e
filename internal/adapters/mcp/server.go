package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/args"
	"github.com/aretw0/args/internal/presentation/tui"
	"github.com/aretw0/args/pkg/domain"
	"github.com/aretw0/args/pkg/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server exposes the parser as an MCP Server.
type Server struct {
	logger    *slog.Logger
	options   []args.Option
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(logger *slog.Logger, opts ...args.Option) *Server {
	s := &Server{
		logger:    logger,
		options:   opts,
		mcpServer: server.NewMCPServer("args-mcp", strings.TrimSpace(args.Version)),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops when ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	// TOOL: parse_args
	parseTool := mcp.NewTool("parse_args",
		mcp.WithDescription("Validate argument tokens against a compact flag schema and return the typed values."),
		mcp.WithString("schema", mcp.Required(), mcp.Description(`Comma-separated flags: "x" boolean, "x*" string, "x#" integer, "x##" double`)),
		mcp.WithArray("args", mcp.Required(), mcp.Description("Argument tokens, e.g. [\"-l\", \"-p\", \"8080\"]"), mcp.WithStringItems()),
		mcp.WithOutputSchema[domain.Result](),
	)
	s.mcpServer.AddTool(parseTool, mcp.NewStructuredToolHandler(s.handleParse))

	// TOOL: explain_schema
	s.mcpServer.AddTool(mcp.NewTool("explain_schema",
		mcp.WithDescription("Describe each flag declared by a schema as a markdown table."),
		mcp.WithString("schema", mcp.Required(), mcp.Description("Schema to describe")),
	), s.handleExplain)
}

func (s *Server) handleParse(ctx context.Context, request mcp.CallToolRequest, input map[string]interface{}) (domain.Result, error) {
	text, _ := input["schema"].(string)
	tokens, err := stringSlice(input["args"])
	if err != nil {
		return domain.Result{}, err
	}

	opts := append([]args.Option{args.WithLogger(s.logger)}, s.options...)
	a, err := args.New(text, tokens, opts...)
	if err != nil {
		return domain.Result{}, fmt.Errorf("schema rejected: %w", err)
	}
	return a.Result(), nil
}

func (s *Server) handleExplain(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("schema")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	compiled, err := schema.Compile(text)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("schema rejected: %v", err)), nil
	}
	return mcp.NewToolResultText(tui.SchemaMarkdown(compiled)), nil
}

func stringSlice(v any) ([]string, error) {
	switch raw := v.(type) {
	case nil:
		return nil, nil
	case []string:
		return raw, nil
	case []interface{}:
		out := make([]string, 0, len(raw))
		for i, item := range raw {
			str, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("args[%d]: expected string, got %T", i, item)
			}
			out = append(out, str)
		}
		return out, nil
	default:
		return nil, errors.New("args: expected an array of strings")
	}
}
