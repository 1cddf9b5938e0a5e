package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aretw0/args"
	"github.com/aretw0/args/internal/logging"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleParse(t *testing.T) {
	s := NewServer(logging.NewNop())

	res, err := s.handleParse(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"schema": "l,p#",
		"args":   []interface{}{"-l", "-p", "80"},
	})
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, 2, res.Cardinality)
	assert.Equal(t, 80, res.Values["p"])
}

func TestHandleParse_NonFiniteDoubleEncodes(t *testing.T) {
	s := NewServer(logging.NewNop())

	res, err := s.handleParse(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"schema": "x##",
		"args":   []interface{}{"-x", "-Inf"},
	})
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, "-Inf", res.Values["x"])

	_, err = json.Marshal(res)
	assert.NoError(t, err)
}

func TestHandleParse_InvalidArguments(t *testing.T) {
	s := NewServer(logging.NewNop())

	res, err := s.handleParse(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"schema": "p#",
		"args":   []interface{}{"-p", "eighty"},
	})
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Equal(t, "Argument -p expects an integer but was 'eighty'.", res.Error)
}

func TestHandleParse_Rejections(t *testing.T) {
	s := NewServer(logging.NewNop(), args.WithStrictDuplicates())

	_, err := s.handleParse(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"schema": "x,x",
		"args":   []interface{}{},
	})
	assert.ErrorContains(t, err, "schema rejected")

	_, err = s.handleParse(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"schema": "x",
		"args":   []interface{}{"-x", 3},
	})
	assert.ErrorContains(t, err, "args[1]")

	_, err = s.handleParse(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"schema": "x",
		"args":   "-x",
	})
	assert.Error(t, err)
}

func TestHandleExplain(t *testing.T) {
	s := NewServer(logging.NewNop())

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]any{"schema": "v,n#"}
	res, err := s.handleExplain(context.Background(), req)
	require.NoError(t, err)
	require.False(t, res.IsError)
	require.Len(t, res.Content, 1)

	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, "| `-n` | integer |")

	req.Params.Arguments = map[string]any{"schema": "9"}
	res, err = s.handleExplain(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, res.IsError)
}
