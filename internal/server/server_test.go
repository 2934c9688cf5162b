package server

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rileyhilliard/sysmon/internal/collector"
	"github.com/rileyhilliard/sysmon/internal/dispatch"
	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// missingPID is outside any real pid range on test hosts.
const missingPID = 2147000000

func testServer(t *testing.T) *Server {
	t.Helper()
	c := collector.New(logger.Noop())
	d := dispatch.New(c, logger.Noop())
	return New(d, c, Options{Name: "sysmon-test", Version: "0.0.0-test"}, logger.Noop())
}

func callTool(t *testing.T, s *Server, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	handler := s.toolHandler(name)

	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args

	result, err := handler(context.Background(), req)
	require.NoError(t, err, "handlers report failures in the result, not as errors")
	require.NotNil(t, result)
	return result
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	tc, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "content type %T", result.Content[0])
	return tc.Text
}

func TestBuildToolShapes(t *testing.T) {
	c := collector.New(logger.Noop())
	d := dispatch.New(c, logger.Noop())

	ops := d.Operations()
	require.Len(t, ops, 8)

	for _, op := range ops {
		tool := buildTool(op)
		assert.Equal(t, op.Name, tool.Name)
		assert.Equal(t, op.Description, tool.Description)

		for _, p := range op.Params {
			assert.Contains(t, tool.InputSchema.Properties, p.Name,
				"%s must declare %s", op.Name, p.Name)
			if p.Required {
				assert.Contains(t, tool.InputSchema.Required, p.Name)
			}
		}
	}
}

func TestToolHandlerUnknownOperation(t *testing.T) {
	s := testServer(t)

	result := callTool(t, s, "bogus_operation", nil)

	assert.True(t, result.IsError)
	text := resultText(t, result)
	assert.Contains(t, text, string(errors.ErrUnknownOperation))
	assert.Contains(t, text, "bogus_operation")
}

func TestToolHandlerInvalidArgument(t *testing.T) {
	s := testServer(t)

	result := callTool(t, s, "get_cpu_usage", map[string]any{"interval": float64(-1)})

	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), string(errors.ErrInvalidArgument))
}

func TestToolHandlerMemoryInfo(t *testing.T) {
	s := testServer(t)

	result := callTool(t, s, "get_memory_info", nil)

	require.False(t, result.IsError)
	text := resultText(t, result)
	assert.Contains(t, text, `"ram"`)
	assert.Contains(t, text, `"swap"`)
	assert.Contains(t, text, `"total_gb"`)
}

func TestKillMissingPidStaysProtocolError(t *testing.T) {
	s := testServer(t)

	result := callTool(t, s, "kill_process", map[string]any{})

	assert.True(t, result.IsError, "validation failures are not kill payloads")
	assert.Contains(t, resultText(t, result), string(errors.ErrInvalidArgument))
}

func TestKillMissingProcessReturnsFailurePayload(t *testing.T) {
	s := testServer(t)

	result := callTool(t, s, "kill_process", map[string]any{"pid": float64(missingPID)})

	require.False(t, result.IsError, "OS failures surface in the result body")
	text := resultText(t, result)
	assert.Contains(t, text, `"success": false`)
	assert.Contains(t, text, `"pid": 2147000000`)
	assert.Contains(t, text, "No process found with PID 2147000000")
}

func TestKillFailurePayloadMapping(t *testing.T) {
	tests := []struct {
		name        string
		op          string
		err         error
		wantPayload bool
	}{
		{
			name:        "not found maps to payload",
			op:          "kill_process",
			err:         errors.New(errors.ErrNotFound, "No process found with PID 42", ""),
			wantPayload: true,
		},
		{
			name:        "permission denied maps to payload",
			op:          "kill_process",
			err:         errors.New(errors.ErrPermission, "Access denied to terminate process 1", ""),
			wantPayload: true,
		},
		{
			name:        "underlying maps to payload",
			op:          "kill_process",
			err:         errors.New(errors.ErrUnderlying, "Signal failed", ""),
			wantPayload: true,
		},
		{
			name:        "invalid argument stays an error",
			op:          "kill_process",
			err:         errors.New(errors.ErrInvalidArgument, "Missing required argument 'pid'", ""),
			wantPayload: false,
		},
		{
			name:        "other operations never map",
			op:          "get_process_info",
			err:         errors.New(errors.ErrNotFound, "No process found with PID 42", ""),
			wantPayload: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, ok := killFailurePayload(tt.op, map[string]any{"pid": float64(42)}, tt.err)
			assert.Equal(t, tt.wantPayload, ok)
			if ok {
				assert.False(t, payload.Success)
				assert.Equal(t, int32(42), payload.PID)
				assert.NotEmpty(t, payload.Error)
			}
		})
	}
}

func TestRenderPayloadIndentation(t *testing.T) {
	text, err := renderPayload(map[string]any{"pid": 1, "name": "init"})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"name\": \"init\",\n  \"pid\": 1\n}", text)
}

func TestWireError(t *testing.T) {
	err := errors.New(errors.ErrNotFound, "No process found with PID 7", "")
	assert.Equal(t, "NOT_FOUND: No process found with PID 7", wireError(err))
}

func TestMessageOfPlainError(t *testing.T) {
	assert.Equal(t, "boom", messageOf(assertableError("boom")))
}

type assertableError string

func (e assertableError) Error() string { return string(e) }
