// Package server exposes the operation registry over the stdio protocol.
// Tools are registered straight from the dispatcher's table so the protocol
// surface and the CLI cannot drift apart.
package server

import (
	"context"
	stderrors "errors"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/rileyhilliard/sysmon/internal/collector"
	"github.com/rileyhilliard/sysmon/internal/dispatch"
	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/logger"
)

// Options configure the protocol server identity.
type Options struct {
	// Name is reported in the initialize handshake.
	Name string
	// Version is reported in the initialize handshake.
	Version string
}

// Server wires the dispatcher and the status resource into a stdio
// protocol server.
type Server struct {
	mcp        *mcpserver.MCPServer
	dispatcher *dispatch.Dispatcher
	collector  *collector.Collector
	log        logger.Logger
}

// New builds the protocol server. All eight operations become tools; the
// status overview becomes the system://status resource.
func New(d *dispatch.Dispatcher, c *collector.Collector, opts Options, log logger.Logger) *Server {
	if log == nil {
		log = logger.Noop()
	}
	if opts.Name == "" {
		opts.Name = "sysmon"
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}

	s := &Server{
		mcp: mcpserver.NewMCPServer(
			opts.Name,
			opts.Version,
			mcpserver.WithToolCapabilities(true),
			mcpserver.WithResourceCapabilities(true, true),
			mcpserver.WithRecovery(),
		),
		dispatcher: d,
		collector:  c,
		log:        log,
	}

	s.registerTools()
	s.registerResources()
	return s
}

// Serve runs the newline-delimited JSON-RPC loop on stdin/stdout until the
// stream closes. Logs go to stderr only; stdout belongs to the protocol.
func (s *Server) Serve() error {
	s.log.Info("serving on stdio")
	if err := mcpserver.ServeStdio(s.mcp); err != nil {
		return errors.Wrap(err, "Protocol server terminated")
	}
	return nil
}

func (s *Server) registerTools() {
	for _, op := range s.dispatcher.Operations() {
		s.mcp.AddTool(buildTool(op), s.toolHandler(op.Name))
	}
}

func (s *Server) registerResources() {
	resource := mcp.NewResource(
		"system://status",
		"Current System Status",
		mcp.WithResourceDescription("Real-time system status overview"),
		mcp.WithMIMEType("text/plain"),
	)

	s.mcp.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		snap, err := s.collector.StatusOverview(ctx)
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "system://status",
				MIMEType: "text/plain",
				Text:     collector.RenderStatus(snap),
			},
		}, nil
	})
}

// buildTool converts one registry entry into a tool declaration with a
// JSON-schema argument description.
func buildTool(op dispatch.Operation) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(op.Description)}

	for _, p := range op.Params {
		propOpts := []mcp.PropertyOption{}
		if p.Description != "" {
			propOpts = append(propOpts, mcp.Description(p.Description))
		}
		if p.Required {
			propOpts = append(propOpts, mcp.Required())
		}

		switch p.Type {
		case dispatch.TypeString:
			if len(p.Enum) > 0 {
				propOpts = append(propOpts, mcp.Enum(p.Enum...))
			}
			if def, ok := p.Default.(string); ok {
				propOpts = append(propOpts, mcp.DefaultString(def))
			}
			opts = append(opts, mcp.WithString(p.Name, propOpts...))
		case dispatch.TypeBoolean:
			if def, ok := p.Default.(bool); ok {
				propOpts = append(propOpts, mcp.DefaultBool(def))
			}
			opts = append(opts, mcp.WithBoolean(p.Name, propOpts...))
		default:
			// Integers ride the JSON number type; the dispatcher rejects
			// fractional values.
			if def, ok := floatDefault(p.Default); ok {
				propOpts = append(propOpts, mcp.DefaultNumber(def))
			}
			opts = append(opts, mcp.WithNumber(p.Name, propOpts...))
		}
	}

	return mcp.NewTool(op.Name, opts...)
}

// toolHandler adapts one operation to the protocol tool-call shape.
func (s *Server) toolHandler(name string) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()

		result, err := s.dispatcher.Dispatch(ctx, name, args)
		if err != nil {
			if payload, ok := killFailurePayload(name, args, err); ok {
				return textResult(payload)
			}
			s.log.Warn("%s failed: %v", name, err)
			return mcp.NewToolResultError(wireError(err)), nil
		}

		return textResult(result)
	}
}

// killFailurePayload converts kill_process OS failures into the
// success/error body the tool reports instead of a protocol error.
// Validation failures (bad or missing pid) stay protocol-visible errors.
func killFailurePayload(name string, args map[string]any, err error) (*collector.KillResult, bool) {
	if name != "kill_process" {
		return nil, false
	}
	if !errors.IsCode(err, errors.ErrNotFound) &&
		!errors.IsCode(err, errors.ErrPermission) &&
		!errors.IsCode(err, errors.ErrUnderlying) {
		return nil, false
	}

	pid := 0
	if raw, ok := args["pid"]; ok {
		if f, ok := raw.(float64); ok {
			pid = int(f)
		}
	}

	return &collector.KillResult{
		Success: false,
		PID:     int32(pid),
		Error:   messageOf(err),
	}, true
}

// textResult renders a payload as indented JSON inside a text content block.
func textResult(payload any) (*mcp.CallToolResult, error) {
	text, err := renderPayload(payload)
	if err != nil {
		return mcp.NewToolResultError(wireError(err)), nil
	}
	return mcp.NewToolResultText(text), nil
}

// wireError renders a taxonomy error for the wire: "CODE: message".
func wireError(err error) string {
	code := errors.CodeOf(err)
	return string(code) + ": " + messageOf(err)
}

// messageOf extracts the structured message without the CLI decoration.
func messageOf(err error) string {
	var serr *errors.Error
	if stderrors.As(err, &serr) {
		return serr.Message
	}
	return err.Error()
}
