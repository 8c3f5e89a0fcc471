// Package mcp implements the Model Context Protocol server for agentic-calendar.
package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/salhuss/agentic-calender-app/internal/calendar"
	"github.com/salhuss/agentic-calender-app/internal/extract"
)

// Options identifies the server and controls how reference instants are read.
type Options struct {
	Name      string
	Version   string
	ProductID string

	// Now supplies the reference instant when a call omits "now".
	// Defaults to time.Now.
	Now func() time.Time
}

// Server wraps an MCPServer with agentic-calendar dependencies.
type Server struct {
	mcp     *mcpserver.MCPServer
	drafter extract.Drafter
	prodID  string
	now     func() time.Time
	logger  *slog.Logger
}

// NewServer creates a new MCP server. A nil drafter makes the drafting
// tools return an error response instead of panicking.
func NewServer(d extract.Drafter, opts Options, logger *slog.Logger) *Server {
	if opts.Name == "" {
		opts.Name = "agentic-calendar"
	}
	if opts.Version == "" {
		opts.Version = "1.0.0"
	}
	if opts.ProductID == "" {
		opts.ProductID = "-//agentic-calendar//EN"
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		drafter: d,
		prodID:  opts.ProductID,
		now:     opts.Now,
		logger:  logger,
	}

	mcpSrv := mcpserver.NewMCPServer(
		opts.Name,
		opts.Version,
		mcpserver.WithToolCapabilities(true),
	)

	mcpSrv.AddTool(buildDraftEventTool(), s.handleDraftEvent)
	mcpSrv.AddTool(buildScanEntitiesTool(), s.handleScanEntities)
	mcpSrv.AddTool(buildExportICSTool(), s.handleExportICS)

	s.mcp = mcpSrv
	return s
}

// MCPServer returns the underlying mcp-go MCPServer for use with ServeStdio.
func (s *Server) MCPServer() *mcpserver.MCPServer {
	return s.mcp
}

// HandleDraftEvent is the exported handler for the "draft_event" tool.
// It is exposed for direct testing without the mcp-go transport layer.
func (s *Server) HandleDraftEvent(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	return s.handleDraftEvent(ctx, req)
}

// HandleScanEntities is the exported handler for the "scan_entities" tool.
func (s *Server) HandleScanEntities(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	return s.handleScanEntities(ctx, req)
}

// HandleExportICS is the exported handler for the "export_ics" tool.
func (s *Server) HandleExportICS(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	return s.handleExportICS(ctx, req)
}

// --- helpers ---

// toolResultJSON marshals v to JSON and returns it as a tool text result.
func toolResultJSON(v any) (*mcpgo.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("mcp: marshaling result: %w", err)
	}
	return mcpgo.NewToolResultText(string(b)), nil
}

// referenceInstant parses the optional "now" argument, falling back to the
// server clock.
func (s *Server) referenceInstant(req mcpgo.CallToolRequest) (time.Time, error) {
	raw := strings.TrimSpace(req.GetString("now", ""))
	if raw == "" {
		return s.now(), nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("now must be an RFC 3339 timestamp: %w", err)
	}
	return t, nil
}

// --- tool definitions ---

func buildDraftEventTool() mcpgo.Tool {
	return mcpgo.NewTool("draft_event",
		mcpgo.WithDescription("Turn a natural-language request into a structured calendar event draft with a confidence score."),
		mcpgo.WithString("prompt",
			mcpgo.Required(),
			mcpgo.Description("Free text such as \"Lunch with Sara at Cafe Rio tomorrow 12pm\""),
		),
		mcpgo.WithString("now",
			mcpgo.Description("Reference instant as RFC 3339; relative words like \"tomorrow\" resolve against it (default: server clock)"),
		),
	)
}

func buildScanEntitiesTool() mcpgo.Tool {
	return mcpgo.NewTool("scan_entities",
		mcpgo.WithDescription("List the raw times, dates, locations, people and keywords found in a prompt."),
		mcpgo.WithString("prompt",
			mcpgo.Required(),
			mcpgo.Description("Free text to scan"),
		),
	)
}

func buildExportICSTool() mcpgo.Tool {
	return mcpgo.NewTool("export_ics",
		mcpgo.WithDescription("Draft an event from a prompt and return it as an iCalendar (.ics) document."),
		mcpgo.WithString("prompt",
			mcpgo.Required(),
			mcpgo.Description("Free text describing the event"),
		),
		mcpgo.WithString("now",
			mcpgo.Description("Reference instant as RFC 3339 (default: server clock)"),
		),
	)
}

// --- handlers ---

func (s *Server) handleDraftEvent(_ context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	if s.drafter == nil {
		return mcpgo.NewToolResultError("drafter is unavailable"), nil
	}

	prompt := req.GetString("prompt", "")
	if strings.TrimSpace(prompt) == "" {
		return mcpgo.NewToolResultError("prompt is required and must not be empty"), nil
	}

	now, err := s.referenceInstant(req)
	if err != nil {
		return mcpgo.NewToolResultError(err.Error()), nil
	}

	draft := s.drafter.Draft(prompt, now)
	s.logger.Info("mcp: drafted event", "title", draft.Title, "confidence", draft.Confidence)
	return toolResultJSON(draft)
}

func (s *Server) handleScanEntities(_ context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	prompt := req.GetString("prompt", "")
	if strings.TrimSpace(prompt) == "" {
		return mcpgo.NewToolResultError("prompt is required and must not be empty"), nil
	}
	return toolResultJSON(extract.ScanEntities(prompt))
}

func (s *Server) handleExportICS(_ context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	if s.drafter == nil {
		return mcpgo.NewToolResultError("drafter is unavailable"), nil
	}

	prompt := req.GetString("prompt", "")
	if strings.TrimSpace(prompt) == "" {
		return mcpgo.NewToolResultError("prompt is required and must not be empty"), nil
	}

	now, err := s.referenceInstant(req)
	if err != nil {
		return mcpgo.NewToolResultError(err.Error()), nil
	}

	draft := s.drafter.Draft(prompt, now)

	var buf bytes.Buffer
	if _, err := calendar.Encode(&buf, s.prodID, now, draft); err != nil {
		if errors.Is(err, calendar.ErrNothingToExport) {
			return mcpgo.NewToolResultError("prompt has no date or time to export"), nil
		}
		return mcpgo.NewToolResultErrorf("export failed: %s", err.Error()), nil
	}

	s.logger.Info("mcp: exported event", "title", draft.Title)
	return mcpgo.NewToolResultText(buf.String()), nil
}
