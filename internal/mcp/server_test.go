package mcp

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salhuss/agentic-calender-app/internal/extract"
	"github.com/salhuss/agentic-calender-app/internal/models"
)

var fixedNow = time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(extract.NewExtractor(logger), Options{
		ProductID: "-//test//EN",
		Now:       func() time.Time { return fixedNow },
	}, logger)
}

// makeReq builds a CallToolRequest with the given arguments.
func makeReq(toolName string, args map[string]any) mcpgo.CallToolRequest {
	req := mcpgo.CallToolRequest{}
	req.Params.Name = toolName
	req.Params.Arguments = args
	return req
}

// textContent extracts the first TextContent string from a CallToolResult.
func textContent(t *testing.T, result *mcpgo.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content, "expected at least one content item")
	tc, ok := result.Content[0].(mcpgo.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])
	return tc.Text
}

func TestDraftEvent_UsesServerClock(t *testing.T) {
	srv := newTestServer(t)

	result, err := srv.HandleDraftEvent(context.Background(), makeReq("draft_event", map[string]any{
		"prompt": "Meeting with John tomorrow at 3pm",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError, textContent(t, result))

	var draft models.EventDraft
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &draft))

	require.NotNil(t, draft.Start)
	assert.True(t, draft.Start.Equal(time.Date(2026, 10, 17, 15, 0, 0, 0, time.UTC)))
	assert.Equal(t, []string{"John"}, draft.Entities.People)
	assert.InDelta(t, 0.6, draft.Confidence, 1e-9)
}

func TestDraftEvent_ExplicitNow(t *testing.T) {
	srv := newTestServer(t)

	result, err := srv.HandleDraftEvent(context.Background(), makeReq("draft_event", map[string]any{
		"prompt": "Conference all day tomorrow",
		"now":    "2026-12-31T08:00:00Z",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var draft models.EventDraft
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &draft))
	assert.True(t, draft.AllDay)
	require.NotNil(t, draft.Start)
	assert.Equal(t, 2027, draft.Start.Year())
	assert.Equal(t, time.January, draft.Start.Month())
	assert.Equal(t, 1, draft.Start.Day())
}

func TestDraftEvent_Errors(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name string
		args map[string]any
	}{
		{"missing prompt", map[string]any{}},
		{"blank prompt", map[string]any{"prompt": "   "}},
		{"bad now", map[string]any{"prompt": "Lunch tomorrow", "now": "next tuesday"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := srv.HandleDraftEvent(context.Background(), makeReq("draft_event", tt.args))
			require.NoError(t, err)
			assert.True(t, result.IsError)
		})
	}
}

func TestDraftEvent_NilDrafter(t *testing.T) {
	srv := NewServer(nil, Options{}, nil)

	result, err := srv.HandleDraftEvent(context.Background(), makeReq("draft_event", map[string]any{
		"prompt": "Lunch tomorrow",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestScanEntities(t *testing.T) {
	srv := newTestServer(t)

	result, err := srv.HandleScanEntities(context.Background(), makeReq("scan_entities", map[string]any{
		"prompt": "Lunch at Cafe Rio tomorrow 12pm",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var bag models.EntityBag
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &bag))
	require.Len(t, bag.Times, 1)
	assert.Equal(t, "12", bag.Times[0].Hour)
	assert.Equal(t, models.MeridiemPM, bag.Times[0].Meridiem)
	assert.Equal(t, []string{"tomorrow"}, bag.Dates)
	assert.Equal(t, []string{"lunch"}, bag.Keywords)
}

func TestScanEntities_BlankPrompt(t *testing.T) {
	srv := newTestServer(t)

	result, err := srv.HandleScanEntities(context.Background(), makeReq("scan_entities", map[string]any{"prompt": ""}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestExportICS(t *testing.T) {
	srv := newTestServer(t)

	result, err := srv.HandleExportICS(context.Background(), makeReq("export_ics", map[string]any{
		"prompt": "Meeting with John tomorrow at 3pm",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError, textContent(t, result))

	ics := textContent(t, result)
	assert.Contains(t, ics, "BEGIN:VCALENDAR")
	assert.Contains(t, ics, "PRODID:-//test//EN")
	assert.Contains(t, ics, "DTSTART:20261017T150000Z")
	assert.Contains(t, ics, "DTEND:20261017T160000Z")
}

func TestExportICS_UndatedPromptIsAllDayToday(t *testing.T) {
	srv := newTestServer(t)

	result, err := srv.HandleExportICS(context.Background(), makeReq("export_ics", map[string]any{
		"prompt": "Gym",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	ics := textContent(t, result)
	assert.Contains(t, ics, "SUMMARY:Gym")
	assert.Contains(t, ics, "DTSTART;VALUE=DATE:20261016")
	assert.Contains(t, ics, "DTEND;VALUE=DATE:20261017")
}

func TestExportICS_BlankPrompt(t *testing.T) {
	srv := newTestServer(t)

	result, err := srv.HandleExportICS(context.Background(), makeReq("export_ics", map[string]any{
		"prompt": " ",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}
