package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/salhuss/agentic-calender-app/internal/batch"
	"github.com/salhuss/agentic-calender-app/internal/config"
	"github.com/salhuss/agentic-calender-app/internal/extract"
	"github.com/salhuss/agentic-calender-app/internal/models"
)

const refFlag = "2026-10-16T09:30:00Z"

var refNow = time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)

func useTestConfig(t *testing.T) {
	t.Helper()
	prev := cfg
	cfg = &config.Config{
		Logging:  config.LoggingConfig{Level: "error", Format: "text"},
		Calendar: config.CalendarConfig{Timezone: "UTC", ProductID: "-//test//EN"},
		Cache:    config.CacheConfig{Enabled: true, TTL: time.Minute, CleanupInterval: time.Minute},
		Batch:    config.BatchConfig{Concurrency: 2},
		MCP:      config.MCPConfig{Name: "agentic-calendar", Version: "test"},
	}
	t.Cleanup(func() { cfg = prev })
}

func sampleDraft() models.EventDraft {
	return extract.NewExtractor(nil).Draft("Lunch at Cafe Rio tomorrow 12pm", refNow)
}

func TestDraftCmd_JSON(t *testing.T) {
	useTestConfig(t)

	var out bytes.Buffer
	cmd := draftCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--now", refFlag, "Meeting", "tomorrow", "at", "2pm", "for", "3", "hours"})
	require.NoError(t, cmd.Execute())

	var d models.EventDraft
	require.NoError(t, json.Unmarshal(out.Bytes(), &d))
	require.NotNil(t, d.Start)
	assert.True(t, d.Start.Equal(time.Date(2026, 10, 17, 14, 0, 0, 0, time.UTC)))
	assert.Equal(t, 3*time.Hour, d.Duration())
}

func TestDraftCmd_BadNow(t *testing.T) {
	useTestConfig(t)

	cmd := draftCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--now", "tomorrow", "Lunch"})
	assert.Error(t, cmd.Execute())
}

func TestDraftCmd_NoArgs(t *testing.T) {
	useTestConfig(t)

	cmd := draftCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})
	assert.Error(t, cmd.Execute())
}

func TestScanCmd_YAML(t *testing.T) {
	useTestConfig(t)

	var out bytes.Buffer
	cmd := scanCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--format", "yaml", "Dinner with Sara, Tom at 7pm"})
	require.NoError(t, cmd.Execute())

	var bag models.EntityBag
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &bag))
	assert.Equal(t, []string{"dinner"}, bag.Keywords)
	require.Len(t, bag.Times, 1)
	assert.Equal(t, "7", bag.Times[0].Hour)
}

func TestBatchCmd_JSONL(t *testing.T) {
	useTestConfig(t)

	var out bytes.Buffer
	cmd := batchCmd()
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader("Call at 3pm\n\nConference all day tomorrow\n"))
	cmd.SetArgs([]string{"--now", refFlag})
	require.NoError(t, cmd.Execute())

	var results []batch.Result
	sc := bufio.NewScanner(&out)
	for sc.Scan() {
		var r batch.Result
		require.NoError(t, json.Unmarshal(sc.Bytes(), &r))
		results = append(results, r)
	}
	require.Len(t, results, 2)
	assert.Equal(t, "Call at 3pm", results[0].Prompt)
	assert.Equal(t, "Conference all day tomorrow", results[1].Prompt)
	assert.True(t, results[1].Draft.AllDay)
}

func TestBatchCmd_EmptyInput(t *testing.T) {
	useTestConfig(t)

	cmd := batchCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader("\n\n"))
	cmd.SetArgs([]string{"--now", refFlag})

	err := cmd.Execute()
	assert.ErrorIs(t, err, batch.ErrNoPrompts)
}

func TestWriteDraft_Text(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeDraft(&out, "text", "-//test//EN", refNow, sampleDraft()))

	text := out.String()
	assert.Contains(t, text, "Title:")
	assert.Contains(t, text, "Location:    Cafe Rio")
	assert.Contains(t, text, "Sat 17 Oct 2026 12:00 to 13:00 UTC (1h0m0s)")
	assert.Contains(t, text, "Confidence:  0.80")
}

func TestWriteDraft_TextAllDay(t *testing.T) {
	var out bytes.Buffer
	d := extract.NewExtractor(nil).Draft("Gym", refNow)
	require.NoError(t, writeDraft(&out, "text", "-//test//EN", refNow, d))

	assert.Contains(t, out.String(), "When:        Fri 16 Oct 2026 (all day)")
	assert.Contains(t, out.String(), "Attendees:   -")
	assert.Contains(t, out.String(), "Location:    -")
}

func TestDescribeWhen_Unscheduled(t *testing.T) {
	assert.Equal(t, "unscheduled", describeWhen(models.EventDraft{}))
}

func TestWriteDraft_ICS(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeDraft(&out, "ics", "-//test//EN", refNow, sampleDraft()))

	assert.Contains(t, out.String(), "DTSTART:20261017T120000Z")
	assert.Contains(t, out.String(), "LOCATION:Cafe Rio")
}

func TestWriteDraft_UnsupportedFormat(t *testing.T) {
	err := writeDraft(&bytes.Buffer{}, "xml", "-//test//EN", refNow, sampleDraft())
	assert.Error(t, err)
}

func TestWriteResults_YAML(t *testing.T) {
	results := []batch.Result{{ID: "a", Prompt: "Gym", Draft: extract.NewExtractor(nil).Draft("Gym", refNow)}}

	var out bytes.Buffer
	require.NoError(t, writeResults(&out, "yaml", "-//test//EN", refNow, results))
	assert.Contains(t, out.String(), "prompt: Gym")
	assert.Contains(t, out.String(), "title: Gym")
}

func TestReferenceNow(t *testing.T) {
	useTestConfig(t)

	got, err := referenceNow(refFlag)
	require.NoError(t, err)
	assert.True(t, got.Equal(refNow))

	got, err = referenceNow("")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, got.Location())
}

func TestNewDrafter_CacheToggle(t *testing.T) {
	useTestConfig(t)
	_, cached := newDrafter(newLogger()).(interface{ Len() int })
	assert.True(t, cached)

	cfg.Cache.Enabled = false
	_, isExtractor := newDrafter(newLogger()).(*extract.Extractor)
	assert.True(t, isExtractor)
}
