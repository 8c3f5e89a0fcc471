package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/salhuss/agentic-calender-app/internal/batch"
	"github.com/salhuss/agentic-calender-app/internal/calendar"
	"github.com/salhuss/agentic-calender-app/internal/models"
	"github.com/salhuss/agentic-calender-app/pkg/textutil"
)

const descriptionPreview = 80

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return nil
}

// writeDraft renders a single draft in the requested format.
func writeDraft(w io.Writer, format, prodID string, now time.Time, d models.EventDraft) error {
	switch format {
	case "json":
		return writeJSON(w, d)
	case "yaml":
		return writeYAML(w, d)
	case "text":
		return writeDraftText(w, d)
	case "ics":
		if _, err := calendar.Encode(w, prodID, now, d); err != nil {
			return err
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (want json, yaml, text or ics)", format)
	}
}

func writeDraftText(w io.Writer, d models.EventDraft) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Title:       %s\n", d.Title)
	fmt.Fprintf(&b, "When:        %s\n", describeWhen(d))
	fmt.Fprintf(&b, "Location:    %s\n", orDash(d.Location))
	attendees := "-"
	if len(d.Attendees) > 0 {
		attendees = strings.Join(d.Attendees, ", ")
	}
	fmt.Fprintf(&b, "Attendees:   %s\n", attendees)
	if d.Description != nil {
		fmt.Fprintf(&b, "Description: %s\n", textutil.Truncate(*d.Description, descriptionPreview))
	}
	fmt.Fprintf(&b, "Confidence:  %.2f\n", d.Confidence)
	_, err := io.WriteString(w, b.String())
	return err
}

func describeWhen(d models.EventDraft) string {
	switch {
	case d.Start == nil:
		return "unscheduled"
	case d.AllDay:
		return d.Start.Format("Mon 2 Jan 2006") + " (all day)"
	case d.End == nil:
		return d.Start.Format("Mon 2 Jan 2006 15:04 MST")
	default:
		return fmt.Sprintf("%s to %s (%s)",
			d.Start.Format("Mon 2 Jan 2006 15:04"),
			d.End.Format("15:04 MST"),
			d.Duration())
	}
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

// writeResults renders batch output. jsonl writes one result per line.
func writeResults(w io.Writer, format, prodID string, now time.Time, results []batch.Result) error {
	switch format {
	case "jsonl":
		enc := json.NewEncoder(w)
		for i := range results {
			if err := enc.Encode(results[i]); err != nil {
				return fmt.Errorf("encoding result %d: %w", i, err)
			}
		}
		return nil
	case "yaml":
		return writeYAML(w, results)
	case "ics":
		drafts := make([]models.EventDraft, len(results))
		for i := range results {
			drafts[i] = results[i].Draft
		}
		if _, err := calendar.Encode(w, prodID, now, drafts...); err != nil {
			return err
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (want jsonl, yaml or ics)", format)
	}
}
