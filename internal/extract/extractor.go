// Package extract turns short free-text prompts into structured calendar
// event drafts using deterministic pattern rules. No network or storage is
// involved, so every function here is safe for concurrent use.
package extract

import (
	"log/slog"
	"time"

	"github.com/salhuss/agentic-calender-app/internal/metrics"
	"github.com/salhuss/agentic-calender-app/internal/models"
	"github.com/salhuss/agentic-calender-app/pkg/textutil"
)

// Drafter produces an event draft for a prompt relative to a reference instant.
type Drafter interface {
	Draft(prompt string, now time.Time) models.EventDraft
}

// Extractor is the rule-based Drafter.
type Extractor struct {
	logger *slog.Logger
}

// NewExtractor creates a rule-based extractor.
func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// Scan runs only the entity scanner.
func (e *Extractor) Scan(prompt string) models.EntityBag {
	return ScanEntities(prompt)
}

// Draft runs the full pipeline. now anchors relative dates such as
// "tomorrow" and supplies the time zone of the result.
func (e *Extractor) Draft(prompt string, now time.Time) models.EventDraft {
	bag := ScanEntities(prompt)

	title := SynthesizeTitle(prompt, bag)
	description := ExtractDescription(prompt)
	location := ExtractLocation(prompt)
	attendees := ExtractAttendees(prompt)

	res := ResolveTime(prompt, bag, now)
	start, end := res.Start, res.End

	draft := models.EventDraft{
		Title:       title,
		Description: description,
		Start:       &start,
		End:         &end,
		AllDay:      res.AllDay,
		Location:    location,
		Attendees:   attendees,
		Confidence:  Score(title, &start, &end, location, attendees),
		Entities:    bag,
	}

	metrics.Inc(metrics.DraftsTotal)
	if draft.AllDay {
		metrics.Inc(metrics.AllDayTotal)
	}

	e.logger.Debug("drafted event",
		"title", draft.Title,
		"all_day", draft.AllDay,
		"confidence", draft.Confidence,
		"prompt_prefix", textutil.Truncate(prompt, 60))
	return draft
}
