package models

import (
	"time"
)

// DefaultTitle is used when a prompt yields no usable words at all.
const DefaultTitle = "New Event"

// EventDraft is the structured, confidence-scored result of extracting a
// calendar event from free text. When AllDay is true, Start and End are
// always set. When AllDay is false they are either both set or both nil.
type EventDraft struct {
	Title       string     `json:"title" yaml:"title"`
	Description *string    `json:"description" yaml:"description"`
	Start       *time.Time `json:"start_datetime" yaml:"start_datetime"`
	End         *time.Time `json:"end_datetime" yaml:"end_datetime"`
	AllDay      bool       `json:"all_day" yaml:"all_day"`
	Location    *string    `json:"location" yaml:"location"`
	Attendees   []string   `json:"attendees" yaml:"attendees"`
	Confidence  float64    `json:"confidence" yaml:"confidence"`
	Entities    EntityBag  `json:"extracted_entities" yaml:"extracted_entities"`
}

// Duration returns End minus Start, or zero if either bound is missing.
func (d EventDraft) Duration() time.Duration {
	if d.Start == nil || d.End == nil {
		return 0
	}
	return d.End.Sub(*d.Start)
}

// Clone returns a deep copy of the draft so that callers holding the copy
// cannot mutate shared state.
func (d EventDraft) Clone() EventDraft {
	out := d
	if d.Description != nil {
		v := *d.Description
		out.Description = &v
	}
	if d.Start != nil {
		v := *d.Start
		out.Start = &v
	}
	if d.End != nil {
		v := *d.End
		out.End = &v
	}
	if d.Location != nil {
		v := *d.Location
		out.Location = &v
	}
	out.Attendees = append([]string{}, d.Attendees...)
	out.Entities = d.Entities.Clone()
	return out
}
