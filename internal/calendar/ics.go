// Package calendar renders event drafts as iCalendar (RFC 5545) data.
package calendar

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"

	"github.com/salhuss/agentic-calender-app/internal/models"
)

// ErrNothingToExport is returned when none of the drafts has a start time.
var ErrNothingToExport = errors.New("calendar: no scheduled drafts to export")

// Encode writes a VCALENDAR holding one VEVENT per scheduled draft and
// returns how many events were written. Drafts without a start time are
// skipped. stamp becomes every event's DTSTAMP.
func Encode(w io.Writer, prodID string, stamp time.Time, drafts ...models.EventDraft) (int, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, prodID)

	for i := range drafts {
		if drafts[i].Start == nil {
			continue
		}
		cal.Children = append(cal.Children, toVEvent(&drafts[i], stamp))
	}
	if len(cal.Children) == 0 {
		return 0, ErrNothingToExport
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return 0, fmt.Errorf("calendar: encoding: %w", err)
	}
	return len(cal.Children), nil
}

// toVEvent converts a draft that has a start time into a VEVENT.
func toVEvent(d *models.EventDraft, stamp time.Time) *ical.Component {
	ve := ical.NewComponent(ical.CompEvent)
	ve.Props.SetText(ical.PropUID, uuid.NewString())
	ve.Props.SetText(ical.PropSummary, d.Title)
	ve.Props.SetDateTime(ical.PropDateTimeStamp, stamp.UTC())

	if d.AllDay {
		// DTEND is exclusive for DATE values, so the event ends on the next day.
		start := *d.Start
		day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
		ve.Props.SetDate(ical.PropDateTimeStart, day)
		ve.Props.SetDate(ical.PropDateTimeEnd, day.AddDate(0, 0, 1))
	} else {
		ve.Props.SetDateTime(ical.PropDateTimeStart, d.Start.UTC())
		if d.End != nil {
			ve.Props.SetDateTime(ical.PropDateTimeEnd, d.End.UTC())
		}
	}

	if d.Description != nil && *d.Description != "" {
		ve.Props.SetText(ical.PropDescription, *d.Description)
	}
	if d.Location != nil && *d.Location != "" {
		ve.Props.SetText(ical.PropLocation, *d.Location)
	}
	for _, attendee := range d.Attendees {
		p := ical.NewProp(ical.PropAttendee)
		p.Value = fmt.Sprintf("mailto:%s", attendee)
		ve.Props.Add(p)
	}
	return ve
}
