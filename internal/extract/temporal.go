package extract

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/salhuss/agentic-calender-app/internal/models"
)

const (
	defaultDuration = time.Hour

	// lastMicrosecond is the nanosecond field of 23:59:59.999999.
	lastMicrosecond = int(time.Second - time.Microsecond)

	daysPerWeek = 7
)

// maxDurationHours keeps N hours representable as a time.Duration.
const maxDurationHours = int64(1<<63-1) / int64(time.Hour)

var errInvalidClock = errors.New("invalid clock reading")

// Resolution is the concrete time range resolved for a prompt.
type Resolution struct {
	Start  time.Time
	End    time.Time
	AllDay bool
}

// ResolveTime turns the date and time fragments of a prompt into a start/end
// pair anchored at now. It never fails: anything it cannot place on the clock
// becomes an all-day range on the base date. All arithmetic happens in
// now's location.
func ResolveTime(prompt string, bag models.EntityBag, now time.Time) Resolution {
	allDay := allDayPattern.MatchString(prompt)
	base := resolveBaseDate(prompt, now)

	if !allDay && len(bag.Times) > 0 {
		// First mention wins; later ones are ignored.
		start, err := composeStart(base, bag.Times[0])
		if err == nil {
			end, durErr := resolveEnd(prompt, start)
			if durErr == nil {
				return Resolution{Start: start, End: end}
			}
		}
	}

	return Resolution{
		Start:  base,
		End:    time.Date(base.Year(), base.Month(), base.Day(), 23, 59, 59, lastMicrosecond, base.Location()),
		AllDay: true,
	}
}

// resolveBaseDate picks the calendar day the event falls on, at midnight.
func resolveBaseDate(prompt string, now time.Time) time.Time {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch {
	case tomorrowPattern.MatchString(prompt):
		return today.AddDate(0, 0, 1)
	case todayPattern.MatchString(prompt):
		return today
	case nextWeekPattern.MatchString(prompt):
		return today.AddDate(0, 0, daysPerWeek)
	}

	current := mondayIndex(now.Weekday())
	for target, re := range weekdayPatterns {
		if !re.MatchString(prompt) {
			continue
		}
		// Always the next occurrence strictly after today.
		ahead := target - current
		if ahead <= 0 {
			ahead += daysPerWeek
		}
		return today.AddDate(0, 0, ahead)
	}

	return today
}

// mondayIndex maps time.Weekday (Sunday=0) onto Monday=0 .. Sunday=6.
func mondayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % daysPerWeek
}

// composeStart places a time mention on the base date, converting from a
// 12-hour clock when a meridiem is present.
func composeStart(base time.Time, tm models.TimeMention) (time.Time, error) {
	if !tm.Meridiem.IsValid() {
		return time.Time{}, fmt.Errorf("%w: meridiem %q", errInvalidClock, tm.Meridiem)
	}
	hour, err := strconv.Atoi(tm.Hour)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing hour %q: %w", tm.Hour, err)
	}
	minute := 0
	if tm.Minute != "" {
		minute, err = strconv.Atoi(tm.Minute)
		if err != nil {
			return time.Time{}, fmt.Errorf("parsing minute %q: %w", tm.Minute, err)
		}
	}

	switch tm.Meridiem {
	case models.MeridiemPM:
		if hour != 12 {
			hour += 12
		}
	case models.MeridiemAM:
		if hour == 12 {
			hour = 0
		}
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return time.Time{}, fmt.Errorf("%w: %02d:%02d", errInvalidClock, hour, minute)
	}

	return time.Date(base.Year(), base.Month(), base.Day(), hour, minute, 0, 0, base.Location()), nil
}

// resolveEnd applies an explicit "N hours" duration if present, else the
// default. Only whole numbers count: "1.5 hours" keeps the default hour.
func resolveEnd(prompt string, start time.Time) (time.Time, error) {
	sm := durationPattern.FindStringSubmatch(prompt)
	if sm == nil {
		return start.Add(defaultDuration), nil
	}
	hours, err := strconv.ParseInt(sm[1], 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing duration %q: %w", sm[1], err)
	}
	if hours > maxDurationHours {
		return time.Time{}, fmt.Errorf("duration of %d hours out of range", hours)
	}
	return start.Add(time.Duration(hours) * time.Hour), nil
}
