package extract

import (
	"regexp"
	"strings"
)

// Weekday names in Monday-first order. The index is the offset used for
// relative-date arithmetic.
var weekdayNames = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

var monthNames = []string{
	"january", "february", "march", "april", "may", "june", "july",
	"august", "september", "october", "november", "december",
	"jan", "feb", "mar", "apr", "jun", "jul", "aug", "sept", "sep", "oct", "nov", "dec",
}

// eventKeywords is the fixed vocabulary of event types.
var eventKeywords = []string{
	"meeting", "call", "lunch", "dinner", "appointment", "interview",
	"workout", "gym", "class", "lesson", "conference", "presentation",
}

// venueNouns are bare nouns accepted as location candidates on their own.
var venueNouns = []string{
	"cafe", "restaurant", "office", "home", "park", "gym", "library", "school", "university",
}

var (
	weekdayAlt = strings.Join(weekdayNames, "|")
	monthAlt   = strings.Join(monthNames, "|")
	dateWord   = `tomorrow|today|tonight|next|this`
	timeToken  = `\d{1,2}(?::\d{2})?\s*(?:am|pm)\b|\d{1,2}:\d{2}\b`
)

// Entity scanner patterns.
var (
	timeLongPattern  = regexp.MustCompile(`(?i)\b(\d{1,2}):(\d{2})(?:\s*(am|pm))?\b`)
	timeShortPattern = regexp.MustCompile(`(?i)\b(\d{1,2})\s*(am|pm)\b`)

	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\btomorrow\b`),
		regexp.MustCompile(`(?i)\btoday\b`),
		regexp.MustCompile(`(?i)\bnext\s+week\b`),
		regexp.MustCompile(`(?i)\bnext\s+(?:` + weekdayAlt + `)\b`),
		regexp.MustCompile(`(?i)\b(?:` + weekdayAlt + `)\b`),
		regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})\b`),
		regexp.MustCompile(`(?i)\b(?:` + monthAlt + `)\s+\d{1,2}(?:st|nd|rd|th)?\b`),
	}

	// Scanner location candidates stop at with/on/from, a weekday or date
	// word, a digit, a comma or semicolon, or trailing punctuation at the end.
	scanLocationStop     = `(?:\s+(?:with|on|from|` + weekdayAlt + `|` + dateWord + `)\b|\s+\d|\s*[,;]|[\s[:punct:]]*$)`
	scanLocationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bat\s+([\pL\s]+?)` + scanLocationStop),
		regexp.MustCompile(`(?i)\bin\s+([\pL\s]+?)` + scanLocationStop),
	}
	venuePattern = regexp.MustCompile(`(?i)\b(` + strings.Join(venueNouns, "|") + `)\b`)

	peoplePattern = regexp.MustCompile(`(?i)\bwith\s+([\pL\s,]+?)` +
		`(?:\s+(?:at|in|on|from|for|` + weekdayAlt + `|` + dateWord + `)\b|\s+\d|[\s[:punct:]]*$)`)

	keywordPattern = regexp.MustCompile(`(?i)\b(` + strings.Join(eventKeywords, "|") + `)(?:e?s)?\b`)
)

// Title patterns, tried in order.
var (
	leadingClausePattern = regexp.MustCompile(`(?i)^(.+?)\s+(?:at|on|from|tomorrow|today)\b`)
	imperativePatterns   = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bschedule\s+(.+?)(?:\s+(?:for|at|on)\b|$)`),
		regexp.MustCompile(`(?i)\bbook\s+(.+?)(?:\s+(?:for|at|on)\b|$)`),
	}
)

// Field extractor patterns.
var (
	fieldLocationStop     = `(?:\s+(?:with|on|from|at|for|` + weekdayAlt + `|` + dateWord + `)\b|\s+(?:` + timeToken + `)|\s*[,;\n]|\s*$)`
	fieldLocationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bat\s+(\pL[^,;\n]*?)` + fieldLocationStop),
		regexp.MustCompile(`(?i)\bin\s+(\pL[^,;\n]*?)` + fieldLocationStop),
	}
	numericOnlyPattern = regexp.MustCompile(`^[\d\s:]*$`)

	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
)

// Temporal resolver patterns.
var (
	allDayPattern   = regexp.MustCompile(`(?i)\ball\s+day\b`)
	tomorrowPattern = regexp.MustCompile(`(?i)\btomorrow\b`)
	todayPattern    = regexp.MustCompile(`(?i)\btoday\b`)
	nextWeekPattern = regexp.MustCompile(`(?i)\bnext\s+week\b`)
	durationPattern = regexp.MustCompile(`(?i)(?:^|[^\d.])(\d+)\s*(?:hours?|hrs?)\b`)

	weekdayPatterns = compileWeekdayPatterns()
)

func compileWeekdayPatterns() []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(weekdayNames))
	for i, name := range weekdayNames {
		out[i] = regexp.MustCompile(`(?i)\b` + name + `\b`)
	}
	return out
}

// isWeekdayName reports whether s is exactly a weekday name, ignoring case.
func isWeekdayName(s string) bool {
	for _, name := range weekdayNames {
		if strings.EqualFold(s, name) {
			return true
		}
	}
	return false
}
