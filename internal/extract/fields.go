package extract

import (
	"strings"

	"github.com/salhuss/agentic-calender-app/pkg/textutil"
)

// descriptionThreshold is the prompt length above which the prompt itself
// becomes the description.
const descriptionThreshold = 50

// trailingPunct is stripped from the end of location candidates.
const trailingPunct = ".,;:!?"

// ExtractDescription returns the prompt verbatim when it is longer than
// descriptionThreshold characters, otherwise nil.
func ExtractDescription(prompt string) *string {
	if textutil.RuneLen(prompt) <= descriptionThreshold {
		return nil
	}
	d := prompt
	return &d
}

// ExtractLocation returns the first "at ..." or "in ..." phrase that starts
// with a letter and is neither purely numeric nor a weekday name. Only the
// first valid candidate is used even when several are present.
func ExtractLocation(prompt string) *string {
	for _, re := range fieldLocationPatterns {
		for _, sm := range re.FindAllStringSubmatch(prompt, -1) {
			loc := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(sm[1]), trailingPunct))
			if numericOnlyPattern.MatchString(loc) || isWeekdayName(loc) {
				continue
			}
			return &loc
		}
	}
	return nil
}

// ExtractAttendees returns every email-shaped token in order of appearance.
// Duplicates are kept.
func ExtractAttendees(prompt string) []string {
	emails := emailPattern.FindAllString(prompt, -1)
	if emails == nil {
		return []string{}
	}
	return emails
}
