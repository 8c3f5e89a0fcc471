package extract

import (
	"regexp"

	"github.com/salhuss/agentic-calender-app/internal/models"
)

// matcher is one named pattern tier.
type matcher struct {
	name  string
	regex *regexp.Regexp
}

// match is a single accepted hit. groups[0] is the full match text and the
// remaining entries are the submatches ("" for groups that did not take part).
type match struct {
	matcher string
	span    models.Span
	groups  []string
}

// matchTiers runs matchers in priority order and keeps every hit whose span
// does not overlap a span accepted earlier. Output order is tier order, then
// position within a tier.
func matchTiers(text string, tiers []matcher) []match {
	var accepted []match
	for _, t := range tiers {
		for _, loc := range t.regex.FindAllStringSubmatchIndex(text, -1) {
			span := models.Span{Start: loc[0], End: loc[1]}
			if overlapsAny(span, accepted) {
				continue
			}
			accepted = append(accepted, match{
				matcher: t.name,
				span:    span,
				groups:  submatches(text, loc),
			})
		}
	}
	return accepted
}

func overlapsAny(span models.Span, accepted []match) bool {
	for i := range accepted {
		if span.Overlaps(accepted[i].span) {
			return true
		}
	}
	return false
}

// submatches turns an index slice from FindAllStringSubmatchIndex into strings.
func submatches(text string, loc []int) []string {
	groups := make([]string, len(loc)/2)
	for i := range groups {
		start, end := loc[2*i], loc[2*i+1]
		if start >= 0 && end >= 0 {
			groups[i] = text[start:end]
		}
	}
	return groups
}
