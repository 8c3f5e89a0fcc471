package extract

import (
	"strings"
	"time"

	"github.com/salhuss/agentic-calender-app/pkg/textutil"
)

// maxScore is the number of raw points a fully populated draft earns.
const maxScore = 5.0

// Score rates how completely a draft was populated. Title, location and
// attendees are worth one point each; a start/end pair is worth two, a lone
// bound one. The result is normalized into [0, 1].
func Score(title string, start, end *time.Time, location *string, attendees []string) float64 {
	score := 0.0

	if textutil.RuneLen(strings.TrimSpace(title)) > minTitleLen {
		score++
	}

	switch {
	case start != nil && end != nil:
		score += 2
	case start != nil || end != nil:
		score++
	}

	if location != nil && *location != "" {
		score++
	}

	if len(attendees) > 0 {
		score++
	}

	return min(score/maxScore, 1.0)
}
