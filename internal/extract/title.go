package extract

import (
	"strings"

	"github.com/salhuss/agentic-calender-app/internal/models"
	"github.com/salhuss/agentic-calender-app/pkg/textutil"
)

// minTitleLen is the length a pattern-derived title must exceed to be used.
const minTitleLen = 3

// fallbackWordCount is how many leading words form the last-resort title.
const fallbackWordCount = 5

// SynthesizeTitle derives a title-cased event title. Rules are tried in order:
// the clause before the first time/date word, the object of "schedule"/"book",
// the first keyword (with the first person, if any), and finally the first
// five words of the prompt. A prompt with no words gets models.DefaultTitle.
func SynthesizeTitle(prompt string, bag models.EntityBag) string {
	if title, ok := titleFromPattern(prompt); ok {
		return textutil.TitleCase(title)
	}

	if len(bag.Keywords) > 0 {
		title := bag.Keywords[0]
		if len(bag.People) > 0 {
			title += " with " + bag.People[0]
		}
		return textutil.TitleCase(title)
	}

	if words := textutil.FirstWords(prompt, fallbackWordCount); words != "" {
		return textutil.TitleCase(words)
	}
	return models.DefaultTitle
}

func titleFromPattern(prompt string) (string, bool) {
	if sm := leadingClausePattern.FindStringSubmatch(prompt); sm != nil {
		if title := strings.TrimSpace(sm[1]); textutil.RuneLen(title) > minTitleLen {
			return title, true
		}
	}
	for _, re := range imperativePatterns {
		if sm := re.FindStringSubmatch(prompt); sm != nil {
			if title := strings.TrimSpace(sm[1]); textutil.RuneLen(title) > minTitleLen {
				return title, true
			}
		}
	}
	return "", false
}
