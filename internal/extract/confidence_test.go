package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	later := now.Add(time.Hour)
	loc := "Cafe Rio"
	empty := ""

	tests := []struct {
		name      string
		title     string
		start     *time.Time
		end       *time.Time
		location  *string
		attendees []string
		want      float64
	}{
		{"nothing", "", nil, nil, nil, nil, 0.0},
		{"short title only", "Gym", nil, nil, nil, nil, 0.0},
		{"title only", "Meeting", nil, nil, nil, nil, 0.2},
		{"padded short title", "  Gym  ", nil, nil, nil, nil, 0.0},
		{"lone start", "", &now, nil, nil, nil, 0.2},
		{"lone end", "", nil, &later, nil, nil, 0.2},
		{"start and end", "", &now, &later, nil, nil, 0.4},
		{"empty location does not count", "", nil, nil, &empty, nil, 0.0},
		{"title and times", "Meeting", &now, &later, nil, nil, 0.6},
		{"title times location", "Meeting", &now, &later, &loc, nil, 0.8},
		{"everything", "Meeting", &now, &later, &loc, []string{"a@b.co"}, 1.0},
		{"title location attendees", "Meeting with John", nil, nil, &loc, []string{"john@example.com"}, 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.title, tt.start, tt.end, tt.location, tt.attendees)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestScore_MonotoneInPopulatedFields(t *testing.T) {
	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	later := now.Add(time.Hour)
	loc := "Office"

	steps := []float64{
		Score("", nil, nil, nil, nil),
		Score("Meeting", nil, nil, nil, nil),
		Score("Meeting", &now, nil, nil, nil),
		Score("Meeting", &now, &later, nil, nil),
		Score("Meeting", &now, &later, &loc, nil),
		Score("Meeting", &now, &later, &loc, []string{"x@y.io"}),
	}

	for i := 1; i < len(steps); i++ {
		assert.GreaterOrEqual(t, steps[i], steps[i-1])
	}
	for _, s := range steps {
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
	}
}
