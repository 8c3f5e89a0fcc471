package models

// Meridiem is the am/pm marker that disambiguates a 12-hour clock reading.
type Meridiem string

const (
	MeridiemNone Meridiem = ""
	MeridiemAM   Meridiem = "am"
	MeridiemPM   Meridiem = "pm"
)

// ValidMeridiems is the set of all valid meridiem markers.
var ValidMeridiems = []Meridiem{
	MeridiemNone,
	MeridiemAM,
	MeridiemPM,
}

// IsValid returns true if the meridiem marker is recognized.
func (m Meridiem) IsValid() bool {
	for i := range ValidMeridiems {
		if m == ValidMeridiems[i] {
			return true
		}
	}
	return false
}

// Span is a half-open [Start, End) byte range into the source prompt.
type Span struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Overlaps reports whether the two spans share at least one byte.
func (s Span) Overlaps(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}

// TimeMention is one clock reading found in a prompt. Hour and Minute hold
// the raw digits as written; conversion to a 24-hour clock happens during
// temporal resolution.
type TimeMention struct {
	Text     string   `json:"text" yaml:"text"`
	Hour     string   `json:"hour" yaml:"hour"`
	Minute   string   `json:"minute" yaml:"minute"`
	Meridiem Meridiem `json:"meridiem,omitempty" yaml:"meridiem,omitempty"`
	Span     Span     `json:"span" yaml:"span"`
}

// EntityBag holds the raw pattern matches scanned from a single prompt.
// Each slice keeps scan order. Dates, locations and people may repeat;
// keywords never do.
type EntityBag struct {
	Times     []TimeMention `json:"times" yaml:"times"`
	Dates     []string      `json:"dates" yaml:"dates"`
	Locations []string      `json:"locations" yaml:"locations"`
	People    []string      `json:"people" yaml:"people"`
	Keywords  []string      `json:"keywords" yaml:"keywords"`
}

// NewEntityBag returns a bag whose slices are non-nil so that it always
// serializes as empty lists rather than null.
func NewEntityBag() EntityBag {
	return EntityBag{
		Times:     []TimeMention{},
		Dates:     []string{},
		Locations: []string{},
		People:    []string{},
		Keywords:  []string{},
	}
}

// Clone returns a deep copy of the bag.
func (b EntityBag) Clone() EntityBag {
	return EntityBag{
		Times:     append([]TimeMention{}, b.Times...),
		Dates:     append([]string{}, b.Dates...),
		Locations: append([]string{}, b.Locations...),
		People:    append([]string{}, b.People...),
		Keywords:  append([]string{}, b.Keywords...),
	}
}
