package extract

import (
	"strings"

	"github.com/salhuss/agentic-calender-app/internal/models"
)

// timeTiers lists clock patterns in priority order. The H:MM form runs first
// so that its minute digits are never re-read as a bare "MM am/pm" hour.
var timeTiers = []matcher{
	{name: "long", regex: timeLongPattern},
	{name: "short", regex: timeShortPattern},
}

// ScanEntities extracts every raw entity candidate from prompt. It is a pure
// function: the same prompt always yields the same bag.
func ScanEntities(prompt string) models.EntityBag {
	bag := models.NewEntityBag()
	bag.Times = scanTimes(prompt)
	bag.Dates = scanDates(prompt)
	bag.Locations = scanLocations(prompt)
	bag.People = scanPeople(prompt)
	bag.Keywords = scanKeywords(prompt)
	return bag
}

func scanTimes(prompt string) []models.TimeMention {
	times := []models.TimeMention{}
	for _, m := range matchTiers(prompt, timeTiers) {
		tm := models.TimeMention{Text: m.groups[0], Hour: m.groups[1], Span: m.span}
		switch m.matcher {
		case "long":
			tm.Minute = m.groups[2]
			tm.Meridiem = models.Meridiem(strings.ToLower(m.groups[3]))
		default:
			tm.Minute = "0"
			tm.Meridiem = models.Meridiem(strings.ToLower(m.groups[2]))
		}
		times = append(times, tm)
	}
	return times
}

func scanDates(prompt string) []string {
	dates := []string{}
	for _, re := range datePatterns {
		dates = append(dates, re.FindAllString(prompt, -1)...)
	}
	return dates
}

func scanLocations(prompt string) []string {
	locations := []string{}
	for _, re := range scanLocationPatterns {
		for _, sm := range re.FindAllStringSubmatch(prompt, -1) {
			if loc := strings.TrimSpace(sm[1]); loc != "" {
				locations = append(locations, loc)
			}
		}
	}
	for _, sm := range venuePattern.FindAllStringSubmatch(prompt, -1) {
		locations = append(locations, sm[1])
	}
	return locations
}

func scanPeople(prompt string) []string {
	people := []string{}
	for _, sm := range peoplePattern.FindAllStringSubmatch(prompt, -1) {
		for _, name := range strings.Split(sm[1], ",") {
			if name = strings.TrimSpace(name); name != "" {
				people = append(people, name)
			}
		}
	}
	return people
}

// scanKeywords returns each vocabulary keyword once, in order of first appearance.
func scanKeywords(prompt string) []string {
	keywords := []string{}
	seen := make(map[string]bool)
	for _, sm := range keywordPattern.FindAllStringSubmatch(prompt, -1) {
		kw := strings.ToLower(sm[1])
		if seen[kw] {
			continue
		}
		seen[kw] = true
		keywords = append(keywords, kw)
	}
	return keywords
}
