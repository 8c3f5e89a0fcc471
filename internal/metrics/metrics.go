// Package metrics provides application-level counters using stdlib expvar.
// Counters are exported on the /debug/vars HTTP endpoint when a binary
// serves expvar.Handler.
package metrics

import "expvar"

// Operation counters.
var (
	DraftsTotal      = expvar.NewInt("calendar_drafts_total")
	AllDayTotal      = expvar.NewInt("calendar_all_day_total")
	CacheHits        = expvar.NewInt("calendar_cache_hits_total")
	CacheMisses      = expvar.NewInt("calendar_cache_misses_total")
	BatchPromptTotal = expvar.NewInt("calendar_batch_prompts_total")
)

var all = map[string]*expvar.Int{
	"calendar_drafts_total":        DraftsTotal,
	"calendar_all_day_total":       AllDayTotal,
	"calendar_cache_hits_total":    CacheHits,
	"calendar_cache_misses_total":  CacheMisses,
	"calendar_batch_prompts_total": BatchPromptTotal,
}

// Inc increments the given counter by 1.
func Inc(counter *expvar.Int) { counter.Add(1) }

// Snapshot returns the current value of every counter keyed by its
// expvar name.
func Snapshot() map[string]int64 {
	out := make(map[string]int64, len(all))
	for name, c := range all {
		out[name] = c.Value()
	}
	return out
}
