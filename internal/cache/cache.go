// Package cache memoizes event drafts so repeated prompts skip re-extraction.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/salhuss/agentic-calender-app/internal/extract"
	"github.com/salhuss/agentic-calender-app/internal/metrics"
	"github.com/salhuss/agentic-calender-app/internal/models"
)

// Drafter wraps another extract.Drafter with an in-memory TTL cache.
// Drafts only depend on the prompt and the reference instant's calendar
// date, offset and zone, so entries are keyed on exactly those.
type Drafter struct {
	next   extract.Drafter
	cache  *gocache.Cache
	logger *slog.Logger
}

// NewDrafter creates a caching drafter. ttl is the entry lifetime and
// cleanupInterval the period of the expiry janitor.
func NewDrafter(next extract.Drafter, ttl, cleanupInterval time.Duration, logger *slog.Logger) *Drafter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Drafter{
		next:   next,
		cache:  gocache.New(ttl, cleanupInterval),
		logger: logger,
	}
}

// Draft returns a cached draft when one exists for (prompt, date of now),
// otherwise delegates and stores the result. Callers always get their own copy.
func (d *Drafter) Draft(prompt string, now time.Time) models.EventDraft {
	key := Key(prompt, now)
	if v, found := d.cache.Get(key); found {
		if draft, ok := v.(models.EventDraft); ok {
			metrics.Inc(metrics.CacheHits)
			d.logger.Debug("draft cache hit", "key", key)
			return draft.Clone()
		}
	}

	metrics.Inc(metrics.CacheMisses)
	draft := d.next.Draft(prompt, now)
	d.cache.SetDefault(key, draft.Clone())
	return draft
}

// Len returns the number of cached drafts, including expired ones not yet
// collected.
func (d *Drafter) Len() int {
	return d.cache.ItemCount()
}

// Key builds the cache key for a prompt and reference instant.
func Key(prompt string, now time.Time) string {
	hash := sha256.Sum256([]byte(prompt))
	// Parsed RFC 3339 instants carry unnamed zones, so the offset is part of the key.
	return "draft:v2:" + now.Format("2006-01-02Z07:00") + ":" + now.Location().String() + ":" + hex.EncodeToString(hash[:])
}
