// Package history keeps recently confirmed texts in memory for a limited time.
package history

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

// Cache key prefixes
const (
	PrefixTitle = "title:"
	KeyLast     = "last"
)

// CleanupInterval is how often expired entries are purged
const CleanupInterval = 1 * time.Minute

// Entry is one confirmed text.
type Entry struct {
	Title     string
	Text      string
	At        time.Time
	ExpiresAt time.Time
}

// History wraps go-cache; entries expire so typed text does not linger.
type History struct {
	c          *cache.Cache
	expiration time.Duration
}

// New creates a history whose entries live for expiration.
func New(expiration time.Duration) *History {
	return &History{
		c:          cache.New(expiration, CleanupInterval),
		expiration: expiration,
	}
}

// Add records text confirmed in a dialog titled title.
func (h *History) Add(title, text string) Entry {
	now := time.Now()
	e := &Entry{
		Title:     title,
		Text:      text,
		At:        now,
		ExpiresAt: now.Add(h.expiration),
	}
	h.c.Set(PrefixTitle+title, e, cache.DefaultExpiration)
	h.c.Set(KeyLast, e, cache.DefaultExpiration)
	return *e
}

// Last returns the most recently confirmed text.
func (h *History) Last() (Entry, bool) {
	return h.get(KeyLast)
}

// ForTitle returns the last text confirmed in a dialog with this title.
func (h *History) ForTitle(title string) (Entry, bool) {
	return h.get(PrefixTitle + title)
}

func (h *History) get(key string) (Entry, bool) {
	if val, found := h.c.Get(key); found {
		if e, ok := val.(*Entry); ok {
			return *e, true
		}
	}
	return Entry{}, false
}

// Clear removes all entries
func (h *History) Clear() {
	h.c.Flush()
}

// ItemCount returns the number of cached keys
func (h *History) ItemCount() int {
	return h.c.ItemCount()
}

// Stats returns history statistics as a formatted string
func (h *History) Stats() string {
	return fmt.Sprintf("History items: %d", h.c.ItemCount())
}
