// Package poll is the contract behind the platform's "what's new"
// detection. There is no push transport: every consumer re-fetches its
// full order set on a bounded interval and diffs ids against what it saw
// last time. A missed poll self-heals on the next tick.
package poll

import (
	"strings"
	"time"
)

// Refresh intervals per consumer view.
const (
	KitchenBoardInterval   = 4 * time.Second
	AdminListInterval      = 5 * time.Second
	CustomerStatusInterval = 5 * time.Second
)

// FreshAge flags very recent orders as new even right after a page load,
// when no previous poll exists to diff against.
const FreshAge = 2 * time.Minute

// Tracker holds the id set observed by the previous poll. It is per-client
// ephemeral state; the server never persists it.
type Tracker struct {
	seen map[string]bool
}

// NewTracker starts from an already-known id set (possibly empty).
func NewTracker(known ...string) *Tracker {
	t := &Tracker{seen: make(map[string]bool, len(known))}
	for _, id := range known {
		if id != "" {
			t.seen[id] = true
		}
	}
	return t
}

// Observe takes the ids of the current full fetch, returns the ones not
// present in the previous poll, and replaces the seen set. Repeated
// identical fetches are idempotent: the second call returns nothing new.
func (t *Tracker) Observe(ids []string) []string {
	next := make(map[string]bool, len(ids))
	var fresh []string
	for _, id := range ids {
		if !t.seen[id] {
			fresh = append(fresh, id)
		}
		next[id] = true
	}
	t.seen = next
	return fresh
}

// Seen reports whether id was part of the previous poll.
func (t *Tracker) Seen(id string) bool { return t.seen[id] }

// IsFresh reports whether an order is young enough to flag regardless of
// poll history.
func IsFresh(createdAt, now time.Time) bool {
	return now.Sub(createdAt) < FreshAge
}

// ParseKnown splits a comma-separated id list as sent by polling clients.
func ParseKnown(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return out
}
