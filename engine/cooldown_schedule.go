package engine

import (
	"slices"
	"time"
)

type cooldownEntry struct {
	targetID int
	expiry   time.Time
}

// CooldownSchedule is the arena of pending target cooldown expiries
// Owned by the session clock and drained on every event and frame, so the
// state machine never depends on timer goroutines
type CooldownSchedule struct {
	entries []cooldownEntry
}

// Schedule records that targetID leaves cooldown at expiry
// A target has at most one pending entry, rescheduling replaces it
func (c *CooldownSchedule) Schedule(targetID int, expiry time.Time) {
	for i := range c.entries {
		if c.entries[i].targetID == targetID {
			c.entries[i].expiry = expiry
			return
		}
	}
	c.entries = append(c.entries, cooldownEntry{targetID: targetID, expiry: expiry})
}

// Due removes and returns the targets whose expiry is at or before now
// Returned in expiry order, ties in scheduling order
func (c *CooldownSchedule) Due(now time.Time) []int {
	var due []cooldownEntry
	kept := c.entries[:0]
	for _, e := range c.entries {
		if now.Before(e.expiry) {
			kept = append(kept, e)
			continue
		}
		due = append(due, e)
	}
	clear(c.entries[len(kept):])
	c.entries = kept

	if len(due) == 0 {
		return nil
	}

	slices.SortStableFunc(due, func(a, b cooldownEntry) int {
		return a.expiry.Compare(b.expiry)
	})
	ids := make([]int, len(due))
	for i, e := range due {
		ids[i] = e.targetID
	}
	return ids
}

// Pending returns the scheduled expiry for a target
func (c *CooldownSchedule) Pending(targetID int) (time.Time, bool) {
	for _, e := range c.entries {
		if e.targetID == targetID {
			return e.expiry, true
		}
	}
	return time.Time{}, false
}

// Len returns the number of pending expiries
func (c *CooldownSchedule) Len() int {
	return len(c.entries)
}

// Clear drops every pending expiry
func (c *CooldownSchedule) Clear() {
	c.entries = nil
}
