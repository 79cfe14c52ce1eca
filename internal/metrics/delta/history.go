// Package delta keeps per-entity counter history and derives rates and
// percentages from consecutive samples.
package delta

import "time"

// Sample is one raw observation of an entity's counters. At must come from
// time.Now so that Sub uses the monotonic clock.
type Sample struct {
	Counters []uint64
	At       time.Time
}

// History keeps the last sample per entity id. It is owned by a single
// collector and is not safe for concurrent use. Entries are never evicted.
type History struct {
	samples map[string]Sample
}

func NewHistory() *History {
	return &History{samples: make(map[string]Sample)}
}

func (h *History) Get(id string) (Sample, bool) {
	s, ok := h.samples[id]
	return s, ok
}

func (h *History) Put(id string, s Sample) {
	h.samples[id] = s
}

func (h *History) Len() int {
	return len(h.samples)
}
