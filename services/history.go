package services

import (
	"sort"
	"strings"
	"sync"
	"time"
)

// PopularSearch is a query with its recorded usage count
type PopularSearch struct {
	Query string `json:"query"`
	Count int    `json:"count"`
}

type historyEntry struct {
	count    int
	lastUsed time.Time
}

// SearchHistory is the process-wide store of recent and popular search
// queries. It is best-effort UX state: created empty at process start,
// never persisted, safe for concurrent use. Counts can only grow, so a
// lost increment under contention is tolerable while corruption is not.
type SearchHistory struct {
	mu        sync.Mutex
	retention int
	recent    []string // most recent first, deduplicated
	entries   map[string]*historyEntry
	clock     func() time.Time
}

// NewSearchHistory creates an empty history retaining the given number of
// recent queries. retention <= 0 falls back to 50.
func NewSearchHistory(retention int) *SearchHistory {
	if retention <= 0 {
		retention = 50
	}
	return &SearchHistory{
		retention: retention,
		entries:   make(map[string]*historyEntry),
		clock:     time.Now,
	}
}

// Record logs a search query. Queries shorter than two characters are
// ignored; they carry no signal for suggestions.
func (h *SearchHistory) Record(query string) {
	query = strings.ToLower(strings.TrimSpace(query))
	if len(query) < 2 {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	// Move to front of the recent list
	for i, q := range h.recent {
		if q == query {
			h.recent = append(h.recent[:i], h.recent[i+1:]...)
			break
		}
	}
	h.recent = append([]string{query}, h.recent...)
	if len(h.recent) > h.retention {
		h.recent = h.recent[:h.retention]
	}

	entry, ok := h.entries[query]
	if !ok {
		entry = &historyEntry{}
		h.entries[query] = entry
	}
	entry.count++
	entry.lastUsed = h.clock()
}

// Recent returns up to n most-recently-recorded distinct queries,
// most recent first
func (h *SearchHistory) Recent(n int) []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	if n > len(h.recent) {
		n = len(h.recent)
	}
	out := make([]string, n)
	copy(out, h.recent[:n])
	return out
}

// Popular returns up to n queries by descending count, ties broken by
// most recent use
func (h *SearchHistory) Popular(n int) []PopularSearch {
	h.mu.Lock()
	defer h.mu.Unlock()

	all := make([]PopularSearch, 0, len(h.entries))
	lastUsed := make(map[string]time.Time, len(h.entries))
	for q, e := range h.entries {
		all = append(all, PopularSearch{Query: q, Count: e.count})
		lastUsed[q] = e.lastUsed
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Count != all[j].Count {
			return all[i].Count > all[j].Count
		}
		if !lastUsed[all[i].Query].Equal(lastUsed[all[j].Query]) {
			return lastUsed[all[i].Query].After(lastUsed[all[j].Query])
		}
		return all[i].Query < all[j].Query
	})
	if n < len(all) {
		all = all[:n]
	}
	return all
}

// DefaultPopularSearches is the warm-start term set seeded at server
// start, so popular suggestions and typo corrections are useful before
// any user has typed a query
var DefaultPopularSearches = map[string]int{
	"contract":         42,
	"personal injury":  38,
	"corporate law":    35,
	"john smith":       31,
	"sarah johnson":    28,
	"evidence":         26,
	"correspondence":   24,
	"court filing":     22,
	"family law":       21,
	"real estate":      19,
	"payment":          17,
	"overdue":          15,
	"confidential":     14,
	"warehouse a":      12,
	"active cases":     11,
	"criminal defense": 9,
	"immigration":      8,
	"bankruptcy":       7,
	"tax law":          6,
	"employment law":   5,
}

// Seed bulk-loads popular terms with preset counts. The server calls it
// once at start with DefaultPopularSearches; seeded terms count as popular
// but never appear in the recent list.
func (h *SearchHistory) Seed(terms map[string]int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	now := h.clock()
	for q, count := range terms {
		if count <= 0 {
			continue
		}
		h.entries[strings.ToLower(q)] = &historyEntry{count: count, lastUsed: now}
	}
}

// Reset clears all recorded history
func (h *SearchHistory) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.recent = nil
	h.entries = make(map[string]*historyEntry)
}
