package analysis

import (
	"hash/fnv"
	"sync"

	"github.com/wiedymi/ass-rs/pkg/assast"
)

// SpanHash is a 64-bit FNV-1a digest of a span's source bytes, used to key
// the per-event analysis cache described in spec.md §4.6 ("MAY cache
// per-event results keyed by the event's span hash, invalidated on
// incremental reparse"). It is not cryptographic; it only needs to change
// whenever the underlying bytes do.
type SpanHash uint64

// HashSpan computes the SpanHash of source[span.Start:span.End].
func HashSpan(source []byte, span assast.Span) SpanHash {
	h := fnv.New64a()
	h.Write(span.Text(source))
	return SpanHash(h.Sum64())
}

// dialogueCacheEntry pairs the DialogueInfo Analyze computed for an event
// with any issues ComputeDialogueInfo raised while doing so, so a cache
// hit reproduces both halves of that call's result.
type dialogueCacheEntry struct {
	info   DialogueInfo
	issues assast.Issues
}

// Cache memoizes per-event DialogueInfo keyed by SpanHash, so a caller
// re-analyzing a script after an incremental reparse (pkg/incremental)
// doesn't pay override-tag parsing costs again for events whose bytes
// didn't change. An edit changes the edited event's span hash, so a stale
// entry is simply never looked up again; Cache does not actively evict,
// since spec.md §4.6 only requires the cache to be invalidate-able, not
// bounded. A long-lived embedder (an editor session open for hours) should
// periodically call Reset to bound memory.
//
// The zero value is not usable; construct with NewCache. Safe for
// concurrent use.
type Cache struct {
	mu      sync.Mutex
	entries map[SpanHash]dialogueCacheEntry
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[SpanHash]dialogueCacheEntry)}
}

// Len reports the number of memoized entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Reset discards every memoized entry.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[SpanHash]dialogueCacheEntry)
}

func (c *Cache) get(h SpanHash) (DialogueInfo, assast.Issues, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[h]
	return e.info, e.issues, ok
}

func (c *Cache) put(h SpanHash, info DialogueInfo, issues assast.Issues) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[h] = dialogueCacheEntry{info: info, issues: issues}
}
