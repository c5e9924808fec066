package cache

import (
	log "log/slog"

	"github.com/sharedcode/lists/doublylist"
)

// mru manages recency ordering and eviction for the generic cache type. The
// recency list holds keys, most recent at the front; each cache entry keeps
// its Position handle so relinks stay constant time.
type mru[TK comparable, TV any] struct {
	minCapacity int
	maxCapacity int
	recency     *doublylist.List[TK]
	cache       *cache[TK, TV]
}

func newMru[TK comparable, TV any](c *cache[TK, TV], minCapacity, maxCapacity int) *mru[TK, TV] {
	return &mru[TK, TV]{
		cache:       c,
		minCapacity: minCapacity,
		maxCapacity: maxCapacity,
		recency:     doublylist.New[TK](),
	}
}

// add inserts the key at the head of the recency list and returns its Position handle.
func (m *mru[TK, TV]) add(key TK) doublylist.Position[TK] {
	return m.recency.PushFront(key)
}

// touch moves the key's entry to the head of the recency list.
func (m *mru[TK, TV]) touch(pos doublylist.Position[TK]) {
	// A failure here means the handle went stale, which for a live entry is a
	// container bug; the entry simply loses its recency bump.
	_ = m.recency.MoveToFront(pos)
}

// remove unchains the key's entry from the recency list.
func (m *mru[TK, TV]) remove(pos doublylist.Position[TK]) {
	_, _ = m.recency.Remove(pos)
}

// evict removes entries from the tail while the cache exceeds its capacity, updating the index.
func (m *mru[TK, TV]) evict() {
	evicted := 0
	for m.isFull() {
		key, err := m.recency.PopBack()
		if err != nil {
			break
		}
		// Popping voided the entry's Position already; drop the index entry.
		delete(m.cache.lookup, key)
		evicted++
	}
	if evicted > 0 {
		log.Debug("evicted least recently used entries", "count", evicted)
	}
}

// isFull reports whether the cache has reached its maximum capacity.
func (m *mru[TK, TV]) isFull() bool {
	return m.recency.Len() >= m.maxCapacity
}
