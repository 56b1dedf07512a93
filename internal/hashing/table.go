package hashing

import (
	"sync"
	"sync/atomic"
)

type tableKey struct {
	hash  uint64
	depth int
}

// Table caches node counts by position hash and remaining depth. It is safe
// for concurrent use.
type Table struct {
	mu          sync.RWMutex
	entries     map[tableKey]uint64
	maxCapacity int
	hits        atomic.Uint64
	misses      atomic.Uint64
}

// NewTable creates a table holding at most maxCapacity entries.
// maxCapacity of 0 means unlimited capacity.
func NewTable(maxCapacity int) *Table {
	if maxCapacity < 0 {
		maxCapacity = 0
	}
	return &Table{
		entries:     make(map[tableKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Get returns the stored count for hash at depth.
func (t *Table) Get(hash uint64, depth int) (uint64, bool) {
	t.mu.RLock()
	nodes, ok := t.entries[tableKey{hash, depth}]
	t.mu.RUnlock()
	if ok {
		t.hits.Add(1)
	} else {
		t.misses.Add(1)
	}
	return nodes, ok
}

// Put stores a count. Once the table is full new keys are dropped.
func (t *Table) Put(hash uint64, depth int, nodes uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	key := tableKey{hash, depth}
	if _, exists := t.entries[key]; !exists && t.full() {
		return
	}
	t.entries[key] = nodes
}

// Len returns the number of stored entries.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// IsFull returns true if the table has reached its capacity limit.
// Always returns false for unlimited capacity.
func (t *Table) IsFull() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.full()
}

func (t *Table) full() bool {
	return t.maxCapacity > 0 && len(t.entries) >= t.maxCapacity
}

// Stats returns the number of Get calls that hit and missed.
func (t *Table) Stats() (hits, misses uint64) {
	return t.hits.Load(), t.misses.Load()
}
