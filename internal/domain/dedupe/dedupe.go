// Package dedupe defines the interface for idempotent shoot submission.
package dedupe

import (
	"context"
	"sync"
	"sync/atomic"
)

// Deduper records seen shoot IDs to ensure at-most-once processing.
type Deduper interface {
	// SeenAndRecord atomically checks if id was seen and records it if not.
	// Returns true if id was already seen, false if it was newly recorded.
	SeenAndRecord(ctx context.Context, id string) bool

	// Unrecord removes an ID from the seen list, allowing a retry. Used
	// when a submission was marked seen but failed to enqueue.
	Unrecord(ctx context.Context, id string)

	Size() int64
}

// node is one entry in the eviction list.
type node struct {
	id   string
	next *node
}

// inMemoryDeduper implements Deduper with a bounded map plus LIFO
// eviction list. Unbounded when maxSize <= 0.
type inMemoryDeduper struct {
	mu      sync.Mutex
	seen    map[string]*node
	head    *node
	maxSize int
	size    atomic.Int64
}

// NewInMemoryDeduper creates a new in-memory deduper with options.
func NewInMemoryDeduper(opts ...Option) Deduper {
	d := &inMemoryDeduper{
		maxSize: 100_000,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.seen = make(map[string]*node)
	return d
}

// SeenAndRecord atomically checks and records id.
func (d *inMemoryDeduper) SeenAndRecord(_ context.Context, id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.seen[id]; ok {
		return true
	}

	n := &node{id: id, next: d.head}
	d.head = n
	d.seen[id] = n
	d.size.Add(1)

	if d.maxSize > 0 && int(d.size.Load()) > d.maxSize {
		d.evictNewestLocked(id)
	}
	return false
}

// Unrecord removes an ID from the seen set.
func (d *inMemoryDeduper) Unrecord(_ context.Context, id string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	n, ok := d.seen[id]
	if !ok {
		return
	}
	delete(d.seen, id)
	d.size.Add(-1)
	if d.head == n {
		d.head = n.next
		return
	}
	for cur := d.head; cur != nil; cur = cur.next {
		if cur.next == n {
			cur.next = n.next
			return
		}
	}
}

// Size returns the current number of recorded IDs.
func (d *inMemoryDeduper) Size() int64 {
	return d.size.Load()
}

// evictNewestLocked drops the most recently recorded entry other than the
// one just added. LIFO eviction keeps long-lived IDs stable under churn.
func (d *inMemoryDeduper) evictNewestLocked(justAdded string) {
	cur := d.head
	var prev *node
	for cur != nil {
		if cur.id != justAdded {
			if prev == nil {
				d.head = cur.next
			} else {
				prev.next = cur.next
			}
			delete(d.seen, cur.id)
			d.size.Add(-1)
			return
		}
		prev = cur
		cur = cur.next
	}
}
