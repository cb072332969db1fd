package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fletching/quiver/internal/domain/model"
	"github.com/fletching/quiver/pkg/metrics"
)

// MemStore is an insertion-ordered in-memory history store. The slice is
// append-only; records are never reordered, so List reproduces stored
// array order exactly.
type MemStore struct {
	mu     sync.RWMutex
	shoots []model.Shoot
	byID   map[string]int
}

// NewMemStore creates an empty store.
func NewMemStore(ctx context.Context, opts ...Option) *MemStore {
	_ = ctx
	s := &MemStore{byID: make(map[string]int)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add appends a shoot, rejecting duplicate ids.
func (s *MemStore) Add(_ context.Context, sh model.Shoot) error {
	start := time.Now()
	defer func() {
		metrics.RecordRepositoryWriteLatency(float64(time.Since(start).Milliseconds()))
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[sh.ID]; ok {
		return fmt.Errorf("%q: %w", sh.ID, ErrDuplicateID)
	}
	s.byID[sh.ID] = len(s.shoots)
	s.shoots = append(s.shoots, sh)
	metrics.UpdateRepositoryShoots(len(s.shoots))
	return nil
}

// Get returns the shoot with the given id.
func (s *MemStore) Get(_ context.Context, id string) (model.Shoot, error) {
	start := time.Now()
	defer func() {
		metrics.RecordRepositoryReadLatency(float64(time.Since(start).Milliseconds()))
	}()

	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[id]
	if !ok {
		return model.Shoot{}, fmt.Errorf("%q: %w", id, ErrNotFound)
	}
	return s.shoots[i], nil
}

// List returns a copy of the history in stored order.
func (s *MemStore) List(_ context.Context) ([]model.Shoot, error) {
	start := time.Now()
	defer func() {
		metrics.RecordRepositoryReadLatency(float64(time.Since(start).Milliseconds()))
	}()

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Shoot, len(s.shoots))
	copy(out, s.shoots)
	return out, nil
}

// Count returns the number of stored shoots.
func (s *MemStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.shoots)
}
