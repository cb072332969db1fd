// Package app provides the core business service that implements the
// dependencies required by the HTTP API and the worker pool.
package app

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	submissionqueue "github.com/fletching/quiver/internal/adapters/mq/queue"
	workerpool "github.com/fletching/quiver/internal/adapters/mq/worker"
	"github.com/fletching/quiver/internal/adapters/repository"
	"github.com/fletching/quiver/internal/domain/achievements"
	"github.com/fletching/quiver/internal/domain/dedupe"
	"github.com/fletching/quiver/internal/domain/model"
	"github.com/fletching/quiver/internal/domain/rounds"
	"github.com/fletching/quiver/pkg/logger"
	"github.com/fletching/quiver/pkg/metrics"
)

// Service wires the achievement engine behind the API and worker pool.
type Service struct {
	mu sync.RWMutex

	// Core components
	store      repository.Store
	deduper    dedupe.Deduper
	queue      submissionqueue.Queue
	calculator *achievements.Calculator
	rounds     rounds.Provider
	pool       *workerpool.WorkerPool

	// Configuration
	workerCount int
	queueSize   int
	dedupeSize  int
	maxHistory  int
	clock       func() time.Time

	// Unlocked-achievement snapshot for the newly-unlocked diff
	snapMu   sync.Mutex
	unlocked map[string]bool

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithWorkerCount sets the number of worker goroutines.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithQueueSize sets the maximum size of the submission queue.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithDedupeSize sets the size of the deduplication cache.
func WithDedupeSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.dedupeSize = size
		}
	}
}

// WithMaxHistory caps how many of the most recent shoots are considered
// per evaluation. Zero means unbounded.
func WithMaxHistory(n int) Option {
	return func(s *Service) {
		if n >= 0 {
			s.maxHistory = n
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRoundProvider overrides the round catalogue.
func WithRoundProvider(p rounds.Provider) Option {
	return func(s *Service) {
		if p != nil {
			s.rounds = p
		}
	}
}

// WithClock overrides the time source, for deterministic tests.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount: runtime.NumCPU() * 2,
		queueSize:   10_000,
		dedupeSize:  100_000,
		clock:       time.Now,
		unlocked:    make(map[string]bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes and starts the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting achievement service...")

	s.store = repository.NewMemStore(ctx)
	s.deduper = dedupe.NewInMemoryDeduper(
		dedupe.WithMaxSize(s.dedupeSize),
	)
	s.queue = submissionqueue.NewInMemoryQueue(
		submissionqueue.WithCapacity(s.queueSize),
	)
	if s.rounds == nil {
		s.rounds = rounds.NewStaticProvider()
	}
	s.calculator = achievements.NewCalculator(s.rounds,
		achievements.WithClock(s.clock),
		achievements.WithErrorHook(func(def achievements.Definition, err error) {
			metrics.RecordEvaluationError()
			s.logger.Warn(ctx, "achievement evaluation failed",
				logger.String("achievement", def.ID), logger.Error(err))
		}),
	)
	metrics.UpdateDefinitionsTotal(len(s.calculator.Registry()))

	s.pool = workerpool.NewWorkerPool(s.workerCount, s.queue, s.store, s)
	s.pool.Start(ctx)

	s.started = true
	s.logger.Info(ctx, "achievement service started",
		logger.Int("workers", s.workerCount),
		logger.Int("queueSize", s.queueSize),
		logger.Int("dedupeSize", s.dedupeSize),
		logger.Int("definitions", len(s.calculator.Registry())))
	return nil
}

// Stop shuts down the queue and worker pool.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	ctx := context.Background()
	if err := s.queue.Close(); err != nil {
		s.logger.Warn(ctx, "queue close failed", logger.Error(err))
	}
	if err := s.pool.Shutdown(ctx); err != nil {
		s.logger.Warn(ctx, "worker pool shutdown failed", logger.Error(err))
	}
	s.started = false
	s.logger.Info(ctx, "achievement service stopped")
}

// SeenAndRecord implements dedupe.Deduper via delegation.
func (s *Service) SeenAndRecord(ctx context.Context, id string) bool {
	return s.deduper.SeenAndRecord(ctx, id)
}

// Unrecord implements dedupe.Deduper via delegation.
func (s *Service) Unrecord(ctx context.Context, id string) {
	s.deduper.Unrecord(ctx, id)
}

// Size implements dedupe.Deduper via delegation.
func (s *Service) Size() int64 {
	return s.deduper.Size()
}

// Enqueue pushes a shoot submission for async processing.
func (s *Service) Enqueue(ctx context.Context, sh model.Shoot) bool {
	return s.queue.Enqueue(ctx, sh)
}

// history returns the stored history, capped to the most recent
// maxHistory entries when configured. Stored order is preserved.
func (s *Service) history(ctx context.Context) ([]model.Shoot, error) {
	list, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	if s.maxHistory > 0 && len(list) > s.maxHistory {
		list = list[len(list)-s.maxHistory:]
	}
	return list, nil
}

// evaluate runs the calculator over the current history, optionally
// folding in an unsaved shoot.
func (s *Service) evaluate(ctx context.Context, current *model.Shoot) ([]achievements.Computed, error) {
	start := time.Now()
	defer func() {
		metrics.RecordEvaluationLatency(float64(time.Since(start).Milliseconds()))
	}()

	history, err := s.history(ctx)
	if err != nil {
		return nil, err
	}
	return s.calculator.Evaluate(model.Context{Current: current, History: history}), nil
}

// Achievements returns the full computed list against saved history.
func (s *Service) Achievements(ctx context.Context) ([]achievements.Computed, error) {
	return s.evaluate(ctx, nil)
}

// Preview evaluates with an unsaved, in-progress shoot folded in.
func (s *Service) Preview(ctx context.Context, current model.Shoot) ([]achievements.Computed, error) {
	return s.evaluate(ctx, &current)
}

// GroupProgress returns per-tier rollups of the computed list.
func (s *Service) GroupProgress(ctx context.Context) (achievements.GroupProgress, error) {
	list, err := s.evaluate(ctx, nil)
	if err != nil {
		return achievements.GroupProgress{}, err
	}
	return achievements.AggregateGroups(list), nil
}

// ShootAchievements returns the achievements a shoot earned, newest first.
func (s *Service) ShootAchievements(ctx context.Context, shootID string) ([]achievements.Computed, error) {
	list, err := s.evaluate(ctx, nil)
	if err != nil {
		return nil, err
	}
	return achievements.ForShoot(list, shootID), nil
}

// Diary returns the merged achievement/note timeline, newest first.
func (s *Service) Diary(ctx context.Context) ([]achievements.TimelineItem, error) {
	list, err := s.evaluate(ctx, nil)
	if err != nil {
		return nil, err
	}
	history, err := s.history(ctx)
	if err != nil {
		return nil, err
	}
	return achievements.Timeline(list, history), nil
}

// Refresh re-evaluates achievements and diffs the unlocked set against
// the previous snapshot, returning ids newly unlocked since the last
// call. The engine itself stays stateless; this snapshot is the
// notification layer's bookkeeping.
func (s *Service) Refresh(ctx context.Context) ([]string, error) {
	list, err := s.evaluate(ctx, nil)
	if err != nil {
		return nil, err
	}

	s.snapMu.Lock()
	defer s.snapMu.Unlock()

	var newly []string
	earned := 0
	for _, c := range list {
		if !c.Unlocked {
			continue
		}
		earned++
		if !s.unlocked[c.ID] {
			s.unlocked[c.ID] = true
			newly = append(newly, c.ID)
		}
	}
	metrics.UpdateEarnedTotal(earned)
	metrics.UpdateSnapshotTimestamp(s.clock())
	return newly, nil
}

// GetStats returns a service statistics snapshot for the stats endpoint.
func (s *Service) GetStats() map[string]interface{} {
	ctx := context.Background()

	s.snapMu.Lock()
	earned := len(s.unlocked)
	s.snapMu.Unlock()

	stats := map[string]interface{}{
		"started":      s.started,
		"workers":      s.workerCount,
		"queue_length": 0,
		"dedupe_size":  s.deduper.Size(),
		"shoots":       0,
		"definitions":  0,
		"earned":       earned,
	}
	if s.queue != nil {
		stats["queue_length"] = s.queue.Len(ctx)
	}
	if s.store != nil {
		stats["shoots"] = s.store.Count(ctx)
	}
	if s.calculator != nil {
		stats["definitions"] = len(s.calculator.Registry())
	}
	return stats
}
