// Package worker defines worker contracts for asynchronous shoot intake
// and achievement recomputation.
package worker

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/fletching/quiver/internal/adapters/repository"
	"github.com/fletching/quiver/internal/domain/model"
	"github.com/fletching/quiver/pkg/logger"
	"github.com/fletching/quiver/pkg/metrics"
)

// Default worker configuration constants.
const (
	workerShutdownTimeout = 5 * time.Second
	poolShutdownTimeout   = 30 * time.Second
)

// Submission abstracts what workers read off the queue.
type Submission = model.Shoot

// Historian persists submitted shoots.
type Historian interface {
	Add(ctx context.Context, s model.Shoot) error
}

// Refresher re-evaluates achievements after the history changed and
// returns the ids of achievements newly unlocked since the previous
// snapshot. The diff lives here, outside the pure engine.
type Refresher interface {
	Refresh(ctx context.Context) ([]string, error)
}

// Queue defines how workers receive submissions.
type Queue interface {
	Dequeue(ctx context.Context) <-chan Submission
}

// Worker processes submissions using the provided interfaces.
type Worker interface {
	// Run starts the worker loop until ctx is canceled.
	Run(ctx context.Context)

	// Shutdown gracefully stops the worker.
	Shutdown(ctx context.Context) error
}

// InMemoryWorker implements Worker for processing shoot submissions.
type InMemoryWorker struct {
	queue     Queue
	historian Historian
	refresher Refresher
	name      string

	shutdown chan struct{}
	done     chan struct{}

	logger logger.Logger
}

// NewInMemoryWorker creates a new worker with configuration options.
func NewInMemoryWorker(queue Queue, historian Historian, refresher Refresher, opts ...Option) *InMemoryWorker {
	w := &InMemoryWorker{
		queue:     queue,
		historian: historian,
		refresher: refresher,
		name:      "worker",
		shutdown:  make(chan struct{}),
		done:      make(chan struct{}),
		logger:    logger.Get().Named("worker"),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.name != "worker" {
		w.logger = w.logger.Named(w.name)
	}
	return w
}

// Run starts the worker loop.
func (w *InMemoryWorker) Run(ctx context.Context) {
	defer close(w.done)

	submissions := w.queue.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.shutdown:
			return
		case s, ok := <-submissions:
			if !ok {
				return
			}
			if err := w.process(ctx, s); err != nil {
				metrics.RecordWorkerError()
				w.logger.Error(ctx, "error processing shoot", logger.String("shoot_id", s.ID), logger.Error(err))
			}
		}
	}
}

// process persists the shoot and refreshes the achievement snapshot.
func (w *InMemoryWorker) process(ctx context.Context, s Submission) error {
	start := time.Now()
	defer func() {
		metrics.RecordWorkerProcessingLatency(float64(time.Since(start).Milliseconds()))
	}()

	if err := w.historian.Add(ctx, s); err != nil {
		if errors.Is(err, repository.ErrDuplicateID) {
			metrics.RecordShootDuplicate()
			return nil
		}
		return fmt.Errorf("store shoot: %w", err)
	}

	newly, err := w.refresher.Refresh(ctx)
	if err != nil {
		return fmt.Errorf("refresh achievements: %w", err)
	}
	metrics.RecordShootProcessed()
	if len(newly) > 0 {
		metrics.RecordNewlyUnlocked(len(newly))
		w.logger.Info(ctx, "achievements unlocked",
			logger.String("shoot_id", s.ID),
			logger.Int("count", len(newly)),
			logger.Any("achievements", newly))
	}
	return nil
}

// Shutdown gracefully stops the worker.
func (w *InMemoryWorker) Shutdown(ctx context.Context) error {
	close(w.shutdown)

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		w.logger.Warn(ctx, "shutdown timed out")
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}

// WorkerPool runs a fixed set of workers over one queue.
type WorkerPool struct {
	workers []*InMemoryWorker
	wg      sync.WaitGroup
	logger  logger.Logger
}

// NewWorkerPool creates count workers sharing the queue and collaborators.
func NewWorkerPool(count int, queue Queue, historian Historian, refresher Refresher) *WorkerPool {
	if count < 1 {
		count = 1
	}
	p := &WorkerPool{logger: logger.Get().Named("pool")}
	for i := 0; i < count; i++ {
		p.workers = append(p.workers, NewInMemoryWorker(queue, historian, refresher,
			WithName("worker-"+strconv.Itoa(i))))
	}
	return p
}

// Start launches every worker.
func (p *WorkerPool) Start(ctx context.Context) {
	for _, w := range p.workers {
		p.wg.Add(1)
		go func(w *InMemoryWorker) {
			defer p.wg.Done()
			w.Run(ctx)
		}(w)
	}
	metrics.UpdateWorkerCount(len(p.workers))
}

// Shutdown stops every worker, bounded by poolShutdownTimeout.
func (p *WorkerPool) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, poolShutdownTimeout)
	defer cancel()

	var firstErr error
	for _, w := range p.workers {
		wctx, wcancel := context.WithTimeout(ctx, workerShutdownTimeout)
		if err := w.Shutdown(wctx); err != nil && firstErr == nil {
			firstErr = err
		}
		wcancel()
	}
	p.wg.Wait()
	metrics.UpdateWorkerCount(0)
	return firstErr
}

// Size returns the number of workers in the pool.
func (p *WorkerPool) Size() int {
	return len(p.workers)
}
