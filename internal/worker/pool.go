// Package worker provides the concurrency plumbing for batch imports:
// a bounded task pool and per-domain rate limiting.
package worker

import (
	"context"
	"sync"
)

// Task is a unit of work executed by the pool.
type Task interface {
	Run(ctx context.Context) Outcome
}

// Outcome is the result of a task run.
type Outcome interface {
	Err() error
}

// Pool executes tasks on a fixed number of workers. Outcomes go into a
// collector as they complete, so workers never stall on collection and
// Submit stays safe to call from the same goroutine as Wait no matter
// how many tasks are queued.
type Pool struct {
	workers   int
	tasks     chan Task
	collector *OutcomeCollector
	wg        sync.WaitGroup
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// NewPool creates a pool with the given worker count (minimum 1).
func NewPool(workers int) *Pool {
	return NewPoolContext(context.Background(), workers)
}

// NewPoolContext creates a pool whose tasks run under the given parent
// context. Cancelling the parent cancels in-flight work.
func NewPoolContext(parent context.Context, workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(parent)

	return &Pool{
		workers:   workers,
		tasks:     make(chan Task, workers*2),
		collector: NewOutcomeCollector(),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Start launches the workers.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.work()
	}
}

func (p *Pool) work() {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case task, ok := <-p.tasks:
			if !ok {
				return
			}
			p.collector.Add(task.Run(p.ctx))
		}
	}
}

// Submit queues a task. Submissions after Shutdown are dropped.
func (p *Pool) Submit(task Task) {
	select {
	case <-p.ctx.Done():
		return
	case p.tasks <- task:
	}
}

// Wait closes the queue, waits for the workers to drain it, and
// returns every outcome.
func (p *Pool) Wait() []Outcome {
	p.closeOnce.Do(func() {
		close(p.tasks)
	})
	p.wg.Wait()
	return p.collector.Outcomes()
}

// Shutdown cancels in-flight work and releases the workers.
func (p *Pool) Shutdown() {
	p.cancel()
	p.wg.Wait()
}

// OutcomeCollector gathers outcomes from concurrent workers.
type OutcomeCollector struct {
	mu       sync.Mutex
	outcomes []Outcome
}

// NewOutcomeCollector creates an empty collector.
func NewOutcomeCollector() *OutcomeCollector {
	return &OutcomeCollector{}
}

// Add records one outcome. Safe for concurrent use.
func (c *OutcomeCollector) Add(outcome Outcome) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.outcomes = append(c.outcomes, outcome)
}

// Outcomes returns everything collected so far.
func (c *OutcomeCollector) Outcomes() []Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.outcomes
}
