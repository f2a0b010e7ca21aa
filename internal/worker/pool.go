// Package worker runs root-move searches on a fixed set of goroutines.
package worker

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/checkers-go/internal/checkers"
)

// ErrStopped is returned by Submit once the pool has been stopped.
var ErrStopped = errors.New("worker pool stopped")

// Job is one root move to search. Board is the position before Move and is
// shared between jobs, so searches must not mutate it.
type Job struct {
	Board  *checkers.Board
	ToMove checkers.Colour
	Move   checkers.Move
	Depth  int // plies below Move
	Index  int // position of Move in the root list
}

// Result is the outcome of one Job.
type Result struct {
	Index int
	Move  checkers.Move
	Nodes uint64
	Err   error
}

// SearchFunc searches one job. ctx is the context the pool was started with.
type SearchFunc func(ctx context.Context, job Job) Result

// Pool feeds jobs to a fixed number of workers and collects their results.
// Results arrive in completion order; use Result.Index to restore order.
type Pool struct {
	workers int
	queue   int
	search  SearchFunc
	jobs    chan Job
	results chan Result
	wg      sync.WaitGroup
	stopped atomic.Bool
}

// Option configures a Pool.
type Option func(*Pool)

// Workers sets the number of worker goroutines. Values below 1 keep the
// default of one per CPU.
func Workers(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// QueueSize sets the capacity of the job and result queues.
func QueueSize(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.queue = n
		}
	}
}

// New creates a pool that runs search for every submitted job.
func New(search SearchFunc, opts ...Option) *Pool {
	p := &Pool{
		workers: runtime.GOMAXPROCS(0),
		queue:   16,
		search:  search,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.jobs = make(chan Job, p.queue)
	p.results = make(chan Result, p.queue)
	return p
}

// Start launches the workers. Jobs taken from the queue after ctx is done or
// after Stop are dropped without a result.
func (p *Pool) Start(ctx context.Context) {
	for range p.workers {
		p.wg.Go(func() {
			for job := range p.jobs {
				if p.stopped.Load() || ctx.Err() != nil {
					continue
				}
				p.results <- p.search(ctx, job)
			}
		})
	}
}

// Submit queues job, blocking while the queue is full. It must not be
// called after Close.
func (p *Pool) Submit(ctx context.Context, job Job) error {
	if p.stopped.Load() {
		return ErrStopped
	}
	select {
	case p.jobs <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TrySubmit queues job if there is room. It reports false when the queue is
// full or the pool is stopped.
func (p *Pool) TrySubmit(job Job) bool {
	if p.stopped.Load() {
		return false
	}
	select {
	case p.jobs <- job:
		return true
	default:
		return false
	}
}

// Stop makes workers drop the remaining queued jobs.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// Stopped reports whether Stop has been called.
func (p *Pool) Stopped() bool {
	return p.stopped.Load()
}

// Close ends the job queue, waits for the workers and then closes Results.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel results are delivered on. It is closed by
// Close once every worker has finished.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.workers
}
