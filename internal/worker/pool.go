package worker

import (
	"context"
	"sync"

	"github.com/cultiv-ai/b24bridge/internal/logger"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// Pool represents a worker pool
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup
	quit     chan struct{}
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
		quit:     make(chan struct{}),
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker is the worker loop
func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			p.run(job)
		case <-p.quit:
			// Drain the queue before exiting so jobs accepted before
			// Stop are still executed
			for {
				select {
				case job := <-p.jobQueue:
					p.run(job)
				default:
					return
				}
			}
		}
	}
}

func (p *Pool) run(job Job) {
	ctx := context.Background()
	if err := job.Process(ctx); err != nil {
		// Job failures never crash the worker
		logger.FromContext(ctx).Error(LogMsgWorkerJobFailed, "error", err)
	}
}

// TryEnqueue adds a job to the queue without blocking. It returns false
// when the queue is full, leaving the caller to decide whether to drop or
// retry.
func (p *Pool) TryEnqueue(job Job) bool {
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false
	}
}

// Enqueue adds a job to the queue, blocking until there is room.
func (p *Pool) Enqueue(job Job) {
	p.jobQueue <- job
}

// Stop stops the workers and waits for them to finish. Jobs already in
// the queue are executed before workers exit; callers must not enqueue
// after Stop.
func (p *Pool) Stop() {
	close(p.quit)
	p.wg.Wait()
}

// QueueDepth returns the number of jobs currently waiting.
func (p *Pool) QueueDepth() int {
	return len(p.jobQueue)
}
