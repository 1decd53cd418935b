package worker

import (
	"context"
	"sync"
	"time"

	"github.com/vytor/chessroyale/internal/logger"
)

type Job interface {
	Run(context.Context) error
	Name() string
}

// JobFunc adapts a function to Job.
type JobFunc struct {
	JobName string
	Fn      func(context.Context) error
}

func (j JobFunc) Name() string                  { return j.JobName }
func (j JobFunc) Run(ctx context.Context) error { return j.Fn(ctx) }

// Pool runs submitted jobs on a fixed set of workers. With one worker, jobs
// run strictly in submission order.
type Pool struct {
	jobs    chan Job
	wg      sync.WaitGroup
	workers int
	queue   int
	cancel  context.CancelFunc
	log     *logger.Logger

	mu      sync.Mutex
	stopped bool
}

func NewPool(workers, queueSize int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 64
	}
	log := logger.Default().WithPrefix("worker-pool")
	log.Debug("creating worker pool with %d workers and queue size %d", workers, queueSize)
	return &Pool{
		jobs:    make(chan Job, queueSize),
		workers: workers,
		queue:   queueSize,
		log:     log,
	}
}

func (p *Pool) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.log.Info("starting worker pool with %d workers", p.workers)

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go func(id int) {
			defer p.wg.Done()
			workerLog := p.log.WithField("worker_id", id)
			workerLog.Debug("worker started")

			for {
				select {
				case <-ctx.Done():
					workerLog.Debug("worker shutting down (context cancelled)")
					return
				case job, ok := <-p.jobs:
					if !ok || job == nil {
						workerLog.Debug("worker shutting down (queue closed)")
						return
					}

					jobLog := workerLog.WithField("job", job.Name())
					jobLog.Debug("starting job")
					start := time.Now()

					jobCtx := logger.NewContext(ctx, jobLog)

					if err := job.Run(jobCtx); err != nil {
						jobLog.Error("job failed after %v: %v", time.Since(start), err)
					} else {
						jobLog.Debug("job completed in %v", time.Since(start))
					}
				}
			}
		}(i + 1)
	}
}

// Stop cancels running jobs, drops pending ones and waits for workers.
func (p *Pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.jobs)
	p.mu.Unlock()

	p.log.Info("stopping worker pool")
	if p.cancel != nil {
		p.cancel()
	}
	p.wg.Wait()
	p.log.Info("worker pool stopped")
}

// Submit queues job. It reports false when the pool is stopped.
func (p *Pool) Submit(job Job) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stopped {
		p.log.Warn("pool stopped, dropping job: %s", job.Name())
		return false
	}
	p.log.Debug("submitting job: %s", job.Name())
	p.jobs <- job
	return true
}

// QueueSize returns the current number of pending jobs.
func (p *Pool) QueueSize() int {
	return len(p.jobs)
}
