package concurrency

import (
	"context"
	"sync"
	"time"

	"passwordStrengthBackend/internal/core/domain"
)

type WorkerPool struct {
	workers    []*Worker
	tasks      chan Task
	results    chan Result
	numWorkers int
	metrics    *PoolMetrics
	wg         sync.WaitGroup
}

type Worker struct {
	id      int
	tasks   chan Task
	results chan Result
	metrics *PoolMetrics
}

type Task struct {
	Index   int
	Run     func() (*domain.AnalysisResult, error)
	Timeout time.Duration
}

type Result struct {
	Index    int
	Value    *domain.AnalysisResult
	Err      error
	Duration time.Duration
	WorkerID int
}

type PoolMetrics struct {
	CompletedTasks int64
	FailedTasks    int64
	TotalDuration  time.Duration
	mu             sync.Mutex
}

const DefaultTaskTimeout = 5 * time.Second

func NewWorkerPool(numWorkers, queueSize int) *WorkerPool {
	pool := &WorkerPool{
		workers:    make([]*Worker, numWorkers),
		tasks:      make(chan Task, queueSize),
		results:    make(chan Result, queueSize),
		numWorkers: numWorkers,
		metrics:    &PoolMetrics{},
	}

	for i := 0; i < numWorkers; i++ {
		pool.workers[i] = &Worker{
			id:      i,
			tasks:   pool.tasks,
			results: pool.results,
			metrics: pool.metrics,
		}
	}

	return pool
}

func (p *WorkerPool) Start(ctx context.Context) {
	for _, worker := range p.workers {
		p.wg.Add(1)
		go worker.start(ctx, &p.wg)
	}
}

func (p *WorkerPool) Submit(task Task) {
	p.tasks <- task
}

func (p *WorkerPool) Results() <-chan Result {
	return p.results
}

// Stop closes the task queue, waits for in-flight work, then closes the
// results channel. The results buffer must be sized for every submitted task
// or Stop can deadlock.
func (p *WorkerPool) Stop() {
	close(p.tasks)
	p.wg.Wait()
	close(p.results)
}

func (p *WorkerPool) Completed() int64 {
	p.metrics.mu.Lock()
	defer p.metrics.mu.Unlock()
	return p.metrics.CompletedTasks
}

func (p *WorkerPool) Failed() int64 {
	p.metrics.mu.Lock()
	defer p.metrics.mu.Unlock()
	return p.metrics.FailedTasks
}

func (w *Worker) start(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case task, ok := <-w.tasks:
			if !ok {
				return
			}

			startTime := time.Now()

			timeout := task.Timeout
			if timeout == 0 {
				timeout = DefaultTaskTimeout
			}
			taskCtx, cancel := context.WithTimeout(ctx, timeout)
			value, err := w.executeTask(taskCtx, task)
			cancel()

			duration := time.Since(startTime)
			w.updateMetrics(err == nil, duration)

			w.results <- Result{
				Index:    task.Index,
				Value:    value,
				Err:      err,
				Duration: duration,
				WorkerID: w.id,
			}
		}
	}
}

func (w *Worker) executeTask(ctx context.Context, task Task) (*domain.AnalysisResult, error) {
	resultCh := make(chan *domain.AnalysisResult, 1)
	errCh := make(chan error, 1)

	go func() {
		value, err := task.Run()
		if err != nil {
			errCh <- err
			return
		}
		resultCh <- value
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case err := <-errCh:
		return nil, err
	case result := <-resultCh:
		return result, nil
	}
}

func (w *Worker) updateMetrics(success bool, duration time.Duration) {
	w.metrics.mu.Lock()
	defer w.metrics.mu.Unlock()

	if success {
		w.metrics.CompletedTasks++
	} else {
		w.metrics.FailedTasks++
	}
	w.metrics.TotalDuration += duration
}
