package concurrency

import (
	"context"
	"errors"
	"testing"
	"time"

	"passwordStrengthBackend/internal/core/domain"
)

func TestWorkerPool_CompletesAllTasks(t *testing.T) {
	const taskCount = 20

	pool := NewWorkerPool(4, taskCount)
	pool.Start(context.Background())

	for i := 0; i < taskCount; i++ {
		i := i
		pool.Submit(Task{
			Index: i,
			Run: func() (*domain.AnalysisResult, error) {
				return &domain.AnalysisResult{Length: i}, nil
			},
		})
	}
	pool.Stop()

	seen := make(map[int]bool, taskCount)
	for r := range pool.Results() {
		if r.Err != nil {
			t.Fatalf("task %d failed: %v", r.Index, r.Err)
		}
		if r.Value.Length != r.Index {
			t.Errorf("task %d produced value for %d", r.Index, r.Value.Length)
		}
		seen[r.Index] = true
	}

	if len(seen) != taskCount {
		t.Errorf("completed %d tasks, want %d", len(seen), taskCount)
	}
	if pool.Completed() != taskCount {
		t.Errorf("Completed() = %d, want %d", pool.Completed(), taskCount)
	}
}

func TestWorkerPool_ReportsTaskErrors(t *testing.T) {
	wantErr := errors.New("boom")

	pool := NewWorkerPool(2, 2)
	pool.Start(context.Background())

	pool.Submit(Task{Index: 0, Run: func() (*domain.AnalysisResult, error) { return nil, wantErr }})
	pool.Submit(Task{Index: 1, Run: func() (*domain.AnalysisResult, error) { return &domain.AnalysisResult{}, nil }})
	pool.Stop()

	var failed int64
	for r := range pool.Results() {
		if r.Index == 0 && !errors.Is(r.Err, wantErr) {
			t.Errorf("task 0 error = %v, want %v", r.Err, wantErr)
		}
		if r.Err != nil {
			failed++
		}
	}

	if failed != 1 {
		t.Errorf("got %d failed tasks, want 1", failed)
	}
	if pool.Failed() != 1 {
		t.Errorf("Failed() = %d, want 1", pool.Failed())
	}
}

func TestWorkerPool_TaskTimeout(t *testing.T) {
	pool := NewWorkerPool(1, 1)
	pool.Start(context.Background())

	pool.Submit(Task{
		Index:   0,
		Timeout: 10 * time.Millisecond,
		Run: func() (*domain.AnalysisResult, error) {
			time.Sleep(time.Second)
			return &domain.AnalysisResult{}, nil
		},
	})
	pool.Stop()

	r := <-pool.Results()
	if !errors.Is(r.Err, context.DeadlineExceeded) {
		t.Errorf("task error = %v, want deadline exceeded", r.Err)
	}
}
