package execution

import (
	"context"
	"sync"
	"time"

	"fixcheck/internal/config"
	"fixcheck/internal/domain"
)

// WorkerPool loads fixture files in parallel
type WorkerPool struct {
	config   *config.Config
	runner   *Runner
	progress Progress
}

// NewWorkerPool creates a new WorkerPool
func NewWorkerPool(cfg *config.Config, runner *Runner) *WorkerPool {
	return &WorkerPool{
		config: cfg,
		runner: runner,
	}
}

// SetProgress sets the progress reporter for the worker pool
func (wp *WorkerPool) SetProgress(progress Progress) {
	wp.progress = progress
}

var _ Executor = (*WorkerPool)(nil)

// Execute loads every file. Results are returned in input order. With the
// fail-fast flag set, loading stops after the first failure and the returned
// slice only holds files that finished.
func (wp *WorkerPool) Execute(files []string) ([]domain.LoadResult, time.Duration, error) {
	failFast := wp.config.Flags.FailFast
	if len(files) == 0 {
		return nil, 0, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	type job struct {
		index int
		path  string
	}
	queue := make(chan job)
	go func() {
		defer close(queue)
		for i, f := range files {
			select {
			case <-ctx.Done():
				return
			case queue <- job{index: i, path: f}:
			}
		}
	}()

	results := make([]domain.LoadResult, len(files))
	done := make([]bool, len(files))

	var mu sync.Mutex
	var loaded, failed int
	startTime := time.Now()

	workerCount := wp.config.Workers
	if workerCount <= 0 {
		workerCount = 1
	}

	var wg sync.WaitGroup
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range queue {
				result := wp.runner.Run(j.path)

				mu.Lock()
				if failFast && failed > 0 {
					mu.Unlock()
					continue
				}
				results[j.index] = result
				done[j.index] = true
				if result.Success() {
					loaded++
				} else {
					failed++
					if failFast {
						cancel()
					}
				}
				if wp.progress != nil {
					wp.progress.Update(loaded, failed)
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if wp.progress != nil {
		wp.progress.Finish()
	}

	ordered := make([]domain.LoadResult, 0, len(files))
	for i, r := range results {
		if done[i] {
			ordered = append(ordered, r)
		}
	}
	return ordered, time.Since(startTime), nil
}
