package collector

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/routeaudit/routeaudit/internal/routes"
	"github.com/routeaudit/routeaudit/internal/util"
)

// Phase identifies a progress notification for one namespace fetch
type Phase int

const (
	// PhaseStarted is emitted when a namespace fetch is dispatched to a worker
	PhaseStarted Phase = iota
	// PhaseFinished is emitted when a namespace fetch reaches a terminal state
	PhaseFinished
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseStarted:
		return "started"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// ProgressFunc receives per-namespace progress notifications. It is called
// from worker goroutines and is purely observational: it must not block,
// and it never affects scheduling.
type ProgressFunc func(namespace string, phase Phase)

// Task is one unit of fan-out work: the route fetch for a single namespace
type Task struct {
	// Namespace identifies which namespace this task queries
	Namespace string

	// Fetch performs the route query for the namespace
	Fetch func(ctx context.Context) ([]routes.Record, error)
}

// Pool executes one bounded batch of namespace fetches. The number of
// simultaneously in-flight fetches never exceeds the worker count; a worker
// count of 1 degenerates to fully sequential execution.
type Pool struct {
	// workers is the number of concurrent fetch slots
	workers int

	// tasks is the queue of namespace fetches to execute
	tasks []Task

	// mu protects the task queue
	mu sync.Mutex

	// logger for structured logging
	logger *slog.Logger

	// running indicates if the pool is currently executing
	running atomic.Bool
}

// NewPool creates a worker pool with the specified number of fetch slots.
// workers must be > 0, otherwise it defaults to 1.
func NewPool(workers int, logger *slog.Logger) *Pool {
	if workers <= 0 {
		workers = 1
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Pool{
		workers: workers,
		tasks:   make([]Task, 0),
		logger:  logger,
	}
}

// Submit adds a namespace fetch to the pool's queue.
// Returns an error if the pool is already executing.
func (p *Pool) Submit(task Task) error {
	if p.running.Load() {
		return fmt.Errorf("pool is running, cannot submit new tasks")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if task.Namespace == "" {
		return fmt.Errorf("task must have a namespace")
	}

	if task.Fetch == nil {
		return fmt.Errorf("task must have a fetch function")
	}

	p.tasks = append(p.tasks, task)
	p.logger.Debug("task submitted", "namespace", task.Namespace, "total_tasks", len(p.tasks))

	return nil
}

// Execute runs all submitted fetches and returns one outcome per task,
// in submission order. Completion order is non-deterministic; the outcome
// slice ordering is not.
func (p *Pool) Execute(ctx context.Context) []Outcome {
	return p.ExecuteWithProgress(ctx, nil)
}

// ExecuteWithProgress runs all fetches, notifying progress as each namespace
// fetch begins and ends. A failed fetch is diagnosed immediately when it
// completes, not batched until the end of the run.
func (p *Pool) ExecuteWithProgress(ctx context.Context, progress ProgressFunc) []Outcome {
	if !p.running.CompareAndSwap(false, true) {
		p.logger.Error("pool is already running")
		return []Outcome{}
	}
	defer p.running.Store(false)

	p.mu.Lock()
	taskCount := len(p.tasks)
	if taskCount == 0 {
		p.mu.Unlock()
		p.logger.Debug("no namespaces to fetch")
		return []Outcome{}
	}

	tasksCopy := make([]Task, len(p.tasks))
	copy(tasksCopy, p.tasks)
	p.mu.Unlock()

	p.logger.Info("starting route collection",
		"workers", p.workers,
		"namespaces", taskCount)

	startTime := time.Now()

	// Buffer size = task count so neither side blocks on a full channel
	taskChan := make(chan taskWithIndex, taskCount)
	outcomeChan := make(chan outcomeWithIndex, taskCount)

	var completed atomic.Int32

	var wg sync.WaitGroup
	workerCount := p.workers
	if workerCount > taskCount {
		workerCount = taskCount
	}

	p.logger.Debug("starting workers", "count", workerCount)

	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go p.worker(ctx, i, taskChan, outcomeChan, &wg, &completed, taskCount, progress)
	}

	for i, task := range tasksCopy {
		select {
		case taskChan <- taskWithIndex{task: task, index: i}:
		case <-ctx.Done():
			p.logger.Warn("context cancelled while queuing tasks")
			goto drainWorkers
		}
	}

drainWorkers:
	close(taskChan)
	wg.Wait()
	close(outcomeChan)

	outcomes := make([]Outcome, taskCount)
	for o := range outcomeChan {
		if o.index >= 0 && o.index < taskCount {
			outcomes[o.index] = o.outcome
		}
	}

	// Tasks never dispatched (context cancelled before a worker picked them
	// up) still get a terminal failure outcome: every namespace must reach
	// a terminal state.
	for i := range outcomes {
		if outcomes[i].Namespace == "" {
			outcomes[i] = Outcome{
				Namespace: tasksCopy[i].Namespace,
				Err:       fmt.Errorf("fetch not executed: %w", ctx.Err()),
			}
		}
	}

	summary := Summarize(outcomes)
	p.logger.Info("route collection completed",
		"total", summary.Total,
		"succeeded", summary.Succeeded,
		"failed", summary.Failed,
		"duration", time.Since(startTime))

	return outcomes
}

// worker drains the task channel, fetching one namespace at a time
func (p *Pool) worker(
	ctx context.Context,
	workerID int,
	taskChan <-chan taskWithIndex,
	outcomeChan chan<- outcomeWithIndex,
	wg *sync.WaitGroup,
	completed *atomic.Int32,
	total int,
	progress ProgressFunc,
) {
	defer wg.Done()

	p.logger.Debug("worker started", "worker_id", workerID)

	for {
		select {
		case <-ctx.Done():
			p.logger.Debug("worker stopping due to context cancellation", "worker_id", workerID)
			return

		case taskItem, ok := <-taskChan:
			if !ok {
				p.logger.Debug("worker finished", "worker_id", workerID)
				return
			}

			if progress != nil {
				progress(taskItem.task.Namespace, PhaseStarted)
			}

			outcome := p.runTask(ctx, taskItem.task)

			select {
			case outcomeChan <- outcomeWithIndex{outcome: outcome, index: taskItem.index}:
			case <-ctx.Done():
				p.logger.Warn("context cancelled while recording outcome",
					"worker_id", workerID,
					"namespace", taskItem.task.Namespace)
				return
			}

			completedCount := completed.Add(1)
			p.logger.Debug("fetch completed",
				"worker_id", workerID,
				"namespace", taskItem.task.Namespace,
				"success", outcome.Err == nil,
				"duration", outcome.Duration,
				"progress", fmt.Sprintf("%d/%d", completedCount, total))

			if progress != nil {
				progress(taskItem.task.Namespace, PhaseFinished)
			}
		}
	}
}

// runTask executes a single namespace fetch and converts every failure
// mode, including a panicking fetch, into an outcome. A misbehaving fetch
// affects only its own namespace, never its siblings.
func (p *Pool) runTask(ctx context.Context, task Task) (outcome Outcome) {
	startTime := time.Now()

	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("unexpected fetch failure",
				"namespace", task.Namespace,
				"panic", r)
			outcome = Outcome{
				Namespace: task.Namespace,
				Err:       util.WrapNamespaceError(task.Namespace, fmt.Errorf("unexpected fetch failure: %v", r)),
				Duration:  time.Since(startTime),
			}
		}
	}()

	p.logger.Debug("fetching routes", "namespace", task.Namespace)

	select {
	case <-ctx.Done():
		return Outcome{
			Namespace: task.Namespace,
			Err:       fmt.Errorf("fetch cancelled before execution: %w", ctx.Err()),
			Duration:  time.Since(startTime),
		}
	default:
	}

	records, err := task.Fetch(ctx)

	outcome = Outcome{
		Namespace: task.Namespace,
		Records:   records,
		Err:       err,
		Duration:  time.Since(startTime),
	}
	if err != nil {
		outcome.Records = nil
	}

	if err != nil {
		p.logger.Warn("fetch failed",
			"namespace", task.Namespace,
			"error", err,
			"duration", outcome.Duration)
	} else {
		p.logger.Debug("fetch succeeded",
			"namespace", task.Namespace,
			"routes", len(records),
			"duration", outcome.Duration)
	}

	return outcome
}

// IsRunning returns true if the pool is currently executing tasks
func (p *Pool) IsRunning() bool {
	return p.running.Load()
}

// TaskCount returns the number of tasks currently queued
func (p *Pool) TaskCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.tasks)
}

// WorkerCount returns the number of fetch slots in the pool
func (p *Pool) WorkerCount() int {
	return p.workers
}

// taskWithIndex pairs a task with its submission index for outcome ordering
type taskWithIndex struct {
	task  Task
	index int
}

// outcomeWithIndex pairs an outcome with its original task index
type outcomeWithIndex struct {
	outcome Outcome
	index   int
}
