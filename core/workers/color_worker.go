// ABOUTME: Color worker handles background accent color extraction for download thumbnails
// ABOUTME: Provides a managed worker pool that warms the color cache after imports

package workers

import (
	"context"
	"sync"
	"time"

	"marginalia-api/core/interfaces"
)

// ColorJob represents a batch of image URLs to extract accent colors for
type ColorJob struct {
	URLs    []string
	Context context.Context
}

// ColorWorker manages background accent color extraction
type ColorWorker struct {
	colors     interfaces.AccentColorService
	jobQueue   chan *ColorJob
	maxWorkers int
	workers    []*worker
	wg         sync.WaitGroup
	ctx        context.Context
	cancel     context.CancelFunc
	mu         sync.Mutex
	running    bool
}

// worker represents an individual worker goroutine
type worker struct {
	id       int
	jobQueue <-chan *ColorJob
	colors   interfaces.AccentColorService
	ctx      context.Context
	wg       *sync.WaitGroup
}

// WorkerConfig holds configuration for the color worker pool
type WorkerConfig struct {
	MaxWorkers int
	QueueSize  int
}

// DefaultWorkerConfig returns the default worker configuration
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		MaxWorkers: 4,
		QueueSize:  100,
	}
}

// NewColorWorker creates a new color worker pool
func NewColorWorker(colors interfaces.AccentColorService, config WorkerConfig) *ColorWorker {
	ctx, cancel := context.WithCancel(context.Background())

	if config.MaxWorkers <= 0 {
		config.MaxWorkers = DefaultWorkerConfig().MaxWorkers
	}
	if config.QueueSize <= 0 {
		config.QueueSize = DefaultWorkerConfig().QueueSize
	}

	return &ColorWorker{
		colors:     colors,
		jobQueue:   make(chan *ColorJob, config.QueueSize),
		maxWorkers: config.MaxWorkers,
		workers:    make([]*worker, 0, config.MaxWorkers),
		ctx:        ctx,
		cancel:     cancel,
		running:    false,
	}
}

// Start starts the worker pool
func (cw *ColorWorker) Start() error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	if cw.running {
		return nil
	}

	for i := 0; i < cw.maxWorkers; i++ {
		w := &worker{
			id:       i,
			jobQueue: cw.jobQueue,
			colors:   cw.colors,
			ctx:      cw.ctx,
			wg:       &cw.wg,
		}
		cw.workers = append(cw.workers, w)
		cw.wg.Add(1)
		go w.run()
	}

	cw.running = true
	return nil
}

// Stop stops the worker pool gracefully
func (cw *ColorWorker) Stop() error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	if !cw.running {
		return nil
	}

	cw.cancel()
	close(cw.jobQueue)
	cw.wg.Wait()

	cw.running = false
	return nil
}

// SubmitJob submits a job to the worker pool
func (cw *ColorWorker) SubmitJob(job *ColorJob) error {
	cw.mu.Lock()
	if !cw.running {
		cw.mu.Unlock()
		return ErrWorkerNotRunning
	}
	cw.mu.Unlock()

	select {
	case cw.jobQueue <- job:
		return nil
	case <-time.After(5 * time.Second):
		return ErrQueueFull
	}
}

// WarmColors queues accent color extraction for a batch of image URLs.
// Submission errors are ignored; a cold cache only delays placeholder colors.
func (cw *ColorWorker) WarmColors(imageURLs []string) {
	if len(imageURLs) == 0 {
		return
	}

	job := &ColorJob{
		URLs:    imageURLs,
		Context: cw.ctx,
	}

	_ = cw.SubmitJob(job)
}

// run is the main loop for each worker
func (w *worker) run() {
	defer w.wg.Done()

	for {
		select {
		case job, ok := <-w.jobQueue:
			if !ok {
				return
			}
			w.processJob(job)
		case <-w.ctx.Done():
			return
		}
	}
}

// processJob extracts colors for each URL in the job, populating the
// accent color service's cache as a side effect
func (w *worker) processJob(job *ColorJob) {
	for _, url := range job.URLs {
		select {
		case <-job.Context.Done():
			return
		default:
		}
		_, _ = w.colors.ExtractColor(job.Context, url)
	}
}

// Error definitions
var (
	ErrWorkerNotRunning = &WorkerError{Message: "worker pool is not running"}
	ErrQueueFull        = &WorkerError{Message: "job queue is full"}
)

// WorkerError represents a worker-specific error
type WorkerError struct {
	Message string
}

func (e *WorkerError) Error() string {
	return e.Message
}
