package workers

import (
	"context"
	"sync"
	"testing"
	"time"
)

type mockColorService struct {
	mu    sync.Mutex
	calls []string
}

func (m *mockColorService) ExtractColor(ctx context.Context, imageURL string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, imageURL)
	return "#4a6fa5", nil
}

func (m *mockColorService) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func TestNewColorWorker_AppliesDefaultsForInvalidConfig(t *testing.T) {
	worker := NewColorWorker(&mockColorService{}, WorkerConfig{MaxWorkers: 0, QueueSize: -1})

	if worker.maxWorkers != DefaultWorkerConfig().MaxWorkers {
		t.Errorf("maxWorkers = %d, want default %d", worker.maxWorkers, DefaultWorkerConfig().MaxWorkers)
	}
	if cap(worker.jobQueue) != DefaultWorkerConfig().QueueSize {
		t.Errorf("queue capacity = %d, want default %d", cap(worker.jobQueue), DefaultWorkerConfig().QueueSize)
	}
}

func TestSubmitJob_FailsWhenNotRunning(t *testing.T) {
	worker := NewColorWorker(&mockColorService{}, DefaultWorkerConfig())

	err := worker.SubmitJob(&ColorJob{URLs: []string{"https://example.com/cat.jpg"}})
	if err != ErrWorkerNotRunning {
		t.Errorf("SubmitJob error = %v, want ErrWorkerNotRunning", err)
	}
}

func TestWarmColors_ProcessesEachURL(t *testing.T) {
	colors := &mockColorService{}
	worker := NewColorWorker(colors, WorkerConfig{MaxWorkers: 2, QueueSize: 10})
	if err := worker.Start(); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}

	worker.WarmColors([]string{
		"https://example.com/cat.jpg",
		"https://example.com/whiskers.png",
		"https://example.com/paws.gif",
	})

	deadline := time.Now().Add(2 * time.Second)
	for colors.callCount() < 3 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	if err := worker.Stop(); err != nil {
		t.Fatalf("Stop returned error: %v", err)
	}
	if got := colors.callCount(); got != 3 {
		t.Errorf("ExtractColor called %d times, want 3", got)
	}
}

func TestWarmColors_EmptyBatchIsNoOp(t *testing.T) {
	colors := &mockColorService{}
	worker := NewColorWorker(colors, DefaultWorkerConfig())
	if err := worker.Start(); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	defer worker.Stop()

	worker.WarmColors(nil)

	time.Sleep(20 * time.Millisecond)
	if got := colors.callCount(); got != 0 {
		t.Errorf("ExtractColor called %d times, want 0", got)
	}
}

func TestStartAndStop_AreIdempotent(t *testing.T) {
	worker := NewColorWorker(&mockColorService{}, WorkerConfig{MaxWorkers: 1, QueueSize: 1})

	if err := worker.Start(); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	if err := worker.Start(); err != nil {
		t.Fatalf("second Start returned error: %v", err)
	}
	if err := worker.Stop(); err != nil {
		t.Fatalf("Stop returned error: %v", err)
	}
	if err := worker.Stop(); err != nil {
		t.Fatalf("second Stop returned error: %v", err)
	}
}
