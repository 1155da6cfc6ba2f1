package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MoodyMakai/WebDevForum/internal/config"
	"github.com/MoodyMakai/WebDevForum/internal/logger"
	"github.com/MoodyMakai/WebDevForum/models"
)

// countingAttemptRepo counts prune calls and records the last cutoff.
type countingAttemptRepo struct {
	mu         sync.Mutex
	pruneCalls int
	lastCutoff time.Time
	pruneErr   error
}

func (c *countingAttemptRepo) AppendLoginAttempt(_ context.Context, _ models.LoginAttempt) error {
	return nil
}

func (c *countingAttemptRepo) PruneAttemptsBefore(_ context.Context, cutoff time.Time) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pruneCalls++
	c.lastCutoff = cutoff
	if c.pruneErr != nil {
		return 0, c.pruneErr
	}
	return 3, nil
}

func (c *countingAttemptRepo) calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pruneCalls
}

func TestRetentionWorker_PrunesImmediatelyAndPeriodically(t *testing.T) {
	repo := &countingAttemptRepo{}
	worker := newRetentionWorker(repo, config.Workers{
		PruneInterval:    10 * time.Millisecond,
		AttemptRetention: 30 * 24 * time.Hour,
	}, logger.Nop())

	worker.Run()
	defer worker.Stop()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if repo.calls() >= 3 {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	// One immediate prune plus at least two ticks.
	assert.GreaterOrEqual(t, repo.calls(), 3)

	repo.mu.Lock()
	cutoff := repo.lastCutoff
	repo.mu.Unlock()
	assert.WithinDuration(t, time.Now().Add(-30*24*time.Hour), cutoff, time.Minute)
}

func TestRetentionWorker_StopTerminates(t *testing.T) {
	repo := &countingAttemptRepo{}
	worker := newRetentionWorker(repo, config.Workers{
		PruneInterval:    time.Hour,
		AttemptRetention: time.Hour,
	}, logger.Nop())

	worker.Run()

	done := make(chan struct{})
	go func() {
		worker.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}
}

func TestRetentionWorker_SurvivesPruneErrors(t *testing.T) {
	repo := &countingAttemptRepo{pruneErr: errors.New("connection reset")}
	worker := newRetentionWorker(repo, config.Workers{
		PruneInterval:    10 * time.Millisecond,
		AttemptRetention: time.Hour,
	}, logger.Nop())

	worker.Run()
	defer worker.Stop()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if repo.calls() >= 2 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("worker stopped pruning after an error")
}

// mockWorker tracks lifecycle calls for the aggregate.
type mockWorker struct {
	runCount  int
	stopCount int
}

func (m *mockWorker) Run()  { m.runCount++ }
func (m *mockWorker) Stop() { m.stopCount++ }

func TestWorkers_RunAndStopAll(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}

	ws := &Workers{workers: []Worker{w1, w2}}
	ws.Run()
	ws.Stop()

	for i, w := range []*mockWorker{w1, w2} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
		if w.stopCount != 1 {
			t.Errorf("worker[%d]: expected stopCount=1, got %d", i, w.stopCount)
		}
	}
}

func TestWorkers_Empty(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil.
	ws.Run()
	ws.Stop()
}
