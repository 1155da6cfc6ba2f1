package workers

import (
	"github.com/MoodyMakai/WebDevForum/internal/config"
	"github.com/MoodyMakai/WebDevForum/internal/logger"
	"github.com/MoodyMakai/WebDevForum/internal/store"
)

// Workers aggregates the application's background workers.
type Workers struct {
	workers []Worker
}

// NewWorkers builds the background workers from configuration.
func NewWorkers(storages store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			newRetentionWorker(storages.Attempt, cfg, logger),
		},
	}
}

// Run starts every worker.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop terminates every worker in reverse start order and waits for each.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
