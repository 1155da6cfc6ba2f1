package workers

import (
	"context"
	"time"

	"github.com/MoodyMakai/WebDevForum/internal/config"
	"github.com/MoodyMakai/WebDevForum/internal/logger"
	"github.com/MoodyMakai/WebDevForum/internal/store"
)

// retentionWorker periodically deletes login-attempt records older than the
// configured retention window. The attempt log is append-only from the
// application's point of view; this worker is the only thing that removes
// rows from it.
type retentionWorker struct {
	attemptRepository store.AttemptRepository

	pruneInterval    time.Duration
	attemptRetention time.Duration

	stop chan struct{}
	done chan struct{}

	logger *logger.Logger
}

func newRetentionWorker(attemptRepository store.AttemptRepository, cfg config.Workers, logger *logger.Logger) *retentionWorker {
	return &retentionWorker{
		attemptRepository: attemptRepository,
		pruneInterval:     cfg.PruneInterval,
		attemptRetention:  cfg.AttemptRetention,
		stop:              make(chan struct{}),
		done:              make(chan struct{}),
		logger:            logger,
	}
}

// Run starts the pruning loop in its own goroutine. One prune runs
// immediately so a long-stopped server catches up without waiting a full
// interval.
func (w *retentionWorker) Run() {
	w.logger.Info().
		Dur("prune_interval", w.pruneInterval).
		Dur("attempt_retention", w.attemptRetention).
		Msg("starting login-attempt retention worker")

	go func() {
		defer close(w.done)

		ticker := time.NewTicker(w.pruneInterval)
		defer ticker.Stop()

		w.prune()

		for {
			select {
			case <-ticker.C:
				w.prune()
			case <-w.stop:
				return
			}
		}
	}()
}

// Stop terminates the pruning loop and waits for it to finish.
func (w *retentionWorker) Stop() {
	close(w.stop)
	<-w.done
	w.logger.Info().Msg("login-attempt retention worker stopped")
}

func (w *retentionWorker) prune() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cutoff := time.Now().Add(-w.attemptRetention)

	pruned, err := w.attemptRepository.PruneAttemptsBefore(ctx, cutoff)
	if err != nil {
		w.logger.Err(err).Msg("pruning old login attempts failed")
		return
	}

	if pruned > 0 {
		w.logger.Info().Int64("pruned", pruned).Time("cutoff", cutoff).Msg("old login attempts pruned")
	}
}
