package workers

import (
	"context"
	"time"

	"github.com/tejaIG/sevak-ai-poc/internal/logger"
	"github.com/tejaIG/sevak-ai-poc/internal/models"
	"github.com/tejaIG/sevak-ai-poc/internal/storage"
)

// MatchingWorker periodically picks up submitted requirements and moves them
// into the matching stage for the operations pipeline.
type MatchingWorker struct {
	store    storage.Store
	interval time.Duration
}

func NewMatchingWorker(store storage.Store, interval time.Duration) *MatchingWorker {
	return &MatchingWorker{
		store:    store,
		interval: interval,
	}
}

// Start launches the background sweep.
func (w *MatchingWorker) Start(ctx context.Context) {
	go w.sweepLoop(ctx)
}

func (w *MatchingWorker) sweepLoop(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("matching worker stopped")
			return
		case <-ticker.C:
			if n, err := w.Sweep(ctx); err != nil {
				logger.WorkerLog("matching", "sweep", err)
			} else if n > 0 {
				logger.Info("matching sweep advanced submissions", "count", n)
			}
		}
	}
}

// Sweep advances every submitted record to matching. Returns how many records
// moved.
func (w *MatchingWorker) Sweep(ctx context.Context) (int, error) {
	submitted, err := w.store.ListRequirementsByStatus(ctx, models.RequirementsStatusSubmitted)
	if err != nil {
		return 0, err
	}

	moved := 0
	for i := range submitted {
		reqs := submitted[i]
		reqs.Status = models.RequirementsStatusMatching
		if err := w.store.UpdateRequirements(ctx, &reqs); err != nil {
			logger.Error("failed to advance requirements", "user_id", reqs.UserID, "error", err)
			continue
		}
		moved++
	}
	return moved, nil
}
