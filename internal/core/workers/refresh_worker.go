package workers

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// SummaryRefresher recomputes the stats snapshot and re-caches it.
type SummaryRefresher interface {
	Refresh(ctx context.Context) error
}

// RefreshWorker re-warms the stats snapshot in the background after habit,
// completion, or shop mutations. Jobs carry no payload: the snapshot is
// global, so coalescing redundant signals is harmless.
type RefreshWorker struct {
	refresher SummaryRefresher
	jobs      chan struct{}
}

func NewRefreshWorker(refresher SummaryRefresher) *RefreshWorker {
	return &RefreshWorker{
		refresher: refresher,
		jobs:      make(chan struct{}, 16),
	}
}

func (w *RefreshWorker) Start(ctx context.Context) {
	go func() {
		log.Info("stats refresh worker started")
		for {
			select {
			case <-w.jobs:
				if err := w.refresher.Refresh(ctx); err != nil {
					log.WithError(err).Error("stats refresh failed")
				}
			case <-ctx.Done():
				log.Info("stats refresh worker shutting down")
				return
			}
		}
	}()
}

// Enqueue never blocks; a full queue already guarantees a pending refresh.
func (w *RefreshWorker) Enqueue() {
	select {
	case w.jobs <- struct{}{}:
	default:
	}
}
