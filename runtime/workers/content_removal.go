package workers

import (
	"chat-core/domain/event"
	"chat-core/reconciliation"
	"context"
	"log/slog"
)

// ContentRemovalWorker runs the reconciler for every ContentDeleted signal,
// whether it came from the broker or from the HTTP endpoint. A failed
// reconciliation is logged and the worker moves on to the next signal.
type ContentRemovalWorker struct {
	log        *slog.Logger
	reconciler *reconciliation.Reconciler
	signals    <-chan event.ContentDeleted
}

func NewContentRemovalWorker(log *slog.Logger, reconciler *reconciliation.Reconciler, signals <-chan event.ContentDeleted) *ContentRemovalWorker {
	return &ContentRemovalWorker{log: log, reconciler: reconciler, signals: signals}
}

func (w *ContentRemovalWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping content removal")
			return nil
		case signal, ok := <-w.signals:
			if !ok {
				return nil
			}
			if _, err := w.reconciler.Reconcile(ctx, signal.ContentItemID, signal.At); err != nil {
				w.log.Error("Content removal incomplete", "content_item_id", signal.ContentItemID, "error", err)
			}
		}
	}
}
