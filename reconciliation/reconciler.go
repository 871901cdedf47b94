// Package reconciliation restores message consistency after a shared content
// item has been deleted elsewhere.
package reconciliation

import (
	"chat-core/contract"
	"chat-core/domain/chat"
	"chat-core/errors"
	"chat-core/observability"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Report lists what happened to each message that referenced the item.
type Report struct {
	Deleted    []uuid.UUID
	Kept       []uuid.UUID
	Unaffected []uuid.UUID
}

type Reconciler struct {
	log      *slog.Logger
	messages contract.IMessageStore
	notifier contract.Notifier
}

// NewReconciler accepts a nil notifier, in which case clients are not told
// about the messages it changes.
func NewReconciler(log *slog.Logger, messages contract.IMessageStore, notifier contract.Notifier) *Reconciler {
	return &Reconciler{log: log, messages: messages, notifier: notifier}
}

// Reconcile drops contentItemID from every message referencing it. A message
// left with neither items nor text is deleted, any other is kept. Each
// decision reaches the store once. A failing message does not stop the
// others: their errors are joined in the result. Clients hear about a
// change only once it is committed.
func (r *Reconciler) Reconcile(ctx context.Context, contentItemID uuid.UUID, now time.Time) (Report, error) {
	var report Report
	affected, err := r.messages.FindMessagesReferencingContent(ctx, contentItemID)
	if err != nil {
		return report, fmt.Errorf("find messages referencing %s: %w", contentItemID, err)
	}

	var errs []error
	for _, m := range affected {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}
		outcome, err := r.reconcileOne(ctx, m, contentItemID, now)
		if err != nil {
			observability.ReconciledMessagesTotal.WithLabelValues(observability.OutcomeFailed).Inc()
			r.log.Error("Reconciliation failed", "message_id", m.ID(), "content_item_id", contentItemID, "error", err)
			errs = append(errs, err)
			continue
		}
		observability.ReconciledMessagesTotal.WithLabelValues(outcome.String()).Inc()
		switch outcome {
		case chat.RemovalDeleted:
			report.Deleted = append(report.Deleted, m.ID())
		case chat.RemovalKept:
			report.Kept = append(report.Kept, m.ID())
		default:
			report.Unaffected = append(report.Unaffected, m.ID())
		}
	}

	r.log.Info("Content item reconciled",
		"content_item_id", contentItemID,
		"deleted", len(report.Deleted),
		"kept", len(report.Kept),
		"unaffected", len(report.Unaffected))
	return report, stderrors.Join(errs...)
}

func (r *Reconciler) reconcileOne(ctx context.Context, m chat.Message, contentItemID uuid.UUID, now time.Time) (chat.RemovalOutcome, error) {
	switch msg := m.(type) {
	case *chat.ContentMessage:
		if !msg.References(contentItemID) {
			return chat.RemovalUnaffected, nil
		}
	case *chat.TextMessage, *chat.ImageMessage, *chat.RemovedContentMessage:
		// No item list to drop from
		return chat.RemovalUnaffected, nil
	default:
		return chat.RemovalUnaffected, fmt.Errorf("%w: %T", errors.ErrUnknownMessageKind, m)
	}

	// The lookup may be stale by now, the removal is decided on the stored message
	outcome := chat.RemovalUnaffected
	result, mutation, err := r.messages.MutateMessage(ctx, m.ID(), func(current chat.Message) (chat.Message, contract.Mutation, error) {
		outcome = chat.RemovalUnaffected
		msg, ok := current.(*chat.ContentMessage)
		if !ok {
			return current, contract.MutationNone, nil
		}
		removed, decision := chat.RemoveContentItem(msg, contentItemID, now)
		outcome = decision
		switch decision {
		case chat.RemovalDeleted:
			return removed, contract.MutationDelete, nil
		case chat.RemovalKept:
			return removed, contract.MutationUpdate, nil
		default:
			return current, contract.MutationNone, nil
		}
	})
	if stderrors.Is(err, errors.ErrNotFound) {
		// Deleted concurrently, nothing left to reconcile
		return chat.RemovalUnaffected, nil
	}
	if err != nil {
		return outcome, fmt.Errorf("reconcile message %s: %w", m.ID(), err)
	}

	switch mutation {
	case contract.MutationDelete:
		r.notify(ctx, m.ID(), func(ctx context.Context) error {
			return r.notifier.NotifyMessageDeleted(ctx, m.ID())
		})
	case contract.MutationUpdate:
		r.notify(ctx, m.ID(), func(ctx context.Context) error {
			return r.notifier.NotifyMessageUpdated(ctx, result)
		})
	}
	return outcome, nil
}

func (r *Reconciler) notify(ctx context.Context, messageID uuid.UUID, fn func(ctx context.Context) error) {
	if r.notifier == nil {
		return
	}
	if err := fn(ctx); err != nil {
		r.log.Warn("Reconciled message not notified", "message_id", messageID, "error", err)
	}
}
