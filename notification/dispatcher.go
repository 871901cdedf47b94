// Package notification pushes message lifecycle events to every connected
// client. Delivery is best effort: a cancelled broadcast is dropped with a
// warning and never reaches the command that triggered it.
package notification

import (
	"chat-core/contract"
	"chat-core/domain/chat"
	"chat-core/domain/event"
	"chat-core/observability"
	"context"
	stderrors "errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Dispatcher holds no state besides its collaborators. Independent Notify*
// calls may run concurrently and are not ordered.
type Dispatcher struct {
	log         *slog.Logger
	broadcaster contract.Broadcaster
	clock       func() time.Time
}

func NewDispatcher(log *slog.Logger, broadcaster contract.Broadcaster) *Dispatcher {
	return &Dispatcher{log: log, broadcaster: broadcaster, clock: time.Now}
}

// WithClock replaces the source of OccurredAt on emitted events.
func (d *Dispatcher) WithClock(clock func() time.Time) *Dispatcher {
	d.clock = clock
	return d
}

func (d *Dispatcher) NotifyMessageSent(ctx context.Context, message chat.Message, conversationID uuid.UUID) error {
	evt := event.MessageSent{ConversationID: conversationID, Message: message, At: d.clock()}
	return d.deliver(evt, d.broadcaster.BroadcastMessageSent(ctx, evt), "message_id", message.ID())
}

func (d *Dispatcher) NotifyMessageUpdated(ctx context.Context, message chat.Message) error {
	evt := event.MessageUpdated{Message: message, At: d.clock()}
	return d.deliver(evt, d.broadcaster.BroadcastMessageUpdated(ctx, evt), "message_id", message.ID())
}

func (d *Dispatcher) NotifyMessageDeleted(ctx context.Context, messageID uuid.UUID) error {
	evt := event.MessageDeleted{MessageID: messageID, At: d.clock()}
	return d.deliver(evt, d.broadcaster.BroadcastMessageDeleted(ctx, evt), "message_id", messageID)
}

func (d *Dispatcher) NotifyMessageMarkedAsRead(ctx context.Context, userID, messageID uuid.UUID) error {
	evt := event.MessageMarkedAsRead{UserID: userID, MessageID: messageID, At: d.clock()}
	return d.deliver(evt, d.broadcaster.BroadcastMessageMarkedAsRead(ctx, evt), "message_id", messageID, "user_id", userID)
}

// deliver swallows context.Canceled and nothing else. A deadline or a
// transport failure goes back to the caller untouched.
func (d *Dispatcher) deliver(evt event.DomainEvent, err error, attrs ...any) error {
	kind := string(evt.Type())
	switch {
	case err == nil:
		observability.NotificationsTotal.WithLabelValues(kind, observability.OutcomeDelivered).Inc()
		return nil
	case stderrors.Is(err, context.Canceled):
		observability.NotificationsTotal.WithLabelValues(kind, observability.OutcomeCancelled).Inc()
		d.log.Warn("Notification dropped, broadcast cancelled", append([]any{"type", kind, "error", err}, attrs...)...)
		return nil
	default:
		observability.NotificationsTotal.WithLabelValues(kind, observability.OutcomeFailed).Inc()
		return err
	}
}
