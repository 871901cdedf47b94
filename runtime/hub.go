package runtime

import (
	"chat-core/contract"
	"chat-core/domain/event"
	"chat-core/observability"
	"chat-core/projection"
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// Hub is the in-process Broadcaster: every event reaches every sink in the
// registry. Each sink gets its own timeout, so a slow client only loses its
// own copy of the event.
type Hub struct {
	log         *slog.Logger
	registry    contract.IRegistry
	sinkTimeout time.Duration
	maxFanout   int
}

// NewHub bounds concurrent deliveries to maxFanout; zero or less means
// one goroutine per sink.
func NewHub(log *slog.Logger, registry contract.IRegistry, sinkTimeout time.Duration, maxFanout int) *Hub {
	return &Hub{log: log, registry: registry, sinkTimeout: sinkTimeout, maxFanout: maxFanout}
}

func (h *Hub) BroadcastMessageSent(ctx context.Context, e event.MessageSent) error {
	return h.broadcast(ctx, e)
}

func (h *Hub) BroadcastMessageUpdated(ctx context.Context, e event.MessageUpdated) error {
	return h.broadcast(ctx, e)
}

func (h *Hub) BroadcastMessageDeleted(ctx context.Context, e event.MessageDeleted) error {
	return h.broadcast(ctx, e)
}

func (h *Hub) BroadcastMessageMarkedAsRead(ctx context.Context, e event.MessageMarkedAsRead) error {
	return h.broadcast(ctx, e)
}

func (h *Hub) broadcast(ctx context.Context, e event.DomainEvent) error {
	env, err := projection.ToEnvelope(e)
	if err != nil {
		return err
	}
	return h.Deliver(ctx, env)
}

// Deliver hands env to every registered sink and waits for all of them.
// Failing sinks are logged and skipped. The only error returned is the
// caller's context error, when it was cancelled before or during delivery.
func (h *Hub) Deliver(ctx context.Context, env projection.Envelope) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var g errgroup.Group
	// g.Go blocks once maxFanout deliveries are in flight
	if h.maxFanout > 0 {
		g.SetLimit(h.maxFanout)
	}
	for _, sink := range h.registry.Sinks() {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			// Own deadline per sink
			sinkCtx, cancel := context.WithTimeout(ctx, h.sinkTimeout)
			defer cancel()
			if err := sink.Consume(sinkCtx, env); err != nil && ctx.Err() == nil {
				observability.SinkFailuresTotal.Inc()
				h.log.Warn("Client sink failed", "type", env.Type, "error", err)
			}
			// Never fail the group, the other sinks must still get env
			return nil
		})
	}
	_ = g.Wait()
	return ctx.Err()
}
