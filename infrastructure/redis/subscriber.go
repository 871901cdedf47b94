package redis

import (
	"chat-core/observability"
	"chat-core/projection"
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// Deliverer hands a decoded envelope to the local clients.
type Deliverer interface {
	Deliver(ctx context.Context, env projection.Envelope) error
}

// Subscriber is the worker reading the relay channel and forwarding what
// other instances published to the local Hub.
type Subscriber struct {
	log        *slog.Logger
	client     *redis.Client
	channel    string
	instanceID string
	local      Deliverer
}

func NewSubscriber(log *slog.Logger, client *redis.Client, channel, instanceID string, local Deliverer) *Subscriber {
	return &Subscriber{log: log, client: client, channel: channel, instanceID: instanceID, local: local}
}

func (s *Subscriber) Run(ctx context.Context) error {
	pubsub := s.client.Subscribe(ctx, s.channel)
	defer func() { _ = pubsub.Close() }()

	// Wait for the confirmation so a dead server restarts the worker.
	if _, err := pubsub.Receive(ctx); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("redis subscribe %s: %w", s.channel, err)
	}
	s.log.Info("Subscribed to relay channel", "channel", s.channel)

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			s.log.Debug("Context done, stopping relay subscriber")
			return nil
		case msg, ok := <-ch:
			if !ok {
				return fmt.Errorf("redis channel %s closed", s.channel)
			}
			s.handle(ctx, []byte(msg.Payload))
		}
	}
}

func (s *Subscriber) handle(ctx context.Context, payload []byte) {
	f, err := decodeFrame(payload)
	if err != nil {
		s.log.Warn("Dropping relay frame", "error", err)
		return
	}
	if f.Origin == s.instanceID {
		return
	}
	observability.RelayedEnvelopesTotal.WithLabelValues(directionIn).Inc()
	if err := s.local.Deliver(ctx, f.Envelope); err != nil {
		s.log.Debug("Relayed envelope not delivered", "type", f.Envelope.Type, "error", err)
	}
}
