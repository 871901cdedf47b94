package redis

import (
	"chat-core/domain/event"
	"chat-core/errors"
	"chat-core/observability"
	"chat-core/projection"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

const (
	directionOut = "out"
	directionIn  = "in"
)

// Publisher is the part of *redis.Client the relay writes with.
type Publisher interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
}

// frame tags an envelope with the instance that produced it, so an instance
// ignores its own traffic when it reads the channel back.
type frame struct {
	Origin   string              `json:"origin"`
	Envelope projection.Envelope `json:"envelope"`
}

func NewClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}

// Relay is a Broadcaster publishing every event for the other instances.
type Relay struct {
	log        *slog.Logger
	client     Publisher
	channel    string
	instanceID string
}

func NewRelay(log *slog.Logger, client Publisher, channel, instanceID string) *Relay {
	return &Relay{log: log, client: client, channel: channel, instanceID: instanceID}
}

func (r *Relay) BroadcastMessageSent(ctx context.Context, e event.MessageSent) error {
	return r.publish(ctx, e)
}

func (r *Relay) BroadcastMessageUpdated(ctx context.Context, e event.MessageUpdated) error {
	return r.publish(ctx, e)
}

func (r *Relay) BroadcastMessageDeleted(ctx context.Context, e event.MessageDeleted) error {
	return r.publish(ctx, e)
}

func (r *Relay) BroadcastMessageMarkedAsRead(ctx context.Context, e event.MessageMarkedAsRead) error {
	return r.publish(ctx, e)
}

func (r *Relay) publish(ctx context.Context, e event.DomainEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	env, err := projection.ToEnvelope(e)
	if err != nil {
		return err
	}
	payload, err := encodeFrame(r.instanceID, env)
	if err != nil {
		return err
	}
	if err := r.client.Publish(ctx, r.channel, payload).Err(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("redis publish on %s: %w", r.channel, err)
	}
	observability.RelayedEnvelopesTotal.WithLabelValues(directionOut).Inc()
	r.log.Debug("Envelope relayed", "type", env.Type, "channel", r.channel)
	return nil
}

func encodeFrame(origin string, env projection.Envelope) ([]byte, error) {
	return json.Marshal(frame{Origin: origin, Envelope: env})
}

func decodeFrame(data []byte) (frame, error) {
	var f frame
	if err := json.Unmarshal(data, &f); err != nil {
		return frame{}, fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
	}
	if f.Origin == "" || f.Envelope.Type == "" {
		return frame{}, fmt.Errorf("%w: incomplete relay frame", errors.ErrInvalidPayload)
	}
	return f, nil
}
