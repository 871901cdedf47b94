package redis

import (
	"chat-core/domain/chat"
	"chat-core/domain/event"
	"chat-core/errors"
	"chat-core/projection"
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type published struct {
	channel string
	payload []byte
}

type fakePublisher struct {
	sent []published
	err  error
}

func (f *fakePublisher) Publish(_ context.Context, channel string, message any) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	f.sent = append(f.sent, published{channel: channel, payload: message.([]byte)})
	return redis.NewIntResult(1, nil)
}

type fakeDeliverer struct {
	envelopes []projection.Envelope
}

func (f *fakeDeliverer) Deliver(_ context.Context, env projection.Envelope) error {
	f.envelopes = append(f.envelopes, env)
	return nil
}

func TestRelay_PublishesTaggedEnvelope(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	client := &fakePublisher{}
	now := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	conversationID := uuid.New()
	m, err := chat.NewMessage(chat.MessageParams{SenderID: uuid.New(), Text: "hello"}, now)
	req.NoError(err)

	// When a message is broadcast through the relay
	err = NewRelay(log, client, "chat-events", "instance-a").
		BroadcastMessageSent(context.Background(), event.MessageSent{ConversationID: conversationID, Message: m, At: now})
	req.NoError(err)

	// Then one frame carrying the origin is published
	req.Len(client.sent, 1)
	req.Equal("chat-events", client.sent[0].channel)
	f, err := decodeFrame(client.sent[0].payload)
	req.NoError(err)
	req.Equal("instance-a", f.Origin)
	req.Equal(event.MessageSentType, f.Envelope.Type)
	req.Equal(conversationID, *f.Envelope.ConversationID)
	req.Equal(m.ID(), f.Envelope.Message.ID)
}

func TestRelay_Errors(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	e := event.MessageDeleted{MessageID: uuid.New(), At: time.Now()}

	// A transport failure is returned
	err := NewRelay(log, &fakePublisher{err: fmt.Errorf("connection refused")}, "c", "a").
		BroadcastMessageDeleted(context.Background(), e)
	req.ErrorContains(err, "connection refused")

	// A cancelled caller gets its own error back and nothing is published
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	client := &fakePublisher{}
	err = NewRelay(log, client, "c", "a").BroadcastMessageDeleted(ctx, e)
	req.ErrorIs(err, context.Canceled)
	req.Empty(client.sent)
}

func TestSubscriber_ForwardsOnlyRemoteFrames(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	local := &fakeDeliverer{}
	s := NewSubscriber(log, nil, "chat-events", "instance-a", local)
	messageID := uuid.New()
	env := projection.Envelope{Type: event.MessageDeletedType, OccurredAt: time.Now().UTC(), MessageID: &messageID}

	own, err := encodeFrame("instance-a", env)
	req.NoError(err)
	remote, err := encodeFrame("instance-b", env)
	req.NoError(err)

	// When the subscriber reads its own frame, a remote one and garbage
	s.handle(context.Background(), own)
	s.handle(context.Background(), remote)
	s.handle(context.Background(), []byte("{"))

	// Then only the remote envelope reaches the local clients
	req.Len(local.envelopes, 1)
	req.Equal(messageID, *local.envelopes[0].MessageID)
}

func TestDecodeFrame_RejectsIncompleteFrames(t *testing.T) {
	req := require.New(t)

	_, err := decodeFrame([]byte(`{"origin":"a"}`))
	req.ErrorIs(err, errors.ErrInvalidPayload)

	_, err = decodeFrame([]byte(`{"envelope":{"type":"MESSAGE_DELETED"}}`))
	req.ErrorIs(err, errors.ErrInvalidPayload)
}
