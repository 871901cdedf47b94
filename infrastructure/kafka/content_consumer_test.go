package kafka

import (
	"chat-core/domain/event"
	"chat-core/errors"
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	records []kafka.Message
	err     error
}

func (f *fakeReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	if len(f.records) > 0 {
		msg := f.records[0]
		f.records = f.records[1:]
		return msg, nil
	}
	if f.err != nil {
		return kafka.Message{}, f.err
	}
	<-ctx.Done()
	return kafka.Message{}, ctx.Err()
}

func (f *fakeReader) Close() error { return nil }

func TestParseContentDeleted(t *testing.T) {
	req := require.New(t)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	id := uuid.New()

	// Without broker timestamp the local clock is used
	signal, err := ParseContentDeleted(kafka.Message{Value: []byte(id.String() + "\n")}, now)
	req.NoError(err)
	req.Equal(id, signal.ContentItemID)
	req.Equal(now, signal.At)

	// With one, the record time wins
	recorded := now.Add(-time.Minute)
	signal, err = ParseContentDeleted(kafka.Message{Value: []byte(id.String()), Time: recorded}, now)
	req.NoError(err)
	req.Equal(recorded, signal.At)

	_, err = ParseContentDeleted(kafka.Message{Value: []byte("not-a-uuid")}, now)
	req.ErrorIs(err, errors.ErrInvalidPayload)
}

func TestContentConsumer_SkipsMalformedRecords(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	id := uuid.New()
	reader := &fakeReader{records: []kafka.Message{
		{Value: []byte("garbage")},
		{Value: []byte(id.String())},
	}}
	signals := make(chan event.ContentDeleted, 2)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stopped := make(chan error)
	go func() { stopped <- NewContentConsumer(log, reader, signals).Run(ctx) }()

	// Then only the valid record becomes a signal
	select {
	case signal := <-signals:
		req.Equal(id, signal.ContentItemID)
	case <-time.After(time.Second):
		req.Fail("no signal received")
	}

	cancel()
	req.NoError(<-stopped)
	req.Empty(signals)
}

func TestContentConsumer_ReturnsReaderFailure(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	reader := &fakeReader{err: fmt.Errorf("broker unreachable")}

	err := NewContentConsumer(log, reader, make(chan event.ContentDeleted)).Run(context.Background())

	req.ErrorContains(err, "broker unreachable")
}
