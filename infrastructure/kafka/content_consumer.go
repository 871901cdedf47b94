package kafka

import (
	"bytes"
	"chat-core/domain/event"
	"chat-core/errors"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// MessageReader is the part of *kafka.Reader the consumer needs.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

func NewReader(brokers []string, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		Topic:   topic,
		GroupID: groupID,
	})
}

// ContentConsumer turns "content item deleted" records into ContentDeleted
// signals. Record values carry the item id as UUID text.
type ContentConsumer struct {
	log     *slog.Logger
	reader  MessageReader
	signals chan<- event.ContentDeleted
	clock   func() time.Time
}

func NewContentConsumer(log *slog.Logger, reader MessageReader, signals chan<- event.ContentDeleted) *ContentConsumer {
	return &ContentConsumer{log: log, reader: reader, signals: signals, clock: time.Now}
}

// Run reads until ctx is done. A broken reader is returned so the supervisor
// restarts the worker; malformed records are skipped.
func (c *ContentConsumer) Run(ctx context.Context) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.log.Debug("Context done, stopping content consumer")
				return nil
			}
			return fmt.Errorf("kafka read: %w", err)
		}

		signal, err := ParseContentDeleted(msg, c.clock())
		if err != nil {
			c.log.Warn("Skipping content record", "offset", msg.Offset, "error", err)
			continue
		}

		select {
		case c.signals <- signal:
		case <-ctx.Done():
			return nil
		}
	}
}

func (c *ContentConsumer) Close() error {
	return c.reader.Close()
}

// ParseContentDeleted reads the item id from the record value. The record
// timestamp is used as the deletion time when the broker set one.
func ParseContentDeleted(msg kafka.Message, now time.Time) (event.ContentDeleted, error) {
	id, err := uuid.ParseBytes(bytes.TrimSpace(msg.Value))
	if err != nil {
		return event.ContentDeleted{}, stderrors.Join(errors.ErrInvalidPayload, err)
	}
	at := now
	if !msg.Time.IsZero() {
		at = msg.Time
	}
	return event.ContentDeleted{ContentItemID: id, At: at.UTC()}, nil
}
