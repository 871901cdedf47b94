package chat

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newContent(t *testing.T, text string, items ...uuid.UUID) *ContentMessage {
	t.Helper()
	m, err := NewMessage(MessageParams{SenderID: uuid.New(), ContentItems: items, Text: text}, t0)
	require.NoError(t, err)
	return m.(*ContentMessage)
}

func TestRemoveContentItem(t *testing.T) {
	deleted, other := uuid.New(), uuid.New()
	now := t0.Add(24 * time.Hour)

	t.Run("sole item without text deletes the message", func(t *testing.T) {
		req := require.New(t)
		msg := newContent(t, "", deleted)

		result, outcome := RemoveContentItem(msg, deleted, now)

		req.Equal(RemovalDeleted, outcome)
		req.Same(msg, result)
	})

	t.Run("other items keep a content message", func(t *testing.T) {
		req := require.New(t)
		msg := newContent(t, "", deleted, other)

		result, outcome := RemoveContentItem(msg, deleted, now)

		req.Equal(RemovalKept, outcome)
		content, ok := result.(*ContentMessage)
		req.True(ok)
		req.Equal([]uuid.UUID{other}, content.ContentItems())
		req.Equal(now, *content.UpdatedAt())
	})

	t.Run("sole item with text becomes removed content", func(t *testing.T) {
		req := require.New(t)
		msg := newContent(t, "caption", deleted)
		reader := uuid.New()
		msg.MarkSeenBy(reader)

		result, outcome := RemoveContentItem(msg, deleted, now)

		req.Equal(RemovalKept, outcome)
		removed, ok := result.(*RemovedContentMessage)
		req.True(ok)
		req.Equal("caption", removed.Text())
		req.Equal(msg.ID(), removed.ID())
		req.Equal(msg.SenderID(), removed.SenderID())
		req.Equal(msg.SentAt(), removed.SentAt())
		req.True(removed.HasBeenSeenBy(reader))
	})

	t.Run("unrelated item leaves the message alone", func(t *testing.T) {
		req := require.New(t)
		msg := newContent(t, "", other)

		result, outcome := RemoveContentItem(msg, deleted, now)

		req.Equal(RemovalUnaffected, outcome)
		req.Same(msg, result)
		req.Nil(msg.UpdatedAt())
	})

	t.Run("duplicated references are all dropped", func(t *testing.T) {
		req := require.New(t)
		msg := newContent(t, "", deleted, other, deleted)

		result, _ := RemoveContentItem(msg, deleted, now)

		req.Equal([]uuid.UUID{other}, result.(*ContentMessage).ContentItems())
	})
}
