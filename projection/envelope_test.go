package projection

import (
	"chat-core/domain/chat"
	"chat-core/domain/event"
	"chat-core/errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var at = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func TestToEnvelope_MessageSent(t *testing.T) {
	req := require.New(t)
	item := uuid.New()
	msg, err := chat.NewMessage(chat.MessageParams{SenderID: uuid.New(), ContentItems: []uuid.UUID{item}, Text: "dinner?"}, at)
	req.NoError(err)
	conversationID := uuid.New()

	env, err := ToEnvelope(event.MessageSent{ConversationID: conversationID, Message: msg, At: at})
	req.NoError(err)

	req.Equal(event.MessageSentType, env.Type)
	req.Equal(conversationID, *env.ConversationID)
	req.Equal("content", env.Message.Kind)
	req.Equal([]uuid.UUID{item}, env.Message.ContentItems)
	req.Equal("dinner?", env.Message.Text)
	req.NotNil(env.Message.SeenBy)

	// Encoding keeps the same envelope
	data, err := env.Encode()
	req.NoError(err)
	decoded, err := DecodeEnvelope(data)
	req.NoError(err)
	req.Equal(env.Message.ID, decoded.Message.ID)
	req.Equal(env.Type, decoded.Type)
}

func TestToEnvelope_MarkedAsRead(t *testing.T) {
	req := require.New(t)
	userID, messageID := uuid.New(), uuid.New()

	env, err := ToEnvelope(event.MessageMarkedAsRead{UserID: userID, MessageID: messageID, At: at})

	req.NoError(err)
	req.Equal(userID, *env.UserID)
	req.Equal(messageID, *env.MessageID)
	req.Nil(env.Message)
}

func TestToEnvelope_RejectsContentDeleted(t *testing.T) {
	req := require.New(t)

	_, err := ToEnvelope(event.ContentDeleted{ContentItemID: uuid.New(), At: at})

	req.ErrorIs(err, errors.ErrInvalidPayload)
}

func TestDecodeEnvelope_Garbage(t *testing.T) {
	req := require.New(t)

	_, err := DecodeEnvelope([]byte("not json"))
	req.ErrorIs(err, errors.ErrInvalidPayload)

	_, err = DecodeEnvelope([]byte(`{}`))
	req.ErrorIs(err, errors.ErrInvalidPayload)
}

func TestToSummaryView(t *testing.T) {
	req := require.New(t)
	conn, err := chat.NewConnection(uuid.Nil, uuid.New(), uuid.New(), chat.StatusConnected)
	req.NoError(err)
	conv, err := chat.NewConnectionConversation(uuid.Nil, conn)
	req.NoError(err)
	msg, err := chat.NewMessage(chat.MessageParams{SenderID: conn.Account1, Text: "hey", SeenBy: []uuid.UUID{conn.Account1}}, at)
	req.NoError(err)
	req.NoError(conv.SendMessage(msg))

	view, err := ToSummaryView(conv, conn.Account2, true)

	req.NoError(err)
	req.True(view.Pinned)
	req.Equal(1, view.UnreadCount)
	req.Equal("hey", view.LastMessage.Text)
	req.Equal("connection", view.Type)
}
