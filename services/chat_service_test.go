package services

import (
	"chat-core/contract"
	"chat-core/domain/chat"
	"chat-core/errors"
	"chat-core/mocks"
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2026, 4, 2, 15, 0, 0, 0, time.UTC)

type chatFixture struct {
	conversations *mocks.MockIConversationStore
	messages      *mocks.MockIMessageStore
	notifier      *mocks.MockNotifier
	service       *ChatService
	connection    *chat.Connection
	conversation  *chat.ConnectionConversation
}

func newChatFixture(t *testing.T) chatFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	connection, err := chat.NewConnection(uuid.Nil, uuid.New(), uuid.New(), chat.StatusConnected)
	require.NoError(t, err)
	conversation, err := chat.NewConnectionConversation(uuid.Nil, connection)
	require.NoError(t, err)

	f := chatFixture{
		conversations: mocks.NewMockIConversationStore(ctrl),
		messages:      mocks.NewMockIMessageStore(ctrl),
		notifier:      mocks.NewMockNotifier(ctrl),
		connection:    connection,
		conversation:  conversation,
	}
	f.service = NewChatService(log, f.conversations, f.messages, f.notifier).WithClock(func() time.Time { return now })
	f.conversations.EXPECT().FindByID(gomock.Any(), conversation.ID()).Return(conversation, nil).AnyTimes()
	return f
}

// seed puts a stored text message of sender into the conversation.
func (f chatFixture) seed(t *testing.T, sender uuid.UUID) chat.Message {
	t.Helper()
	m, err := chat.NewMessage(chat.MessageParams{SenderID: sender, Text: "first", SeenBy: []uuid.UUID{sender}}, now.Add(-time.Hour))
	require.NoError(t, err)
	require.NoError(t, f.conversation.SendMessage(m))
	return m
}

// storeInPlace makes the message store apply every mutation to the message
// held by the fixture conversation, and appends sent messages to it.
func (f chatFixture) storeInPlace() {
	f.messages.EXPECT().MutateMessage(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID, mutate contract.MessageMutation) (chat.Message, contract.Mutation, error) {
			current, ok := f.conversation.Message(id)
			if !ok {
				return nil, contract.MutationNone, fmt.Errorf("%w: message %s", errors.ErrNotFound, id)
			}
			result, decision, err := mutate(current)
			if err != nil {
				return nil, contract.MutationNone, err
			}
			return result, decision, nil
		}).AnyTimes()
	f.conversations.EXPECT().AppendMessage(gomock.Any(), f.conversation.ID(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, m chat.Message) error {
			return f.conversation.SendMessage(m)
		}).AnyTimes()
}

func createFromParams(_ context.Context, params chat.MessageParams, sentAt time.Time) (chat.Message, error) {
	return chat.NewMessage(params, sentAt)
}

func TestChatService_SendMessage(t *testing.T) {
	req := require.New(t)
	f := newChatFixture(t)
	sender := f.connection.Account1

	// Given the store creates the message and appends it
	f.storeInPlace()
	f.messages.EXPECT().CreateMessage(gomock.Any(), gomock.Any(), now).DoAndReturn(createFromParams)
	f.notifier.EXPECT().NotifyMessageSent(gomock.Any(), gomock.Any(), f.conversation.ID()).Return(nil)

	// When the sender posts a text
	m, err := f.service.SendMessage(context.Background(), chat.SendMessageCommand{
		Conversation: f.conversation.ID(),
		SenderID:     sender,
		Text:         "hello",
	})

	// Then the message is appended and already seen by its sender
	req.NoError(err)
	req.Equal([]chat.Message{m}, f.conversation.Messages())
	req.True(m.HasBeenSeenBy(sender))
	req.Equal(now, m.SentAt())
}

func TestChatService_SendMessage_RejectsOutsiderBeforeWriting(t *testing.T) {
	req := require.New(t)
	f := newChatFixture(t)

	// When someone outside the connection posts, no store write happens
	_, err := f.service.SendMessage(context.Background(), chat.SendMessageCommand{
		Conversation: f.conversation.ID(),
		SenderID:     uuid.New(),
		Text:         "hello",
	})

	req.ErrorIs(err, errors.ErrMembershipViolation)
	req.Empty(f.conversation.Messages())
}

func TestChatService_SendMessage_RejectsUnknownReply(t *testing.T) {
	req := require.New(t)
	f := newChatFixture(t)
	unknown := uuid.New()

	_, err := f.service.SendMessage(context.Background(), chat.SendMessageCommand{
		Conversation: f.conversation.ID(),
		SenderID:     f.connection.Account1,
		Text:         "answer",
		RepliedTo:    &unknown,
	})

	req.ErrorIs(err, errors.ErrValidation)
}

func TestChatService_SendMessage_RollsBackWhenAppendFails(t *testing.T) {
	req := require.New(t)
	f := newChatFixture(t)

	var created uuid.UUID
	f.messages.EXPECT().CreateMessage(gomock.Any(), gomock.Any(), now).
		DoAndReturn(func(ctx context.Context, params chat.MessageParams, sentAt time.Time) (chat.Message, error) {
			m, err := createFromParams(ctx, params, sentAt)
			created = m.ID()
			return m, err
		})
	f.conversations.EXPECT().AppendMessage(gomock.Any(), f.conversation.ID(), gomock.Any()).Return(fmt.Errorf("disk full"))
	f.messages.EXPECT().DeleteMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID) (bool, error) {
			req.Equal(created, id)
			return true, nil
		})

	_, err := f.service.SendMessage(context.Background(), chat.SendMessageCommand{
		Conversation: f.conversation.ID(),
		SenderID:     f.connection.Account2,
		Text:         "hello",
	})

	req.ErrorContains(err, "disk full")
}

func TestChatService_NotificationFailureDoesNotFailCommand(t *testing.T) {
	req := require.New(t)
	f := newChatFixture(t)

	f.storeInPlace()
	f.messages.EXPECT().CreateMessage(gomock.Any(), gomock.Any(), now).DoAndReturn(createFromParams)
	f.notifier.EXPECT().NotifyMessageSent(gomock.Any(), gomock.Any(), f.conversation.ID()).
		Return(fmt.Errorf("transport down"))

	m, err := f.service.SendMessage(context.Background(), chat.SendMessageCommand{
		Conversation: f.conversation.ID(),
		SenderID:     f.connection.Account1,
		ImageURLs:    []string{"https://img/1.png"},
	})

	req.NoError(err)
	req.Equal(chat.KindImage, m.Kind())
}

func TestChatService_EditText(t *testing.T) {
	f := newChatFixture(t)
	f.storeInPlace()
	m := f.seed(t, f.connection.Account1)

	t.Run("sender edits", func(t *testing.T) {
		req := require.New(t)
		f.notifier.EXPECT().NotifyMessageUpdated(gomock.Any(), m).Return(nil)

		_, err := f.service.EditText(context.Background(), chat.EditTextCommand{
			Conversation: f.conversation.ID(), MessageID: m.ID(), EditorID: f.connection.Account1, Text: "edited",
		})

		req.NoError(err)
		text, err := chat.TextOf(m)
		req.NoError(err)
		req.Equal("edited", text)
		req.Equal(now, *m.UpdatedAt())
	})

	t.Run("other participant is refused", func(t *testing.T) {
		_, err := f.service.EditText(context.Background(), chat.EditTextCommand{
			Conversation: f.conversation.ID(), MessageID: m.ID(), EditorID: f.connection.Account2, Text: "hijack",
		})
		require.ErrorIs(t, err, errors.ErrNotSender)
	})

	t.Run("blank text is refused and nothing is stored", func(t *testing.T) {
		_, err := f.service.EditText(context.Background(), chat.EditTextCommand{
			Conversation: f.conversation.ID(), MessageID: m.ID(), EditorID: f.connection.Account1, Text: "   ",
		})
		require.ErrorIs(t, err, errors.ErrValidation)
	})

	t.Run("unknown message", func(t *testing.T) {
		_, err := f.service.EditText(context.Background(), chat.EditTextCommand{
			Conversation: f.conversation.ID(), MessageID: uuid.New(), EditorID: f.connection.Account1, Text: "x",
		})
		require.ErrorIs(t, err, errors.ErrNotFound)
	})
}

func TestChatService_AppendToWrongKind(t *testing.T) {
	req := require.New(t)
	f := newChatFixture(t)
	f.storeInPlace()
	m := f.seed(t, f.connection.Account1)

	_, err := f.service.AppendImage(context.Background(), chat.AppendImageCommand{
		Conversation: f.conversation.ID(), MessageID: m.ID(), EditorID: f.connection.Account1, URL: "https://img/2.png",
	})
	req.ErrorIs(err, errors.ErrValidation)

	_, err = f.service.AppendContentItem(context.Background(), chat.AppendContentItemCommand{
		Conversation: f.conversation.ID(), MessageID: m.ID(), EditorID: f.connection.Account1, ContentItem: uuid.New(),
	})
	req.ErrorIs(err, errors.ErrValidation)
}

func TestChatService_AppendContentItem(t *testing.T) {
	req := require.New(t)
	f := newChatFixture(t)
	first, second := uuid.New(), uuid.New()
	m, err := chat.NewMessage(chat.MessageParams{SenderID: f.connection.Account2, ContentItems: []uuid.UUID{first}}, now)
	req.NoError(err)
	req.NoError(f.conversation.SendMessage(m))
	f.storeInPlace()

	f.notifier.EXPECT().NotifyMessageUpdated(gomock.Any(), m).Return(nil)

	_, err = f.service.AppendContentItem(context.Background(), chat.AppendContentItemCommand{
		Conversation: f.conversation.ID(), MessageID: m.ID(), EditorID: f.connection.Account2, ContentItem: second,
	})

	req.NoError(err)
	req.Equal([]uuid.UUID{first, second}, m.(*chat.ContentMessage).ContentItems())
}

func TestChatService_MarkAsReadIsIdempotent(t *testing.T) {
	req := require.New(t)
	f := newChatFixture(t)
	m := f.seed(t, f.connection.Account1)
	reader := f.connection.Account2
	f.storeInPlace()

	// Only the first call notifies
	f.notifier.EXPECT().NotifyMessageMarkedAsRead(gomock.Any(), reader, m.ID()).Return(nil).Times(1)

	cmd := chat.MarkAsReadCommand{Conversation: f.conversation.ID(), MessageID: m.ID(), ReaderID: reader}
	changed, err := f.service.MarkAsRead(context.Background(), cmd)
	req.NoError(err)
	req.True(changed)

	changed, err = f.service.MarkAsRead(context.Background(), cmd)
	req.NoError(err)
	req.False(changed)
	req.Nil(m.UpdatedAt())

	_, err = f.service.MarkAsRead(context.Background(), chat.MarkAsReadCommand{
		Conversation: f.conversation.ID(), MessageID: m.ID(), ReaderID: uuid.New(),
	})
	req.ErrorIs(err, errors.ErrMembershipViolation)
}

func TestChatService_DeleteMessage(t *testing.T) {
	req := require.New(t)
	f := newChatFixture(t)
	f.storeInPlace()
	m := f.seed(t, f.connection.Account1)

	// The other participant cannot delete it
	err := f.service.DeleteMessage(context.Background(), chat.DeleteMessageCommand{
		Conversation: f.conversation.ID(), MessageID: m.ID(), RequesterID: f.connection.Account2,
	})
	req.ErrorIs(err, errors.ErrNotSender)

	// The sender can
	f.notifier.EXPECT().NotifyMessageDeleted(gomock.Any(), m.ID()).Return(nil)
	err = f.service.DeleteMessage(context.Background(), chat.DeleteMessageCommand{
		Conversation: f.conversation.ID(), MessageID: m.ID(), RequesterID: f.connection.Account1,
	})
	req.NoError(err)
}
