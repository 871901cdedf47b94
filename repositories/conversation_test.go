package repositories

import (
	"chat-core/domain/chat"
	"chat-core/errors"
	"context"
	"log/slog"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

type stores struct {
	messages      *MessageRepository
	conversations *ConversationRepository
	connections   *ConnectionRepository
	groups        *GroupRepository
}

func newStores(db *badger.DB) stores {
	return stores{
		messages:      NewMessageRepository(db, slog.Default()),
		conversations: NewConversationRepository(db, slog.Default()),
		connections:   NewConnectionRepository(db),
		groups:        NewGroupRepository(db),
	}
}

func TestConversationRepository_ConnectionConversationRoundTrip(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	s := newStores(openDB(t))
	alice, bob := uuid.New(), uuid.New()

	// Given a stored connection and its conversation
	connection, err := chat.NewConnection(uuid.Nil, alice, bob, chat.StatusConnected)
	req.NoError(err)
	req.NoError(s.connections.CreateConnection(ctx, connection))
	conversation, err := s.conversations.CreateConnectionConversation(ctx, connection)
	req.NoError(err)

	// When both participants send a message
	for _, sender := range []uuid.UUID{alice, bob} {
		m, err := s.messages.CreateMessage(ctx, chat.MessageParams{SenderID: sender, Text: "hi"}, sentAt)
		req.NoError(err)
		req.NoError(conversation.SendMessage(m))
	}
	updated, err := s.conversations.UpdateConversation(ctx, conversation)
	req.NoError(err)
	req.True(updated)

	// Then the conversation comes back with both messages in order
	loaded, err := s.conversations.FindByConnection(ctx, connection.ID)
	req.NoError(err)
	req.Equal(conversation.ID(), loaded.ID())
	req.Equal(chat.ConversationConnection, loaded.Type())
	req.Equal(
		lo.Map(conversation.Messages(), func(m chat.Message, _ int) uuid.UUID { return m.ID() }),
		lo.Map(loaded.Messages(), func(m chat.Message, _ int) uuid.UUID { return m.ID() }),
	)

	byID, err := s.conversations.FindByID(ctx, conversation.ID())
	req.NoError(err)
	req.Len(byID.Messages(), 2)
}

func TestConversationRepository_OneConversationPerConnection(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	s := newStores(openDB(t))
	connection, err := chat.NewConnection(uuid.Nil, uuid.New(), uuid.New(), chat.StatusPending)
	req.NoError(err)
	req.NoError(s.connections.CreateConnection(ctx, connection))

	_, err = s.conversations.CreateConnectionConversation(ctx, connection)
	req.NoError(err)
	_, err = s.conversations.CreateConnectionConversation(ctx, connection)
	req.ErrorIs(err, errors.ErrAlreadyExists)
}

func TestConversationRepository_UnknownConnection(t *testing.T) {
	req := require.New(t)
	s := newStores(openDB(t))
	connection, err := chat.NewConnection(uuid.Nil, uuid.New(), uuid.New(), chat.StatusPending)
	req.NoError(err)

	_, err = s.conversations.CreateConnectionConversation(context.Background(), connection)

	req.ErrorIs(err, errors.ErrNotFound)
}

func TestConversationRepository_DeletedMessagesAreSkipped(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	s := newStores(openDB(t))
	alice := uuid.New()
	group, err := chat.NewGroup(uuid.Nil, "cooks", "", alice)
	req.NoError(err)
	req.NoError(s.groups.CreateGroup(ctx, group))
	conversation, err := s.conversations.CreateGroupConversation(ctx, group)
	req.NoError(err)

	kept, err := s.messages.CreateMessage(ctx, chat.MessageParams{SenderID: alice, Text: "kept"}, sentAt)
	req.NoError(err)
	gone, err := s.messages.CreateMessage(ctx, chat.MessageParams{SenderID: alice, ContentItems: []uuid.UUID{uuid.New()}}, sentAt)
	req.NoError(err)
	req.NoError(conversation.SendMessage(kept))
	req.NoError(conversation.SendMessage(gone))
	_, err = s.conversations.UpdateConversation(ctx, conversation)
	req.NoError(err)

	// When one message is deleted
	_, err = s.messages.DeleteMessage(ctx, gone.ID())
	req.NoError(err)

	// Then the conversation loads without it
	loaded, err := s.conversations.FindByGroup(ctx, group.ID)
	req.NoError(err)
	req.Len(loaded.Messages(), 1)
	req.Equal(kept.ID(), loaded.Messages()[0].ID())
}

func TestConversationRepository_FindAllForUser(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	s := newStores(openDB(t))
	alice, bob, carol := uuid.New(), uuid.New(), uuid.New()

	// Given alice has one connection with a conversation, one without,
	// and belongs to a group with a conversation
	withConversation, err := chat.NewConnection(uuid.Nil, alice, bob, chat.StatusConnected)
	req.NoError(err)
	withoutConversation, err := chat.NewConnection(uuid.Nil, alice, carol, chat.StatusPending)
	req.NoError(err)
	req.NoError(s.connections.CreateConnection(ctx, withConversation))
	req.NoError(s.connections.CreateConnection(ctx, withoutConversation))
	direct, err := s.conversations.CreateConnectionConversation(ctx, withConversation)
	req.NoError(err)

	group, err := chat.NewGroup(uuid.Nil, "book club", "monthly", alice, carol)
	req.NoError(err)
	req.NoError(s.groups.CreateGroup(ctx, group))
	groupConversation, err := s.conversations.CreateGroupConversation(ctx, group)
	req.NoError(err)

	// When listing alice's conversations
	conversations, err := s.conversations.FindAllForUser(ctx, alice)

	// Then both conversations come back
	req.NoError(err)
	req.ElementsMatch(
		[]uuid.UUID{direct.ID(), groupConversation.ID()},
		lo.Map(conversations, func(c chat.Conversation, _ int) uuid.UUID { return c.ID() }),
	)

	// And once alice leaves the group, only the direct one remains
	group.RemoveUser(alice)
	_, err = s.groups.UpdateGroup(ctx, group)
	req.NoError(err)
	conversations, err = s.conversations.FindAllForUser(ctx, alice)
	req.NoError(err)
	req.Len(conversations, 1)
	req.Equal(direct.ID(), conversations[0].ID())
}

func TestConversationRepository_UpdateMissing(t *testing.T) {
	req := require.New(t)
	s := newStores(openDB(t))
	connection, err := chat.NewConnection(uuid.Nil, uuid.New(), uuid.New(), chat.StatusConnected)
	req.NoError(err)
	never, err := chat.NewConnectionConversation(uuid.Nil, connection)
	req.NoError(err)

	updated, err := s.conversations.UpdateConversation(context.Background(), never)

	req.NoError(err)
	req.False(updated)
}
