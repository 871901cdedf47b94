package services

import (
	"chat-core/domain/account"
	"chat-core/domain/chat"
	"chat-core/errors"
	"chat-core/mocks"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type conversationFixture struct {
	conversations *mocks.MockIConversationStore
	connections   *mocks.MockIConnectionStore
	groups        *mocks.MockIGroupStore
	accounts      *mocks.MockIAccountStore
	service       *ConversationService
}

func newConversationFixture(t *testing.T) conversationFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := conversationFixture{
		conversations: mocks.NewMockIConversationStore(ctrl),
		connections:   mocks.NewMockIConnectionStore(ctrl),
		groups:        mocks.NewMockIGroupStore(ctrl),
		accounts:      mocks.NewMockIAccountStore(ctrl),
	}
	f.service = NewConversationService(logs.GetLoggerFromLevel(slog.LevelDebug), f.conversations, f.connections, f.groups, f.accounts)
	return f
}

func TestConversationService_CreateConnectionConversation(t *testing.T) {
	req := require.New(t)
	f := newConversationFixture(t)
	connection, err := chat.NewConnection(uuid.Nil, uuid.New(), uuid.New(), chat.StatusConnected)
	req.NoError(err)
	expected, err := chat.NewConnectionConversation(uuid.Nil, connection)
	req.NoError(err)

	f.connections.EXPECT().GetConnection(gomock.Any(), connection.ID).Return(connection, nil).Times(2)
	f.conversations.EXPECT().CreateConnectionConversation(gomock.Any(), connection).Return(expected, nil)

	// A participant opens the conversation
	got, err := f.service.CreateConnectionConversation(context.Background(), connection.Account1, connection.ID)
	req.NoError(err)
	req.Equal(expected, got)

	// A stranger cannot
	_, err = f.service.CreateConnectionConversation(context.Background(), uuid.New(), connection.ID)
	req.ErrorIs(err, errors.ErrMembershipViolation)
}

func TestConversationService_SetConnectionStatus(t *testing.T) {
	req := require.New(t)
	f := newConversationFixture(t)
	connection, err := chat.NewConnection(uuid.Nil, uuid.New(), uuid.New(), chat.StatusPending)
	req.NoError(err)

	f.connections.EXPECT().GetConnection(gomock.Any(), connection.ID).Return(connection, nil)
	f.connections.EXPECT().UpdateConnection(gomock.Any(), connection).Return(true, nil)

	got, err := f.service.SetConnectionStatus(context.Background(), connection.Account2, connection.ID, chat.StatusFavourite)
	req.NoError(err)
	req.Equal(chat.StatusFavourite, got.Status)

	_, err = f.service.SetConnectionStatus(context.Background(), connection.Account2, connection.ID, chat.ConnectionStatus(7))
	req.ErrorIs(err, errors.ErrValidation)
}

func TestConversationService_GroupMembership(t *testing.T) {
	req := require.New(t)
	f := newConversationFixture(t)
	owner, guest := uuid.New(), uuid.New()
	group, err := chat.NewGroup(uuid.Nil, "climbing", "", owner)
	req.NoError(err)

	f.groups.EXPECT().ChangeGroup(gomock.Any(), group.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, change func(*chat.Group) (bool, error)) (bool, error) {
			return change(group)
		}).AnyTimes()

	// Adding twice changes the group once
	added, err := f.service.AddGroupMember(context.Background(), owner, group.ID, guest)
	req.NoError(err)
	req.True(added)
	added, err = f.service.AddGroupMember(context.Background(), owner, group.ID, guest)
	req.NoError(err)
	req.False(added)

	// A non member cannot add anyone
	_, err = f.service.AddGroupMember(context.Background(), uuid.New(), group.ID, uuid.New())
	req.ErrorIs(err, errors.ErrMembershipViolation)

	// The guest leaves
	removed, err := f.service.RemoveGroupMember(context.Background(), guest, group.ID, guest)
	req.NoError(err)
	req.True(removed)
	req.False(group.HasMember(guest))
}

func TestConversationService_CreateGroupIncludesCreator(t *testing.T) {
	req := require.New(t)
	f := newConversationFixture(t)
	creator, friend := uuid.New(), uuid.New()

	f.groups.EXPECT().CreateGroup(gomock.Any(), gomock.Any()).Return(nil)

	group, err := f.service.CreateGroup(context.Background(), creator, "book club", "monthly", []uuid.UUID{friend})
	req.NoError(err)
	req.ElementsMatch([]uuid.UUID{creator, friend}, group.Members())
}

func TestConversationService_ListForUser(t *testing.T) {
	req := require.New(t)
	f := newConversationFixture(t)
	viewer := uuid.New()
	base := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)

	newConversation := func(lastSent time.Time) chat.Conversation {
		connection, err := chat.NewConnection(uuid.Nil, viewer, uuid.New(), chat.StatusConnected)
		req.NoError(err)
		c, err := chat.NewConnectionConversation(uuid.Nil, connection)
		req.NoError(err)
		m, err := chat.NewMessage(chat.MessageParams{SenderID: connection.Account2, Text: "ping"}, lastSent)
		req.NoError(err)
		req.NoError(c.SendMessage(m))
		return c
	}
	old := newConversation(base)
	recent := newConversation(base.Add(time.Hour))
	pinned := newConversation(base.Add(-time.Hour))

	f.conversations.EXPECT().FindAllForUser(gomock.Any(), viewer).Return([]chat.Conversation{old, recent, pinned}, nil)
	f.accounts.EXPECT().GetAccount(gomock.Any(), viewer).Return(account.NewUserAccount(viewer, []uuid.UUID{pinned.ID()}, nil), nil)

	views, err := f.service.ListForUser(context.Background(), viewer)

	// Then the pinned conversation comes first, the rest by recency
	req.NoError(err)
	req.Len(views, 3)
	req.Equal(pinned.ID(), views[0].ConversationID)
	req.True(views[0].Pinned)
	req.Equal(recent.ID(), views[1].ConversationID)
	req.Equal(old.ID(), views[2].ConversationID)
	req.Equal(1, views[1].UnreadCount)
}

func TestConversationService_GetChecksParticipant(t *testing.T) {
	req := require.New(t)
	f := newConversationFixture(t)
	connection, err := chat.NewConnection(uuid.Nil, uuid.New(), uuid.New(), chat.StatusConnected)
	req.NoError(err)
	c, err := chat.NewConnectionConversation(uuid.Nil, connection)
	req.NoError(err)
	f.conversations.EXPECT().FindByID(gomock.Any(), c.ID()).Return(c, nil).Times(2)

	got, err := f.service.Get(context.Background(), connection.Account1, c.ID())
	req.NoError(err)
	req.Equal(c.ID(), got.ID())

	_, err = f.service.Get(context.Background(), uuid.New(), c.ID())
	req.ErrorIs(err, errors.ErrMembershipViolation)
}
