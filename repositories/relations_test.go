package repositories

import (
	"chat-core/domain/chat"
	"chat-core/errors"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestConnectionRepository_Lifecycle(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewConnectionRepository(openDB(t))
	alice, bob := uuid.New(), uuid.New()

	connection, err := chat.NewConnection(uuid.Nil, alice, bob, chat.StatusPending)
	req.NoError(err)
	req.NoError(repository.CreateConnection(ctx, connection))
	req.ErrorIs(repository.CreateConnection(ctx, connection), errors.ErrAlreadyExists)

	// Status changes are persisted
	connection.SetStatus(chat.StatusFavourite)
	updated, err := repository.UpdateConnection(ctx, connection)
	req.NoError(err)
	req.True(updated)
	fetched, err := repository.GetConnection(ctx, connection.ID)
	req.NoError(err)
	req.Equal(chat.StatusFavourite, fetched.Status)

	// Both accounts find it
	for _, account := range []uuid.UUID{alice, bob} {
		connections, err := repository.FindConnectionsForUser(ctx, account)
		req.NoError(err)
		req.Len(connections, 1)
		req.Equal(connection.ID, connections[0].ID)
	}

	deleted, err := repository.DeleteConnection(ctx, connection.ID)
	req.NoError(err)
	req.True(deleted)
	_, err = repository.GetConnection(ctx, connection.ID)
	req.ErrorIs(err, errors.ErrNotFound)
	connections, err := repository.FindConnectionsForUser(ctx, alice)
	req.NoError(err)
	req.Empty(connections)

	deleted, err = repository.DeleteConnection(ctx, connection.ID)
	req.NoError(err)
	req.False(deleted)
}

func TestGroupRepository_MembershipIndex(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewGroupRepository(openDB(t))
	alice, bob := uuid.New(), uuid.New()

	group, err := chat.NewGroup(uuid.Nil, "hikers", "weekend trips", alice)
	req.NoError(err)
	req.NoError(repository.CreateGroup(ctx, group))

	// When bob joins and alice leaves
	req.True(group.AddUser(bob))
	req.True(group.RemoveUser(alice))
	updated, err := repository.UpdateGroup(ctx, group)
	req.NoError(err)
	req.True(updated)

	// Then the index follows the membership
	groups, err := repository.FindGroupsForUser(ctx, alice)
	req.NoError(err)
	req.Empty(groups)
	groups, err = repository.FindGroupsForUser(ctx, bob)
	req.NoError(err)
	req.Len(groups, 1)
	req.Equal("hikers", groups[0].Name)
	req.Equal("weekend trips", groups[0].Description)
	req.Equal([]uuid.UUID{bob}, groups[0].Members())

	deleted, err := repository.DeleteGroup(ctx, group.ID)
	req.NoError(err)
	req.True(deleted)
	groups, err = repository.FindGroupsForUser(ctx, bob)
	req.NoError(err)
	req.Empty(groups)
}

func TestAccountRepository_EmptyThenSaved(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewAccountRepository(openDB(t))
	id := uuid.New()

	// Given an account that never stored anything
	a, err := repository.GetAccount(ctx, id)
	req.NoError(err)
	req.Equal(id, a.ID)
	req.Empty(a.PinnedConversationIDs())

	// When it pins a conversation and blocks a connection
	conversationID, connectionID := uuid.New(), uuid.New()
	req.True(a.AddPin(conversationID))
	req.True(a.BlockConnection(connectionID))
	req.NoError(repository.SaveAccount(ctx, a))

	// Then both relations come back
	fetched, err := repository.GetAccount(ctx, id)
	req.NoError(err)
	req.True(fetched.IsPinned(conversationID))
	req.True(fetched.IsBlocked(connectionID))
}
