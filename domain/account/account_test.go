package account

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestUserAccount_Pins(t *testing.T) {
	req := require.New(t)
	conversationID := uuid.New()
	acc := NewUserAccount(uuid.New(), nil, nil)

	// When pinning a conversation for the first time
	req.True(acc.AddPin(conversationID))
	req.Equal([]uuid.UUID{conversationID}, acc.PinnedConversationIDs())

	// Then pinning it again changes nothing
	req.False(acc.AddPin(conversationID))
	req.Len(acc.PinnedConversationIDs(), 1)

	// When unpinning it
	req.True(acc.RemovePin(conversationID))
	req.Empty(acc.PinnedConversationIDs())

	// Then unpinning an absent conversation changes nothing
	req.False(acc.RemovePin(conversationID))
	req.Empty(acc.PinnedConversationIDs())
}

func TestUserAccount_BlockedConnections(t *testing.T) {
	req := require.New(t)
	first, second := uuid.New(), uuid.New()
	acc := NewUserAccount(uuid.New(), nil, []uuid.UUID{first})

	req.True(acc.IsBlocked(first))
	req.False(acc.BlockConnection(first))
	req.True(acc.BlockConnection(second))
	req.Equal([]uuid.UUID{first, second}, acc.BlockedConnectionIDs())

	req.True(acc.UnblockConnection(first))
	req.False(acc.UnblockConnection(first))
	req.Equal([]uuid.UUID{second}, acc.BlockedConnectionIDs())
}

func TestNewUserAccount_DeduplicatesRestoredSets(t *testing.T) {
	req := require.New(t)
	pinned := uuid.New()

	acc := NewUserAccount(uuid.New(), []uuid.UUID{pinned, pinned}, nil)

	req.Equal([]uuid.UUID{pinned}, acc.PinnedConversationIDs())
}
