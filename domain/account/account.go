// Package account holds the part of a user account the messaging core
// owns: pinned conversations and blocked connections.
package account

import (
	"github.com/google/uuid"
	"github.com/samber/lo"
)

type UserAccount struct {
	ID                    uuid.UUID
	pinnedConversationIDs []uuid.UUID
	blockedConnectionIDs  []uuid.UUID
}

func NewUserAccount(id uuid.UUID, pinned, blocked []uuid.UUID) *UserAccount {
	a := &UserAccount{ID: id}
	for _, p := range pinned {
		a.AddPin(p)
	}
	for _, b := range blocked {
		a.BlockConnection(b)
	}
	return a
}

func (a *UserAccount) PinnedConversationIDs() []uuid.UUID {
	return append([]uuid.UUID(nil), a.pinnedConversationIDs...)
}

func (a *UserAccount) BlockedConnectionIDs() []uuid.UUID {
	return append([]uuid.UUID(nil), a.blockedConnectionIDs...)
}

func (a *UserAccount) IsPinned(conversationID uuid.UUID) bool {
	return lo.Contains(a.pinnedConversationIDs, conversationID)
}

func (a *UserAccount) IsBlocked(connectionID uuid.UUID) bool {
	return lo.Contains(a.blockedConnectionIDs, connectionID)
}

// AddPin reports whether the conversation was not pinned yet.
func (a *UserAccount) AddPin(conversationID uuid.UUID) bool {
	return addTo(&a.pinnedConversationIDs, conversationID)
}

// RemovePin reports whether the conversation was pinned.
func (a *UserAccount) RemovePin(conversationID uuid.UUID) bool {
	return removeFrom(&a.pinnedConversationIDs, conversationID)
}

func (a *UserAccount) BlockConnection(connectionID uuid.UUID) bool {
	return addTo(&a.blockedConnectionIDs, connectionID)
}

func (a *UserAccount) UnblockConnection(connectionID uuid.UUID) bool {
	return removeFrom(&a.blockedConnectionIDs, connectionID)
}

func addTo(set *[]uuid.UUID, id uuid.UUID) bool {
	if lo.Contains(*set, id) {
		return false
	}
	*set = append(*set, id)
	return true
}

func removeFrom(set *[]uuid.UUID, id uuid.UUID) bool {
	if !lo.Contains(*set, id) {
		return false
	}
	*set = lo.Without(*set, id)
	return true
}
