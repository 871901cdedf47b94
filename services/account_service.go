package services

import (
	"chat-core/contract"
	"chat-core/domain/account"
	"chat-core/domain/chat"
	"chat-core/errors"
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// AccountService edits the pinned and blocked sets of the caller. Each
// operation reports whether the set changed; an unchanged set is not
// written back.
type AccountService struct {
	log           *slog.Logger
	accounts      contract.IAccountStore
	conversations contract.IConversationStore
	connections   contract.IConnectionStore
}

func NewAccountService(log *slog.Logger, accounts contract.IAccountStore, conversations contract.IConversationStore, connections contract.IConnectionStore) *AccountService {
	return &AccountService{log: log, accounts: accounts, conversations: conversations, connections: connections}
}

func (s *AccountService) Get(ctx context.Context, userID uuid.UUID) (*account.UserAccount, error) {
	return s.accounts.GetAccount(ctx, userID)
}

func (s *AccountService) PinConversation(ctx context.Context, userID, conversationID uuid.UUID) (bool, error) {
	conversation, err := s.conversations.FindByID(ctx, conversationID)
	if err != nil {
		return false, err
	}
	if !conversation.IsParticipant(userID) {
		return false, fmt.Errorf("%w: %s is not in conversation %s", errors.ErrMembershipViolation, userID, conversationID)
	}
	return s.change(ctx, userID, func(a *account.UserAccount) bool { return a.AddPin(conversationID) })
}

func (s *AccountService) UnpinConversation(ctx context.Context, userID, conversationID uuid.UUID) (bool, error) {
	return s.change(ctx, userID, func(a *account.UserAccount) bool { return a.RemovePin(conversationID) })
}

// BlockConnection also moves the connection itself to StatusBlocked.
func (s *AccountService) BlockConnection(ctx context.Context, userID, connectionID uuid.UUID) (bool, error) {
	connection, err := s.connections.GetConnection(ctx, connectionID)
	if err != nil {
		return false, err
	}
	if !connection.Involves(userID) {
		return false, fmt.Errorf("%w: %s is not part of connection %s", errors.ErrMembershipViolation, userID, connectionID)
	}
	changed, err := s.change(ctx, userID, func(a *account.UserAccount) bool { return a.BlockConnection(connectionID) })
	if err != nil {
		return false, err
	}
	if connection.Status != chat.StatusBlocked {
		connection.SetStatus(chat.StatusBlocked)
		if _, err := s.connections.UpdateConnection(ctx, connection); err != nil {
			return changed, err
		}
	}
	return changed, nil
}

// UnblockConnection leaves the connection status alone: what it becomes
// afterwards is the caller's decision.
func (s *AccountService) UnblockConnection(ctx context.Context, userID, connectionID uuid.UUID) (bool, error) {
	return s.change(ctx, userID, func(a *account.UserAccount) bool { return a.UnblockConnection(connectionID) })
}

func (s *AccountService) change(ctx context.Context, userID uuid.UUID, mutate func(*account.UserAccount) bool) (bool, error) {
	return s.accounts.ChangeAccount(ctx, userID, mutate)
}
