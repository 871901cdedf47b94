package services

import (
	"chat-core/contract"
	"chat-core/domain/chat"
	"chat-core/errors"
	"chat-core/projection"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
)

type ConversationService struct {
	log           *slog.Logger
	conversations contract.IConversationStore
	connections   contract.IConnectionStore
	groups        contract.IGroupStore
	accounts      contract.IAccountStore
}

func NewConversationService(
	log *slog.Logger,
	conversations contract.IConversationStore,
	connections contract.IConnectionStore,
	groups contract.IGroupStore,
	accounts contract.IAccountStore,
) *ConversationService {
	return &ConversationService{
		log:           log,
		conversations: conversations,
		connections:   connections,
		groups:        groups,
		accounts:      accounts,
	}
}

func (s *ConversationService) CreateConnection(ctx context.Context, requester, other uuid.UUID) (*chat.Connection, error) {
	connection, err := chat.NewConnection(uuid.Nil, requester, other, chat.StatusPending)
	if err != nil {
		return nil, err
	}
	if err := s.connections.CreateConnection(ctx, connection); err != nil {
		return nil, err
	}
	return connection, nil
}

// SetConnectionStatus stores any of the five statuses; which transitions
// are legal is decided by the caller.
func (s *ConversationService) SetConnectionStatus(ctx context.Context, requester, connectionID uuid.UUID, status chat.ConnectionStatus) (*chat.Connection, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %s", errors.ErrValidation, status)
	}
	connection, err := s.involvedConnection(ctx, requester, connectionID)
	if err != nil {
		return nil, err
	}
	connection.SetStatus(status)
	if _, err := s.connections.UpdateConnection(ctx, connection); err != nil {
		return nil, err
	}
	return connection, nil
}

func (s *ConversationService) CreateConnectionConversation(ctx context.Context, requester, connectionID uuid.UUID) (*chat.ConnectionConversation, error) {
	connection, err := s.involvedConnection(ctx, requester, connectionID)
	if err != nil {
		return nil, err
	}
	return s.conversations.CreateConnectionConversation(ctx, connection)
}

// CreateGroup always counts the creator as a member.
func (s *ConversationService) CreateGroup(ctx context.Context, creator uuid.UUID, name, description string, members []uuid.UUID) (*chat.Group, error) {
	group, err := chat.NewGroup(uuid.Nil, name, description, append([]uuid.UUID{creator}, members...)...)
	if err != nil {
		return nil, err
	}
	if err := s.groups.CreateGroup(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *ConversationService) CreateGroupConversation(ctx context.Context, requester, groupID uuid.UUID) (*chat.GroupConversation, error) {
	group, err := s.memberGroup(ctx, requester, groupID)
	if err != nil {
		return nil, err
	}
	return s.conversations.CreateGroupConversation(ctx, group)
}

// AddGroupMember reports whether membership changed. Only current members
// may add someone.
func (s *ConversationService) AddGroupMember(ctx context.Context, requester, groupID, account uuid.UUID) (bool, error) {
	changed, err := s.changeMembers(ctx, requester, groupID, func(group *chat.Group) bool { return group.AddUser(account) })
	if changed {
		s.log.Debug("Group member added", "group_id", groupID, "account_id", account)
	}
	return changed, err
}

// RemoveGroupMember lets a member leave or remove someone else. Messages
// already sent by the removed account stay in the conversation.
func (s *ConversationService) RemoveGroupMember(ctx context.Context, requester, groupID, account uuid.UUID) (bool, error) {
	changed, err := s.changeMembers(ctx, requester, groupID, func(group *chat.Group) bool { return group.RemoveUser(account) })
	if changed {
		s.log.Debug("Group member removed", "group_id", groupID, "account_id", account)
	}
	return changed, err
}

// changeMembers checks the requester against the members as stored when
// the change commits, so a member removed meanwhile cannot add anyone.
func (s *ConversationService) changeMembers(ctx context.Context, requester, groupID uuid.UUID, change func(*chat.Group) bool) (bool, error) {
	return s.groups.ChangeGroup(ctx, groupID, func(group *chat.Group) (bool, error) {
		if !group.HasMember(requester) {
			return false, fmt.Errorf("%w: %s is not a member of group %s", errors.ErrMembershipViolation, requester, groupID)
		}
		return change(group), nil
	})
}

// Get returns a conversation to one of its participants.
func (s *ConversationService) Get(ctx context.Context, viewer, conversationID uuid.UUID) (chat.Conversation, error) {
	conversation, err := s.conversations.FindByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conversation.IsParticipant(viewer) {
		return nil, fmt.Errorf("%w: %s is not in conversation %s", errors.ErrMembershipViolation, viewer, conversationID)
	}
	return conversation, nil
}

// ListForUser summarizes every conversation of viewer: pinned ones first,
// then the most recently active.
func (s *ConversationService) ListForUser(ctx context.Context, viewer uuid.UUID) ([]projection.ConversationSummaryView, error) {
	conversations, err := s.conversations.FindAllForUser(ctx, viewer)
	if err != nil {
		return nil, err
	}
	userAccount, err := s.accounts.GetAccount(ctx, viewer)
	if err != nil {
		return nil, err
	}

	views := make([]projection.ConversationSummaryView, 0, len(conversations))
	for _, c := range conversations {
		view, err := projection.ToSummaryView(c, viewer, userAccount.IsPinned(c.ID()))
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	slices.SortStableFunc(views, func(a, b projection.ConversationSummaryView) int {
		if a.Pinned != b.Pinned {
			if a.Pinned {
				return -1
			}
			return 1
		}
		return lastActivity(b).Compare(lastActivity(a))
	})
	return views, nil
}

func (s *ConversationService) involvedConnection(ctx context.Context, requester, connectionID uuid.UUID) (*chat.Connection, error) {
	connection, err := s.connections.GetConnection(ctx, connectionID)
	if err != nil {
		return nil, err
	}
	if !connection.Involves(requester) {
		return nil, fmt.Errorf("%w: %s is not part of connection %s", errors.ErrMembershipViolation, requester, connectionID)
	}
	return connection, nil
}

func (s *ConversationService) memberGroup(ctx context.Context, requester, groupID uuid.UUID) (*chat.Group, error) {
	group, err := s.groups.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !group.HasMember(requester) {
		return nil, fmt.Errorf("%w: %s is not a member of group %s", errors.ErrMembershipViolation, requester, groupID)
	}
	return group, nil
}

func lastActivity(v projection.ConversationSummaryView) time.Time {
	if v.LastMessage == nil {
		return time.Time{}
	}
	return v.LastMessage.SentAt
}
