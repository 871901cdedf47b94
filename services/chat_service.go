package services

import (
	"chat-core/contract"
	"chat-core/domain/chat"
	"chat-core/errors"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// ChatService runs the message commands. Every command resolves the
// conversation, hands its change to the store, which applies it to the
// message as stored in a single transaction, and only then notifies
// connected clients. A failed notification never fails a command whose
// write is committed.
type ChatService struct {
	log           *slog.Logger
	conversations contract.IConversationStore
	messages      contract.IMessageStore
	notifier      contract.Notifier
	clock         func() time.Time
}

func NewChatService(log *slog.Logger, conversations contract.IConversationStore, messages contract.IMessageStore, notifier contract.Notifier) *ChatService {
	return &ChatService{
		log:           log,
		conversations: conversations,
		messages:      messages,
		notifier:      notifier,
		clock:         time.Now,
	}
}

func (s *ChatService) WithClock(clock func() time.Time) *ChatService {
	s.clock = clock
	return s
}

// SendMessage creates the message and appends it to the conversation. The
// sender is part of the seen-by set from the start.
func (s *ChatService) SendMessage(ctx context.Context, cmd chat.SendMessageCommand) (chat.Message, error) {
	conversation, err := s.conversations.FindByID(ctx, cmd.ConversationID())
	if err != nil {
		return nil, err
	}
	// Fail early, the store checks membership again when appending
	if !conversation.IsParticipant(cmd.SenderID) {
		return nil, fmt.Errorf("%w: sender %s is not in conversation %s", errors.ErrMembershipViolation, cmd.SenderID, conversation.ID())
	}
	if cmd.RepliedTo != nil {
		if _, ok := conversation.Message(*cmd.RepliedTo); !ok {
			return nil, fmt.Errorf("%w: replied-to message %s is not in this conversation", errors.ErrValidation, *cmd.RepliedTo)
		}
	}

	message, err := s.messages.CreateMessage(ctx, chat.MessageParams{
		SenderID:     cmd.SenderID,
		Text:         cmd.Text,
		ContentItems: cmd.ContentItems,
		ImageURLs:    cmd.ImageURLs,
		RepliedTo:    cmd.RepliedTo,
		SeenBy:       []uuid.UUID{cmd.SenderID},
	}, s.clock().UTC())
	if err != nil {
		return nil, err
	}

	if err := s.conversations.AppendMessage(ctx, conversation.ID(), message); err != nil {
		s.rollback(ctx, message.ID())
		return nil, err
	}

	s.notify("message_sent", s.notifier.NotifyMessageSent(ctx, message, conversation.ID()))
	return message, nil
}

func (s *ChatService) EditText(ctx context.Context, cmd chat.EditTextCommand) (chat.Message, error) {
	now := s.clock().UTC()
	return s.edit(ctx, cmd.ConversationID(), cmd.MessageID, cmd.EditorID, func(m chat.Message) error {
		return chat.SetText(m, cmd.Text, now)
	})
}

func (s *ChatService) AppendImage(ctx context.Context, cmd chat.AppendImageCommand) (chat.Message, error) {
	now := s.clock().UTC()
	return s.edit(ctx, cmd.ConversationID(), cmd.MessageID, cmd.EditorID, func(m chat.Message) error {
		image, ok := m.(*chat.ImageMessage)
		if !ok {
			return fmt.Errorf("%w: %s message does not hold images", errors.ErrValidation, m.Kind())
		}
		image.AppendImage(cmd.URL, now)
		return nil
	})
}

func (s *ChatService) AppendContentItem(ctx context.Context, cmd chat.AppendContentItemCommand) (chat.Message, error) {
	now := s.clock().UTC()
	return s.edit(ctx, cmd.ConversationID(), cmd.MessageID, cmd.EditorID, func(m chat.Message) error {
		content, ok := m.(*chat.ContentMessage)
		if !ok {
			return fmt.Errorf("%w: %s message does not hold content items", errors.ErrValidation, m.Kind())
		}
		content.AppendContentItem(cmd.ContentItem, now)
		return nil
	})
}

// MarkAsRead is idempotent: a reader already in the seen-by set changes
// nothing and notifies nobody.
func (s *ChatService) MarkAsRead(ctx context.Context, cmd chat.MarkAsReadCommand) (bool, error) {
	conversation, _, err := s.find(ctx, cmd.ConversationID(), cmd.MessageID)
	if err != nil {
		return false, err
	}
	if !conversation.IsParticipant(cmd.ReaderID) {
		return false, fmt.Errorf("%w: reader %s is not in conversation %s", errors.ErrMembershipViolation, cmd.ReaderID, conversation.ID())
	}
	message, decision, err := s.messages.MutateMessage(ctx, cmd.MessageID, func(current chat.Message) (chat.Message, contract.Mutation, error) {
		if !current.MarkSeenBy(cmd.ReaderID) {
			return current, contract.MutationNone, nil
		}
		return current, contract.MutationUpdate, nil
	})
	if err != nil {
		return false, err
	}
	if decision != contract.MutationUpdate {
		return false, nil
	}
	s.notify("message_marked_as_read", s.notifier.NotifyMessageMarkedAsRead(ctx, cmd.ReaderID, message.ID()))
	return true, nil
}

func (s *ChatService) DeleteMessage(ctx context.Context, cmd chat.DeleteMessageCommand) error {
	if _, _, err := s.find(ctx, cmd.ConversationID(), cmd.MessageID); err != nil {
		return err
	}
	_, _, err := s.messages.MutateMessage(ctx, cmd.MessageID, func(current chat.Message) (chat.Message, contract.Mutation, error) {
		if err := checkSender(current, cmd.RequesterID); err != nil {
			return nil, contract.MutationNone, err
		}
		return current, contract.MutationDelete, nil
	})
	if err != nil {
		return err
	}
	s.notify("message_deleted", s.notifier.NotifyMessageDeleted(ctx, cmd.MessageID))
	return nil
}

func (s *ChatService) find(ctx context.Context, conversationID, messageID uuid.UUID) (chat.Conversation, chat.Message, error) {
	conversation, err := s.conversations.FindByID(ctx, conversationID)
	if err != nil {
		return nil, nil, err
	}
	message, ok := conversation.Message(messageID)
	if !ok {
		return nil, nil, fmt.Errorf("%w: message %s in conversation %s", errors.ErrNotFound, messageID, conversationID)
	}
	return conversation, message, nil
}

// edit applies change to the stored message of the editor and notifies
// once the store committed it. change sees the message as stored at commit
// time, never the copy loaded with the conversation.
func (s *ChatService) edit(ctx context.Context, conversationID, messageID, editor uuid.UUID, change func(chat.Message) error) (chat.Message, error) {
	if _, _, err := s.find(ctx, conversationID, messageID); err != nil {
		return nil, err
	}
	message, _, err := s.messages.MutateMessage(ctx, messageID, func(current chat.Message) (chat.Message, contract.Mutation, error) {
		if err := checkSender(current, editor); err != nil {
			return nil, contract.MutationNone, err
		}
		if err := change(current); err != nil {
			return nil, contract.MutationNone, err
		}
		return current, contract.MutationUpdate, nil
	})
	if err != nil {
		return nil, err
	}
	s.notify("message_updated", s.notifier.NotifyMessageUpdated(ctx, message))
	return message, nil
}

// checkSender guards the messages only their sender may change.
func checkSender(m chat.Message, requester uuid.UUID) error {
	if m.SenderID() != requester {
		return fmt.Errorf("%w: %s did not send message %s", errors.ErrNotSender, requester, m.ID())
	}
	return nil
}

func (s *ChatService) rollback(ctx context.Context, messageID uuid.UUID) {
	if _, err := s.messages.DeleteMessage(ctx, messageID); err != nil {
		s.log.Error("Orphan message left in store", "message_id", messageID, "error", err)
	}
}

func (s *ChatService) notify(kind string, err error) {
	if err != nil {
		s.log.Warn("Notification failed", "kind", kind, "error", err)
	}
}
