package repositories

import (
	"chat-core/domain/chat"
	"chat-core/errors"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// ConversationRepository stores the ordered message ids of a conversation.
// Messages themselves live under msg: and are resolved on load; ids whose
// message has been deleted are skipped.
type ConversationRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewConversationRepository(db *badger.DB, log *slog.Logger) *ConversationRepository {
	return &ConversationRepository{db: db, log: log}
}

// CreateConnectionConversation requires the connection to be stored and
// allows a single conversation per connection.
func (r *ConversationRepository) CreateConnectionConversation(ctx context.Context, connection *chat.Connection) (*chat.ConnectionConversation, error) {
	conversation, err := chat.NewConnectionConversation(uuid.Nil, connection)
	if err != nil {
		return nil, err
	}
	err = update(ctx, r.db, func(txn *badger.Txn) error {
		if _, err := getConnection(txn, connection.ID); err != nil {
			return err
		}
		return r.create(txn, conversation, conversationConnectionPrefix+connection.ID.String(), conversationDocument{
			ID:           conversation.ID().String(),
			Type:         string(chat.ConversationConnection),
			ConnectionID: connection.ID.String(),
			MessageIDs:   []string{},
		})
	})
	if err != nil {
		return nil, err
	}
	return conversation, nil
}

func (r *ConversationRepository) CreateGroupConversation(ctx context.Context, group *chat.Group) (*chat.GroupConversation, error) {
	conversation, err := chat.NewGroupConversation(uuid.Nil, group)
	if err != nil {
		return nil, err
	}
	err = update(ctx, r.db, func(txn *badger.Txn) error {
		if _, err := getGroup(txn, group.ID); err != nil {
			return err
		}
		return r.create(txn, conversation, conversationGroupPrefix+group.ID.String(), conversationDocument{
			ID:         conversation.ID().String(),
			Type:       string(chat.ConversationGroup),
			GroupID:    group.ID.String(),
			MessageIDs: []string{},
		})
	})
	if err != nil {
		return nil, err
	}
	return conversation, nil
}

func (r *ConversationRepository) create(txn *badger.Txn, conversation chat.Conversation, ownerKey string, doc conversationDocument) error {
	found, err := exists(txn, ownerKey)
	if err != nil {
		return err
	}
	if found {
		return fmt.Errorf("%w: conversation for %s", errors.ErrAlreadyExists, ownerKey)
	}
	if err = txn.Set([]byte(ownerKey), []byte(conversation.ID().String())); err != nil {
		return err
	}
	return writeDocument(txn, conversationKey(conversation.ID()), doc)
}

func (r *ConversationRepository) FindByID(_ context.Context, id uuid.UUID) (chat.Conversation, error) {
	var c chat.Conversation
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		c, err = r.load(txn, id)
		return err
	})
	return c, err
}

func (r *ConversationRepository) FindByConnection(_ context.Context, connectionID uuid.UUID) (chat.Conversation, error) {
	return r.findByOwner(conversationConnectionPrefix + connectionID.String())
}

func (r *ConversationRepository) FindByGroup(_ context.Context, groupID uuid.UUID) (chat.Conversation, error) {
	return r.findByOwner(conversationGroupPrefix + groupID.String())
}

func (r *ConversationRepository) findByOwner(ownerKey string) (chat.Conversation, error) {
	var c chat.Conversation
	err := r.db.View(func(txn *badger.Txn) error {
		id, err := readID(txn, ownerKey)
		if err != nil {
			return err
		}
		c, err = r.load(txn, id)
		return err
	})
	return c, err
}

// FindAllForUser returns the conversations of every connection the user is
// part of, then of every group the user currently belongs to. Connections
// or groups without a conversation are skipped.
func (r *ConversationRepository) FindAllForUser(_ context.Context, user uuid.UUID) ([]chat.Conversation, error) {
	var conversations []chat.Conversation
	err := r.db.View(func(txn *badger.Txn) error {
		connectionIDs, err := scanIDs(txn, connectionUserPrefix+user.String()+":")
		if err != nil {
			return err
		}
		groupIDs, err := scanIDs(txn, groupUserPrefix+user.String()+":")
		if err != nil {
			return err
		}
		ownerKeys := append(
			lo.Map(connectionIDs, func(id uuid.UUID, _ int) string { return conversationConnectionPrefix + id.String() }),
			lo.Map(groupIDs, func(id uuid.UUID, _ int) string { return conversationGroupPrefix + id.String() })...,
		)
		for _, key := range ownerKeys {
			id, err := readID(txn, key)
			if stderrors.Is(err, errors.ErrNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			c, err := r.load(txn, id)
			if err != nil {
				return err
			}
			conversations = append(conversations, c)
		}
		return nil
	})
	return conversations, err
}

// UpdateConversation persists the message order of c. The messages are
// expected to be stored already through the message repository.
func (r *ConversationRepository) UpdateConversation(ctx context.Context, c chat.Conversation) (bool, error) {
	updated := false
	err := update(ctx, r.db, func(txn *badger.Txn) error {
		updated = false
		var doc conversationDocument
		err := readDocument(txn, conversationKey(c.ID()), &doc)
		if stderrors.Is(err, errors.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		doc.MessageIDs = lo.Map(c.Messages(), func(m chat.Message, _ int) string { return m.ID().String() })
		updated = true
		return writeDocument(txn, conversationKey(c.ID()), doc)
	})
	return updated, err
}

// AppendMessage adds message at the end of the stored order. Only the
// conversation document and its connection or group are read, so a
// concurrent edit of an existing message does not collide with it.
func (r *ConversationRepository) AppendMessage(ctx context.Context, conversationID uuid.UUID, message chat.Message) error {
	return update(ctx, r.db, func(txn *badger.Txn) error {
		var doc conversationDocument
		if err := readDocument(txn, conversationKey(conversationID), &doc); err != nil {
			return err
		}
		// Participants as of this transaction, without the message log
		participants, err := r.build(txn, conversationID, doc, nil)
		if err != nil {
			return err
		}
		if err = participants.SendMessage(message); err != nil {
			return err
		}
		doc.MessageIDs = append(doc.MessageIDs, message.ID().String())
		return writeDocument(txn, conversationKey(conversationID), doc)
	})
}

func (r *ConversationRepository) load(txn *badger.Txn, id uuid.UUID) (chat.Conversation, error) {
	var doc conversationDocument
	if err := readDocument(txn, conversationKey(id), &doc); err != nil {
		return nil, err
	}
	messageIDs, err := toUUIDs(doc.MessageIDs)
	if err != nil {
		return nil, err
	}
	messages := make([]chat.Message, 0, len(messageIDs))
	for _, messageID := range messageIDs {
		m, err := getMessage(txn, messageID)
		if stderrors.Is(err, errors.ErrNotFound) {
			r.log.Debug("Skipping deleted message", "conversation_id", id, "message_id", messageID)
			continue
		}
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return r.build(txn, id, doc, messages)
}

func (r *ConversationRepository) build(txn *badger.Txn, id uuid.UUID, doc conversationDocument, messages []chat.Message) (chat.Conversation, error) {
	switch chat.ConversationType(doc.Type) {
	case chat.ConversationConnection:
		connectionID, err := uuid.Parse(doc.ConnectionID)
		if err != nil {
			return nil, err
		}
		connection, err := getConnection(txn, connectionID)
		if err != nil {
			return nil, err
		}
		return chat.NewConnectionConversation(id, connection, messages...)
	case chat.ConversationGroup:
		groupID, err := uuid.Parse(doc.GroupID)
		if err != nil {
			return nil, err
		}
		group, err := getGroup(txn, groupID)
		if err != nil {
			return nil, err
		}
		return chat.NewGroupConversation(id, group, messages...)
	default:
		return nil, fmt.Errorf("%w: conversation type %q", errors.ErrInvalidPayload, doc.Type)
	}
}
