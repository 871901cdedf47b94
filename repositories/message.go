package repositories

import (
	"chat-core/contract"
	"chat-core/domain/chat"
	"chat-core/errors"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type MessageRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMessageRepository(db *badger.DB, log *slog.Logger) *MessageRepository {
	return &MessageRepository{db: db, log: log}
}

// CreateMessage builds the message through the factory and persists it
// together with one index entry per referenced content item.
func (r *MessageRepository) CreateMessage(ctx context.Context, params chat.MessageParams, sentAt time.Time) (chat.Message, error) {
	m, err := chat.NewMessage(params, sentAt)
	if err != nil {
		return nil, err
	}
	err = update(ctx, r.db, func(txn *badger.Txn) error {
		found, err := exists(txn, messageKey(m.ID()))
		if err != nil {
			return err
		}
		if found {
			return errors.ErrAlreadyExists
		}
		return putMessage(txn, m)
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *MessageRepository) GetMessage(_ context.Context, id uuid.UUID) (chat.Message, error) {
	var m chat.Message
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		m, err = getMessage(txn, id)
		return err
	})
	return m, err
}

// UpdateMessage overwrites a stored message and reports false when it was
// never stored (or already deleted).
func (r *MessageRepository) UpdateMessage(ctx context.Context, message chat.Message) (bool, error) {
	updated := false
	err := update(ctx, r.db, func(txn *badger.Txn) error {
		updated = false
		previous, err := getMessage(txn, message.ID())
		if stderrors.Is(err, errors.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if err = dropContentIndex(txn, previous); err != nil {
			return err
		}
		updated = true
		return putMessage(txn, message)
	})
	return updated, err
}

// MutateMessage loads the message, hands it to mutate and applies the
// decision in the same transaction. A conflicting commit reruns mutate on
// the fresh message, so concurrent mutations never overwrite each other.
func (r *MessageRepository) MutateMessage(ctx context.Context, id uuid.UUID, mutate contract.MessageMutation) (chat.Message, contract.Mutation, error) {
	var (
		result   chat.Message
		decision contract.Mutation
	)
	err := update(ctx, r.db, func(txn *badger.Txn) error {
		current, err := getMessage(txn, id)
		if err != nil {
			return err
		}
		result, decision, err = mutate(current)
		if err != nil {
			return err
		}
		switch decision {
		case contract.MutationNone:
			return nil
		case contract.MutationUpdate:
			if result == nil || result.ID() != id {
				return fmt.Errorf("%w: mutation of %s must keep its id", errors.ErrValidation, id)
			}
			if err = dropContentIndex(txn, current); err != nil {
				return err
			}
			return putMessage(txn, result)
		case contract.MutationDelete:
			if err = dropContentIndex(txn, current); err != nil {
				return err
			}
			return txn.Delete([]byte(messageKey(id)))
		default:
			return fmt.Errorf("%w: mutation decision %d", errors.ErrValidation, decision)
		}
	})
	if err != nil {
		return nil, contract.MutationNone, err
	}
	if decision == contract.MutationDelete {
		r.log.Debug("Message deleted", "message_id", id)
	}
	return result, decision, nil
}

func (r *MessageRepository) DeleteMessage(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted := false
	err := update(ctx, r.db, func(txn *badger.Txn) error {
		deleted = false
		previous, err := getMessage(txn, id)
		if stderrors.Is(err, errors.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if err = dropContentIndex(txn, previous); err != nil {
			return err
		}
		deleted = true
		return txn.Delete([]byte(messageKey(id)))
	})
	if deleted {
		r.log.Debug("Message deleted", "message_id", id)
	}
	return deleted, err
}

// FindMessagesReferencingContent walks the content index, never the whole
// message space.
func (r *MessageRepository) FindMessagesReferencingContent(_ context.Context, contentItemID uuid.UUID) ([]chat.Message, error) {
	var messages []chat.Message
	err := r.db.View(func(txn *badger.Txn) error {
		ids, err := scanIDs(txn, contentPrefix+contentItemID.String()+":")
		if err != nil {
			return err
		}
		for _, id := range ids {
			m, err := getMessage(txn, id)
			if stderrors.Is(err, errors.ErrNotFound) {
				r.log.Warn("Dangling content index entry", "content_item_id", contentItemID, "message_id", id)
				continue
			}
			if err != nil {
				return err
			}
			messages = append(messages, m)
		}
		return nil
	})
	return messages, err
}

func getMessage(txn *badger.Txn, id uuid.UUID) (chat.Message, error) {
	var doc messageDocument
	if err := readDocument(txn, messageKey(id), &doc); err != nil {
		return nil, err
	}
	return toMessage(doc)
}

func putMessage(txn *badger.Txn, m chat.Message) error {
	doc, err := fromMessage(m)
	if err != nil {
		return err
	}
	if err = writeDocument(txn, messageKey(m.ID()), doc); err != nil {
		return err
	}
	if content, ok := m.(*chat.ContentMessage); ok {
		for _, item := range content.ContentItems() {
			if err = txn.Set([]byte(contentIndexKey(item, m.ID())), []byte{}); err != nil {
				return err
			}
		}
	}
	return nil
}

func dropContentIndex(txn *badger.Txn, m chat.Message) error {
	content, ok := m.(*chat.ContentMessage)
	if !ok {
		return nil
	}
	for _, item := range content.ContentItems() {
		if err := txn.Delete([]byte(contentIndexKey(item, m.ID()))); err != nil {
			return err
		}
	}
	return nil
}
