package repositories

import (
	"chat-core/domain/chat"
	"chat-core/errors"
	"context"
	stderrors "errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type ConnectionRepository struct {
	db *badger.DB
}

func NewConnectionRepository(db *badger.DB) *ConnectionRepository {
	return &ConnectionRepository{db: db}
}

func (r *ConnectionRepository) CreateConnection(ctx context.Context, connection *chat.Connection) error {
	return update(ctx, r.db, func(txn *badger.Txn) error {
		found, err := exists(txn, connectionKey(connection.ID))
		if err != nil {
			return err
		}
		if found {
			return fmt.Errorf("%w: connection %s", errors.ErrAlreadyExists, connection.ID)
		}
		if err = writeDocument(txn, connectionKey(connection.ID), fromConnection(connection)); err != nil {
			return err
		}
		for _, a := range connection.Accounts() {
			if err = txn.Set([]byte(userIndexKey(connectionUserPrefix, a, connection.ID)), []byte{}); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ConnectionRepository) GetConnection(_ context.Context, id uuid.UUID) (*chat.Connection, error) {
	var c *chat.Connection
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		c, err = getConnection(txn, id)
		return err
	})
	return c, err
}

func (r *ConnectionRepository) FindConnectionsForUser(_ context.Context, user uuid.UUID) ([]*chat.Connection, error) {
	var connections []*chat.Connection
	err := r.db.View(func(txn *badger.Txn) error {
		ids, err := scanIDs(txn, connectionUserPrefix+user.String()+":")
		if err != nil {
			return err
		}
		for _, id := range ids {
			c, err := getConnection(txn, id)
			if err != nil {
				return err
			}
			connections = append(connections, c)
		}
		return nil
	})
	return connections, err
}

// UpdateConnection persists the status. The account pair never changes.
func (r *ConnectionRepository) UpdateConnection(ctx context.Context, connection *chat.Connection) (bool, error) {
	updated := false
	err := update(ctx, r.db, func(txn *badger.Txn) error {
		updated = false
		found, err := exists(txn, connectionKey(connection.ID))
		if err != nil || !found {
			return err
		}
		updated = true
		return writeDocument(txn, connectionKey(connection.ID), fromConnection(connection))
	})
	return updated, err
}

func (r *ConnectionRepository) DeleteConnection(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted := false
	err := update(ctx, r.db, func(txn *badger.Txn) error {
		deleted = false
		c, err := getConnection(txn, id)
		if stderrors.Is(err, errors.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		for _, a := range c.Accounts() {
			if err = txn.Delete([]byte(userIndexKey(connectionUserPrefix, a, id))); err != nil {
				return err
			}
		}
		deleted = true
		return txn.Delete([]byte(connectionKey(id)))
	})
	return deleted, err
}

func getConnection(txn *badger.Txn, id uuid.UUID) (*chat.Connection, error) {
	var doc connectionDocument
	if err := readDocument(txn, connectionKey(id), &doc); err != nil {
		return nil, err
	}
	return toConnection(doc)
}
