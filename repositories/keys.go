package repositories

import (
	"chat-core/errors"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// Key layout, one BadgerDB shared by every repository:
//
//	msg:{message}                      message document
//	content:{item}:{message}           message references content item
//	conv:{conversation}                conversation document, ordered message ids
//	conv-connection:{connection}       conversation id of a connection
//	conv-group:{group}                 conversation id of a group
//	conn:{connection}                  connection document
//	conn-user:{account}:{connection}   account is part of connection
//	group:{group}                      group document
//	group-user:{account}:{group}       account is member of group
//	account:{account}                  account relation sets
const (
	messagePrefix                = "msg:"
	contentPrefix                = "content:"
	conversationPrefix           = "conv:"
	conversationConnectionPrefix = "conv-connection:"
	conversationGroupPrefix      = "conv-group:"
	connectionPrefix             = "conn:"
	connectionUserPrefix         = "conn-user:"
	groupPrefix                  = "group:"
	groupUserPrefix              = "group-user:"
	accountPrefix                = "account:"
)

// Prefixes lists every document prefix, used by the inspector.
var Prefixes = []string{
	messagePrefix, contentPrefix, conversationPrefix, conversationConnectionPrefix,
	conversationGroupPrefix, connectionPrefix, connectionUserPrefix, groupPrefix,
	groupUserPrefix, accountPrefix,
}

func messageKey(id uuid.UUID) string      { return messagePrefix + id.String() }
func conversationKey(id uuid.UUID) string { return conversationPrefix + id.String() }
func connectionKey(id uuid.UUID) string   { return connectionPrefix + id.String() }
func groupKey(id uuid.UUID) string        { return groupPrefix + id.String() }
func accountKey(id uuid.UUID) string      { return accountPrefix + id.String() }

func contentIndexKey(item, message uuid.UUID) string {
	return fmt.Sprintf("%s%s:%s", contentPrefix, item, message)
}

func userIndexKey(prefix string, account, owner uuid.UUID) string {
	return fmt.Sprintf("%s%s:%s", prefix, account, owner)
}

func notFound(key string, err error) error {
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("%w: %s", errors.ErrNotFound, key)
	}
	return err
}

// scanIDs returns the trailing uuid of every key under prefix.
func scanIDs(txn *badger.Txn, prefix string) ([]uuid.UUID, error) {
	options := badger.DefaultIteratorOptions
	options.PrefetchValues = false
	it := txn.NewIterator(options)
	defer it.Close()

	var ids []uuid.UUID
	p := []byte(prefix)
	for it.Seek(p); it.ValidForPrefix(p); it.Next() {
		key := string(it.Item().Key())
		id, err := uuid.Parse(key[strings.LastIndex(key, ":")+1:])
		if err != nil {
			return nil, fmt.Errorf("malformed key %q: %w", key, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// readID loads an index entry whose value is a single uuid.
func readID(txn *badger.Txn, key string) (uuid.UUID, error) {
	item, err := txn.Get([]byte(key))
	if err != nil {
		return uuid.Nil, notFound(key, err)
	}
	var id uuid.UUID
	err = item.Value(func(val []byte) error {
		parsed, err := uuid.ParseBytes(val)
		id = parsed
		return err
	})
	return id, err
}
