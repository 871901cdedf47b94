package repositories

import (
	"chat-core/domain/account"
	"chat-core/domain/chat"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"
)

// Every value stored in Badger is a BSON document. Identifiers are kept as
// strings and dates as unix nanoseconds so nothing is lost on the way back.

type messageDocument struct {
	ID           string   `bson:"_id"`
	Kind         string   `bson:"kind"`
	SenderID     string   `bson:"sender_id"`
	SentAt       int64    `bson:"sent_at"`
	UpdatedAt    *int64   `bson:"updated_at,omitempty"`
	RepliedTo    *string  `bson:"replied_to,omitempty"`
	SeenBy       []string `bson:"seen_by"`
	Text         string   `bson:"text,omitempty"`
	ImageURLs    []string `bson:"image_urls,omitempty"`
	ContentItems []string `bson:"content_items,omitempty"`
}

type conversationDocument struct {
	ID           string   `bson:"_id"`
	Type         string   `bson:"type"`
	ConnectionID string   `bson:"connection_id,omitempty"`
	GroupID      string   `bson:"group_id,omitempty"`
	MessageIDs   []string `bson:"message_ids"`
}

type connectionDocument struct {
	ID       string `bson:"_id"`
	Account1 string `bson:"account1"`
	Account2 string `bson:"account2"`
	Status   int    `bson:"status"`
}

type groupDocument struct {
	ID          string   `bson:"_id"`
	Name        string   `bson:"name"`
	Description string   `bson:"description,omitempty"`
	Members     []string `bson:"members"`
}

type accountDocument struct {
	ID                    string   `bson:"_id"`
	PinnedConversationIDs []string `bson:"pinned_conversation_ids"`
	BlockedConnectionIDs  []string `bson:"blocked_connection_ids"`
}

func toStrings(ids []uuid.UUID) []string {
	return lo.Map(ids, func(id uuid.UUID, _ int) string { return id.String() })
}

func toUUIDs(values []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(values))
	for _, v := range values {
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func fromMessage(m chat.Message) (messageDocument, error) {
	s, err := chat.Snap(m)
	if err != nil {
		return messageDocument{}, err
	}
	doc := messageDocument{
		ID:           s.ID.String(),
		Kind:         s.Kind.String(),
		SenderID:     s.SenderID.String(),
		SentAt:       s.SentAt.UnixNano(),
		SeenBy:       toStrings(s.SeenBy),
		Text:         s.Text,
		ImageURLs:    s.ImageURLs,
		ContentItems: toStrings(s.ContentItems),
	}
	if s.UpdatedAt != nil {
		doc.UpdatedAt = lo.ToPtr(s.UpdatedAt.UnixNano())
	}
	if s.RepliedTo != nil {
		doc.RepliedTo = lo.ToPtr(s.RepliedTo.String())
	}
	return doc, nil
}

func toMessage(doc messageDocument) (chat.Message, error) {
	kind, err := chat.ParseKind(doc.Kind)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, err
	}
	sender, err := uuid.Parse(doc.SenderID)
	if err != nil {
		return nil, err
	}
	seenBy, err := toUUIDs(doc.SeenBy)
	if err != nil {
		return nil, err
	}
	items, err := toUUIDs(doc.ContentItems)
	if err != nil {
		return nil, err
	}
	s := chat.Snapshot{
		Kind:         kind,
		ID:           id,
		SenderID:     sender,
		SentAt:       time.Unix(0, doc.SentAt).UTC(),
		SeenBy:       seenBy,
		Text:         doc.Text,
		ImageURLs:    doc.ImageURLs,
		ContentItems: items,
	}
	if doc.UpdatedAt != nil {
		s.UpdatedAt = lo.ToPtr(time.Unix(0, *doc.UpdatedAt).UTC())
	}
	if doc.RepliedTo != nil {
		repliedTo, err := uuid.Parse(*doc.RepliedTo)
		if err != nil {
			return nil, err
		}
		s.RepliedTo = &repliedTo
	}
	return chat.Restore(s)
}

func fromConnection(c *chat.Connection) connectionDocument {
	return connectionDocument{
		ID:       c.ID.String(),
		Account1: c.Account1.String(),
		Account2: c.Account2.String(),
		Status:   int(c.Status),
	}
}

func toConnection(doc connectionDocument) (*chat.Connection, error) {
	ids, err := toUUIDs([]string{doc.ID, doc.Account1, doc.Account2})
	if err != nil {
		return nil, err
	}
	return chat.NewConnection(ids[0], ids[1], ids[2], chat.ConnectionStatus(doc.Status))
}

func fromGroup(g *chat.Group) groupDocument {
	return groupDocument{
		ID:          g.ID.String(),
		Name:        g.Name,
		Description: g.Description,
		Members:     toStrings(g.Members()),
	}
}

func toGroup(doc groupDocument) (*chat.Group, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, err
	}
	members, err := toUUIDs(doc.Members)
	if err != nil {
		return nil, err
	}
	return chat.NewGroup(id, doc.Name, doc.Description, members...)
}

func fromAccount(a *account.UserAccount) accountDocument {
	return accountDocument{
		ID:                    a.ID.String(),
		PinnedConversationIDs: toStrings(a.PinnedConversationIDs()),
		BlockedConnectionIDs:  toStrings(a.BlockedConnectionIDs()),
	}
}

func toAccount(doc accountDocument) (*account.UserAccount, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, err
	}
	pinned, err := toUUIDs(doc.PinnedConversationIDs)
	if err != nil {
		return nil, err
	}
	blocked, err := toUUIDs(doc.BlockedConnectionIDs)
	if err != nil {
		return nil, err
	}
	return account.NewUserAccount(id, pinned, blocked), nil
}

// readDocument loads key into out, wrapping a missing key as errors.ErrNotFound.
func readDocument(txn *badger.Txn, key string, out any) error {
	item, err := txn.Get([]byte(key))
	if err != nil {
		return notFound(key, err)
	}
	return item.Value(func(val []byte) error {
		if err := bson.Unmarshal(val, out); err != nil {
			return fmt.Errorf("decode %s: %w", key, err)
		}
		return nil
	})
}

func writeDocument(txn *badger.Txn, key string, doc any) error {
	data, err := bson.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return txn.Set([]byte(key), data)
}

func exists(txn *badger.Txn, key string) (bool, error) {
	_, err := txn.Get([]byte(key))
	switch {
	case err == nil:
		return true, nil
	case stderrors.Is(err, badger.ErrKeyNotFound):
		return false, nil
	default:
		return false, err
	}
}
