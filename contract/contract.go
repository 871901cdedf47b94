//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-core/domain/account"
	"chat-core/domain/chat"
	"chat-core/domain/event"
	"chat-core/projection"
	"context"
	"reflect"
	"time"

	"github.com/google/uuid"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink is one connected client, or anything standing for one.
type EventSink interface {
	Consume(ctx context.Context, e projection.Envelope) error
}

// IRegistry tracks the currently connected clients.
type IRegistry interface {
	Subscribe(clientID string, sink EventSink)
	Unsubscribe(clientID string)
	Sinks() []EventSink
	Count() int
}

// Broadcaster reaches every currently connected client, one operation per
// event kind. It returns the caller's context error when the broadcast is
// cancelled.
type Broadcaster interface {
	BroadcastMessageSent(ctx context.Context, e event.MessageSent) error
	BroadcastMessageUpdated(ctx context.Context, e event.MessageUpdated) error
	BroadcastMessageDeleted(ctx context.Context, e event.MessageDeleted) error
	BroadcastMessageMarkedAsRead(ctx context.Context, e event.MessageMarkedAsRead) error
}

// Notifier is what command handlers call once a write is committed.
type Notifier interface {
	NotifyMessageSent(ctx context.Context, message chat.Message, conversationID uuid.UUID) error
	NotifyMessageUpdated(ctx context.Context, message chat.Message) error
	NotifyMessageDeleted(ctx context.Context, messageID uuid.UUID) error
	NotifyMessageMarkedAsRead(ctx context.Context, userID, messageID uuid.UUID) error
}

// Mutation is what a MessageMutation decided to do with the stored message.
type Mutation int

const (
	MutationNone Mutation = iota
	MutationUpdate
	MutationDelete
)

// MessageMutation receives the message as currently stored and returns the
// message to write back with the decision. It runs again on a freshly loaded
// message when a concurrent writer got there first, so it must not have
// side effects.
type MessageMutation func(current chat.Message) (chat.Message, Mutation, error)

type IMessageStore interface {
	CreateMessage(ctx context.Context, params chat.MessageParams, sentAt time.Time) (chat.Message, error)
	GetMessage(ctx context.Context, id uuid.UUID) (chat.Message, error)
	UpdateMessage(ctx context.Context, message chat.Message) (bool, error)
	// MutateMessage reads, mutates and writes back a message in one
	// transaction. It returns the committed message and decision.
	MutateMessage(ctx context.Context, id uuid.UUID, mutate MessageMutation) (chat.Message, Mutation, error)
	DeleteMessage(ctx context.Context, id uuid.UUID) (bool, error)
	FindMessagesReferencingContent(ctx context.Context, contentItemID uuid.UUID) ([]chat.Message, error)
}

type IConversationStore interface {
	CreateConnectionConversation(ctx context.Context, connection *chat.Connection) (*chat.ConnectionConversation, error)
	CreateGroupConversation(ctx context.Context, group *chat.Group) (*chat.GroupConversation, error)
	FindByID(ctx context.Context, id uuid.UUID) (chat.Conversation, error)
	FindByConnection(ctx context.Context, connectionID uuid.UUID) (chat.Conversation, error)
	FindByGroup(ctx context.Context, groupID uuid.UUID) (chat.Conversation, error)
	FindAllForUser(ctx context.Context, user uuid.UUID) ([]chat.Conversation, error)
	UpdateConversation(ctx context.Context, c chat.Conversation) (bool, error)
	// AppendMessage appends an already stored message to the conversation,
	// checking its sender against the participants at commit time.
	AppendMessage(ctx context.Context, conversationID uuid.UUID, message chat.Message) error
}

type IConnectionStore interface {
	CreateConnection(ctx context.Context, connection *chat.Connection) error
	GetConnection(ctx context.Context, id uuid.UUID) (*chat.Connection, error)
	FindConnectionsForUser(ctx context.Context, user uuid.UUID) ([]*chat.Connection, error)
	UpdateConnection(ctx context.Context, connection *chat.Connection) (bool, error)
	DeleteConnection(ctx context.Context, id uuid.UUID) (bool, error)
}

type IGroupStore interface {
	CreateGroup(ctx context.Context, group *chat.Group) error
	GetGroup(ctx context.Context, id uuid.UUID) (*chat.Group, error)
	FindGroupsForUser(ctx context.Context, user uuid.UUID) ([]*chat.Group, error)
	UpdateGroup(ctx context.Context, group *chat.Group) (bool, error)
	// ChangeGroup runs change on the stored group and writes it back in the
	// same transaction when change reports a difference.
	ChangeGroup(ctx context.Context, id uuid.UUID, change func(group *chat.Group) (bool, error)) (bool, error)
	DeleteGroup(ctx context.Context, id uuid.UUID) (bool, error)
}

// IAccountStore persists the relation sets of an account. An account that
// never stored anything comes back empty rather than missing.
type IAccountStore interface {
	GetAccount(ctx context.Context, id uuid.UUID) (*account.UserAccount, error)
	SaveAccount(ctx context.Context, userAccount *account.UserAccount) error
	// ChangeAccount runs change on the stored relation sets and writes them
	// back in the same transaction when change reports a difference.
	ChangeAccount(ctx context.Context, id uuid.UUID, change func(userAccount *account.UserAccount) bool) (bool, error)
}
