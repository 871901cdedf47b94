package chat

import (
	"chat-core/errors"
	"fmt"

	"github.com/google/uuid"
)

type ConversationType string

const (
	ConversationConnection ConversationType = "connection"
	ConversationGroup      ConversationType = "group"
)

// Conversation is an append-only message log bound to a Connection or a
// Group. Only *ConnectionConversation and *GroupConversation implement it.
type Conversation interface {
	ID() uuid.UUID
	Type() ConversationType
	Participants() []uuid.UUID
	IsParticipant(account uuid.UUID) bool
	SendMessage(m Message) error
	Messages() []Message
	Message(id uuid.UUID) (Message, bool)
	ComputeSummary(viewer uuid.UUID) Summary
	sealedConversation()
}

// messageLog is the single owned sequence behind a conversation.
type messageLog struct {
	messages []Message
	byID     map[uuid.UUID]int
}

func newMessageLog(messages []Message) messageLog {
	l := messageLog{byID: make(map[uuid.UUID]int, len(messages))}
	for _, m := range messages {
		l.append(m)
	}
	return l
}

func (l *messageLog) append(m Message) {
	if _, ok := l.byID[m.ID()]; ok {
		return
	}
	l.byID[m.ID()] = len(l.messages)
	l.messages = append(l.messages, m)
}

// Messages returns the log in append order. The slice is a copy, the
// messages are the live instances.
func (l *messageLog) Messages() []Message {
	return append([]Message(nil), l.messages...)
}

func (l *messageLog) Message(id uuid.UUID) (Message, bool) {
	i, ok := l.byID[id]
	if !ok {
		return nil, false
	}
	return l.messages[i], true
}

func (l *messageLog) ComputeSummary(viewer uuid.UUID) Summary {
	return summarize(l.messages, viewer)
}

func (*messageLog) sealedConversation() {}

func checkSender(c Conversation, m Message) error {
	if m == nil {
		return fmt.Errorf("%w: nil message", errors.ErrValidation)
	}
	if !c.IsParticipant(m.SenderID()) {
		return fmt.Errorf("%w: %s in conversation %s", errors.ErrMembershipViolation, m.SenderID(), c.ID())
	}
	return nil
}

// ConnectionConversation is the 1:1 conversation of a Connection.
type ConnectionConversation struct {
	messageLog
	id         uuid.UUID
	Connection *Connection
}

func NewConnectionConversation(id uuid.UUID, connection *Connection, messages ...Message) (*ConnectionConversation, error) {
	if connection == nil {
		return nil, fmt.Errorf("%w: connection is required", errors.ErrValidation)
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &ConnectionConversation{messageLog: newMessageLog(messages), id: id, Connection: connection}, nil
}

func (c *ConnectionConversation) ID() uuid.UUID          { return c.id }
func (c *ConnectionConversation) Type() ConversationType { return ConversationConnection }

func (c *ConnectionConversation) Participants() []uuid.UUID {
	return c.Connection.Accounts()
}

func (c *ConnectionConversation) IsParticipant(account uuid.UUID) bool {
	return c.Connection.Involves(account)
}

// SendMessage appends m if its sender is one of the two connected accounts.
func (c *ConnectionConversation) SendMessage(m Message) error {
	if err := checkSender(c, m); err != nil {
		return err
	}
	c.append(m)
	return nil
}

// GroupConversation follows the current membership of its Group.
type GroupConversation struct {
	messageLog
	id    uuid.UUID
	Group *Group
}

func NewGroupConversation(id uuid.UUID, group *Group, messages ...Message) (*GroupConversation, error) {
	if group == nil {
		return nil, fmt.Errorf("%w: group is required", errors.ErrValidation)
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &GroupConversation{messageLog: newMessageLog(messages), id: id, Group: group}, nil
}

func (c *GroupConversation) ID() uuid.UUID          { return c.id }
func (c *GroupConversation) Type() ConversationType { return ConversationGroup }

func (c *GroupConversation) Participants() []uuid.UUID {
	return c.Group.Members()
}

func (c *GroupConversation) IsParticipant(account uuid.UUID) bool {
	return c.Group.HasMember(account)
}

// SendMessage appends m if its sender is a member of the group right now.
// Messages of former members stay in the log.
func (c *GroupConversation) SendMessage(m Message) error {
	if err := checkSender(c, m); err != nil {
		return err
	}
	c.append(m)
	return nil
}
