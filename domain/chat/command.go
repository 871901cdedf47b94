package chat

import (
	"github.com/google/uuid"
)

// Command is implemented by every command addressed to a conversation.
type Command interface {
	ConversationID() uuid.UUID
}

type SendMessageCommand struct {
	Conversation uuid.UUID
	SenderID     uuid.UUID
	Text         string
	ContentItems []uuid.UUID
	ImageURLs    []string
	RepliedTo    *uuid.UUID
}

func (c SendMessageCommand) ConversationID() uuid.UUID { return c.Conversation }

type EditTextCommand struct {
	Conversation uuid.UUID
	MessageID    uuid.UUID
	EditorID     uuid.UUID
	Text         string
}

func (c EditTextCommand) ConversationID() uuid.UUID { return c.Conversation }

type AppendImageCommand struct {
	Conversation uuid.UUID
	MessageID    uuid.UUID
	EditorID     uuid.UUID
	URL          string
}

func (c AppendImageCommand) ConversationID() uuid.UUID { return c.Conversation }

type AppendContentItemCommand struct {
	Conversation uuid.UUID
	MessageID    uuid.UUID
	EditorID     uuid.UUID
	ContentItem  uuid.UUID
}

func (c AppendContentItemCommand) ConversationID() uuid.UUID { return c.Conversation }

type MarkAsReadCommand struct {
	Conversation uuid.UUID
	MessageID    uuid.UUID
	ReaderID     uuid.UUID
}

func (c MarkAsReadCommand) ConversationID() uuid.UUID { return c.Conversation }

type DeleteMessageCommand struct {
	Conversation uuid.UUID
	MessageID    uuid.UUID
	RequesterID  uuid.UUID
}

func (c DeleteMessageCommand) ConversationID() uuid.UUID { return c.Conversation }
