// Package event defines what the messaging core announces once a write has
// been committed, and the signal it reacts to when shared content goes away.
package event

import (
	"chat-core/domain/chat"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	MessageSentType         Type = "MESSAGE_SENT"
	MessageUpdatedType      Type = "MESSAGE_UPDATED"
	MessageDeletedType      Type = "MESSAGE_DELETED"
	MessageMarkedAsReadType Type = "MESSAGE_MARKED_AS_READ"
	ContentDeletedType      Type = "CONTENT_DELETED"
)

type DomainEvent interface {
	Type() Type
	OccurredAt() time.Time
}

type MessageSent struct {
	ConversationID uuid.UUID
	Message        chat.Message
	At             time.Time
}

func (e MessageSent) Type() Type            { return MessageSentType }
func (e MessageSent) OccurredAt() time.Time { return e.At }

type MessageUpdated struct {
	Message chat.Message
	At      time.Time
}

func (e MessageUpdated) Type() Type            { return MessageUpdatedType }
func (e MessageUpdated) OccurredAt() time.Time { return e.At }

type MessageDeleted struct {
	MessageID uuid.UUID
	At        time.Time
}

func (e MessageDeleted) Type() Type            { return MessageDeletedType }
func (e MessageDeleted) OccurredAt() time.Time { return e.At }

type MessageMarkedAsRead struct {
	UserID    uuid.UUID
	MessageID uuid.UUID
	At        time.Time
}

func (e MessageMarkedAsRead) Type() Type            { return MessageMarkedAsReadType }
func (e MessageMarkedAsRead) OccurredAt() time.Time { return e.At }

// ContentDeleted is raised outside the core when a shared content item
// (a recipe for instance) is deleted.
type ContentDeleted struct {
	ContentItemID uuid.UUID
	At            time.Time
}

func (e ContentDeleted) Type() Type            { return ContentDeletedType }
func (e ContentDeleted) OccurredAt() time.Time { return e.At }
