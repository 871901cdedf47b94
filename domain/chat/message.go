// Package chat contains the messaging core: messages, conversations,
// connections and groups. Every mutating call receives the current time
// explicitly, nothing in this package reads a clock.
package chat

import (
	"chat-core/errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Kind tags the closed set of message variants.
type Kind int

const (
	KindText Kind = iota + 1
	KindImage
	KindContent
	KindRemovedContent
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindImage:
		return "image"
	case KindContent:
		return "content"
	case KindRemovedContent:
		return "removed_content"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "text":
		return KindText, nil
	case "image":
		return KindImage, nil
	case "content":
		return KindContent, nil
	case "removed_content":
		return KindRemovedContent, nil
	default:
		return 0, fmt.Errorf("%w: %q", errors.ErrUnknownMessageKind, s)
	}
}

// Message is implemented by *TextMessage, *ImageMessage, *ContentMessage
// and *RemovedContentMessage only. Consumers switch on the concrete type and
// must treat any other type as errors.ErrUnknownMessageKind.
type Message interface {
	ID() uuid.UUID
	SenderID() uuid.UUID
	SentAt() time.Time
	UpdatedAt() *time.Time
	RepliedTo() *uuid.UUID
	SeenBy() []uuid.UUID
	HasBeenSeenBy(user uuid.UUID) bool
	MarkSeenBy(user uuid.UUID) bool
	Kind() Kind
	sealed()
}

// header holds what every message kind shares.
type header struct {
	id        uuid.UUID
	senderID  uuid.UUID
	sentAt    time.Time
	updatedAt *time.Time
	repliedTo *uuid.UUID
	seenBy    []uuid.UUID
}

func newHeader(id, sender uuid.UUID, sentAt time.Time, repliedTo *uuid.UUID, seenBy []uuid.UUID) header {
	h := header{id: id, senderID: sender, sentAt: sentAt}
	if repliedTo != nil {
		h.repliedTo = lo.ToPtr(*repliedTo)
	}
	for _, u := range seenBy {
		h.MarkSeenBy(u)
	}
	return h
}

func (h *header) ID() uuid.UUID       { return h.id }
func (h *header) SenderID() uuid.UUID { return h.senderID }
func (h *header) SentAt() time.Time   { return h.sentAt }

func (h *header) UpdatedAt() *time.Time {
	if h.updatedAt == nil {
		return nil
	}
	return lo.ToPtr(*h.updatedAt)
}

// RepliedTo is fixed at creation.
func (h *header) RepliedTo() *uuid.UUID {
	if h.repliedTo == nil {
		return nil
	}
	return lo.ToPtr(*h.repliedTo)
}

func (h *header) SeenBy() []uuid.UUID {
	return append([]uuid.UUID(nil), h.seenBy...)
}

func (h *header) HasBeenSeenBy(user uuid.UUID) bool {
	return lo.Contains(h.seenBy, user)
}

// MarkSeenBy records user in the seen-by set and reports whether it was
// absent. Seen state is metadata: updatedAt is left alone.
func (h *header) MarkSeenBy(user uuid.UUID) bool {
	if h.HasBeenSeenBy(user) {
		return false
	}
	h.seenBy = append(h.seenBy, user)
	return true
}

func (h *header) touch(now time.Time) {
	h.updatedAt = lo.ToPtr(now)
}

func (*header) sealed() {}

// TextMessage always carries non-blank text.
type TextMessage struct {
	header
	text string
}

func (m *TextMessage) Kind() Kind   { return KindText }
func (m *TextMessage) Text() string { return m.text }

// SetText replaces the text. Blank text is rejected and leaves the message untouched.
func (m *TextMessage) SetText(text string, now time.Time) error {
	if isBlank(text) {
		return errors.ErrEmptyText
	}
	m.text = text
	m.touch(now)
	return nil
}

// ImageMessage holds at least one image URL and an optional caption.
type ImageMessage struct {
	header
	imageURLs []string
	text      string
}

func (m *ImageMessage) Kind() Kind          { return KindImage }
func (m *ImageMessage) Text() string        { return m.text }
func (m *ImageMessage) ImageURLs() []string { return append([]string(nil), m.imageURLs...) }

func (m *ImageMessage) SetText(text string, now time.Time) {
	m.text = text
	m.touch(now)
}

func (m *ImageMessage) AppendImage(url string, now time.Time) {
	m.imageURLs = append(m.imageURLs, url)
	m.touch(now)
}

// ContentMessage references at least one shared content item.
type ContentMessage struct {
	header
	contentItems []uuid.UUID
	text         string
}

func (m *ContentMessage) Kind() Kind   { return KindContent }
func (m *ContentMessage) Text() string { return m.text }

func (m *ContentMessage) ContentItems() []uuid.UUID {
	return append([]uuid.UUID(nil), m.contentItems...)
}

func (m *ContentMessage) References(item uuid.UUID) bool {
	return lo.Contains(m.contentItems, item)
}

func (m *ContentMessage) SetText(text string, now time.Time) {
	m.text = text
	m.touch(now)
}

func (m *ContentMessage) AppendContentItem(item uuid.UUID, now time.Time) {
	m.contentItems = append(m.contentItems, item)
	m.touch(now)
}

// RemovedContentMessage is what is left of a ContentMessage whose items
// were all deleted but which still carries its own text.
type RemovedContentMessage struct {
	header
	text string
}

func (m *RemovedContentMessage) Kind() Kind   { return KindRemovedContent }
func (m *RemovedContentMessage) Text() string { return m.text }

func (m *RemovedContentMessage) SetText(text string, now time.Time) {
	m.text = text
	m.touch(now)
}

// TextOf returns the text carried by any message kind.
func TextOf(m Message) (string, error) {
	switch msg := m.(type) {
	case *TextMessage:
		return msg.text, nil
	case *ImageMessage:
		return msg.text, nil
	case *ContentMessage:
		return msg.text, nil
	case *RemovedContentMessage:
		return msg.text, nil
	default:
		return "", fmt.Errorf("%w: %T", errors.ErrUnknownMessageKind, m)
	}
}

// SetText dispatches a text edit to the right variant.
func SetText(m Message, text string, now time.Time) error {
	switch msg := m.(type) {
	case *TextMessage:
		return msg.SetText(text, now)
	case *ImageMessage:
		msg.SetText(text, now)
		return nil
	case *ContentMessage:
		msg.SetText(text, now)
		return nil
	case *RemovedContentMessage:
		msg.SetText(text, now)
		return nil
	default:
		return fmt.Errorf("%w: %T", errors.ErrUnknownMessageKind, m)
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
