package chat

import (
	"chat-core/errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MessageParams is what a caller knows when creating a message. The
// variant is chosen from which fields are filled.
type MessageParams struct {
	ID           uuid.UUID
	SenderID     uuid.UUID
	Text         string
	ContentItems []uuid.UUID
	ImageURLs    []string
	RepliedTo    *uuid.UUID
	SeenBy       []uuid.UUID
}

// NewMessage builds a fresh message sent at now:
//   - content items present: ContentMessage, text optional
//   - image URLs present: ImageMessage, text optional
//   - otherwise: TextMessage, text required
func NewMessage(p MessageParams, now time.Time) (Message, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.SenderID == uuid.Nil {
		return nil, fmt.Errorf("%w: sender is required", errors.ErrValidation)
	}
	h := newHeader(p.ID, p.SenderID, now, p.RepliedTo, p.SeenBy)

	switch {
	case len(p.ContentItems) > 0 && len(p.ImageURLs) > 0:
		return nil, errors.ErrMixedAttachments
	case len(p.ContentItems) > 0:
		return &ContentMessage{
			header:       h,
			contentItems: append([]uuid.UUID(nil), p.ContentItems...),
			text:         p.Text,
		}, nil
	case len(p.ImageURLs) > 0:
		return &ImageMessage{
			header:    h,
			imageURLs: append([]string(nil), p.ImageURLs...),
			text:      p.Text,
		}, nil
	case isBlank(p.Text):
		return nil, errors.ErrEmptyText
	default:
		return &TextMessage{header: h, text: p.Text}, nil
	}
}

// Snapshot is the flat form of any message, used by stores and mappers.
type Snapshot struct {
	Kind         Kind
	ID           uuid.UUID
	SenderID     uuid.UUID
	SentAt       time.Time
	UpdatedAt    *time.Time
	RepliedTo    *uuid.UUID
	SeenBy       []uuid.UUID
	Text         string
	ImageURLs    []string
	ContentItems []uuid.UUID
}

// Snap flattens m.
func Snap(m Message) (Snapshot, error) {
	s := Snapshot{
		Kind:      m.Kind(),
		ID:        m.ID(),
		SenderID:  m.SenderID(),
		SentAt:    m.SentAt(),
		UpdatedAt: m.UpdatedAt(),
		RepliedTo: m.RepliedTo(),
		SeenBy:    m.SeenBy(),
	}
	switch msg := m.(type) {
	case *TextMessage:
		s.Text = msg.text
	case *ImageMessage:
		s.Text = msg.text
		s.ImageURLs = msg.ImageURLs()
	case *ContentMessage:
		s.Text = msg.text
		s.ContentItems = msg.ContentItems()
	case *RemovedContentMessage:
		s.Text = msg.text
	default:
		return Snapshot{}, fmt.Errorf("%w: %T", errors.ErrUnknownMessageKind, m)
	}
	return s, nil
}

// Restore rebuilds a message from a snapshot without stamping any date.
// The construction invariants still hold: a restored Image or Content
// message must carry at least one element, a restored Text message
// non-blank text.
func Restore(s Snapshot) (Message, error) {
	h := newHeader(s.ID, s.SenderID, s.SentAt, s.RepliedTo, s.SeenBy)
	if s.UpdatedAt != nil {
		h.touch(*s.UpdatedAt)
	}
	switch s.Kind {
	case KindText:
		if isBlank(s.Text) {
			return nil, errors.ErrEmptyText
		}
		return &TextMessage{header: h, text: s.Text}, nil
	case KindImage:
		if len(s.ImageURLs) == 0 {
			return nil, fmt.Errorf("%w: image message %s without images", errors.ErrValidation, s.ID)
		}
		return &ImageMessage{header: h, imageURLs: append([]string(nil), s.ImageURLs...), text: s.Text}, nil
	case KindContent:
		if len(s.ContentItems) == 0 {
			return nil, fmt.Errorf("%w: content message %s without items", errors.ErrValidation, s.ID)
		}
		return &ContentMessage{header: h, contentItems: append([]uuid.UUID(nil), s.ContentItems...), text: s.Text}, nil
	case KindRemovedContent:
		return &RemovedContentMessage{header: h, text: s.Text}, nil
	default:
		return nil, fmt.Errorf("%w: %d", errors.ErrUnknownMessageKind, s.Kind)
	}
}
