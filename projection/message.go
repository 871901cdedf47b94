// Package projection maps domain messages and conversations to the views
// and envelopes handed to connected clients.
package projection

import (
	"chat-core/domain/chat"
	"chat-core/errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type MessageView struct {
	ID           uuid.UUID   `json:"id"`
	Kind         string      `json:"kind"`
	SenderID     uuid.UUID   `json:"sender_id"`
	SentAt       time.Time   `json:"sent_at"`
	UpdatedAt    *time.Time  `json:"updated_at,omitempty"`
	RepliedTo    *uuid.UUID  `json:"replied_to,omitempty"`
	SeenBy       []uuid.UUID `json:"seen_by"`
	Text         string      `json:"text,omitempty"`
	ImageURLs    []string    `json:"image_urls,omitempty"`
	ContentItems []uuid.UUID `json:"content_items,omitempty"`
}

// ToMessageView fails on any type outside the four message kinds.
func ToMessageView(m chat.Message) (MessageView, error) {
	if m == nil {
		return MessageView{}, fmt.Errorf("%w: nil message", errors.ErrUnknownMessageKind)
	}
	v := MessageView{
		ID:        m.ID(),
		Kind:      m.Kind().String(),
		SenderID:  m.SenderID(),
		SentAt:    m.SentAt(),
		UpdatedAt: m.UpdatedAt(),
		RepliedTo: m.RepliedTo(),
		SeenBy:    m.SeenBy(),
	}
	switch msg := m.(type) {
	case *chat.TextMessage:
		v.Text = msg.Text()
	case *chat.ImageMessage:
		v.Text = msg.Text()
		v.ImageURLs = msg.ImageURLs()
	case *chat.ContentMessage:
		v.Text = msg.Text()
		v.ContentItems = msg.ContentItems()
	case *chat.RemovedContentMessage:
		v.Text = msg.Text()
	default:
		return MessageView{}, fmt.Errorf("%w: %T", errors.ErrUnknownMessageKind, m)
	}
	if v.SeenBy == nil {
		v.SeenBy = []uuid.UUID{}
	}
	return v, nil
}

func ToMessageViews(messages []chat.Message) ([]MessageView, error) {
	views := make([]MessageView, 0, len(messages))
	for _, m := range messages {
		v, err := ToMessageView(m)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

type ConversationSummaryView struct {
	ConversationID uuid.UUID    `json:"conversation_id"`
	Type           string       `json:"type"`
	Participants   []uuid.UUID  `json:"participants"`
	Pinned         bool         `json:"pinned"`
	LastMessage    *MessageView `json:"last_message,omitempty"`
	UnreadCount    int          `json:"unread_count"`
}

// ToSummaryView computes the summary of c as seen by viewer.
func ToSummaryView(c chat.Conversation, viewer uuid.UUID, pinned bool) (ConversationSummaryView, error) {
	summary := c.ComputeSummary(viewer)
	v := ConversationSummaryView{
		ConversationID: c.ID(),
		Type:           string(c.Type()),
		Participants:   c.Participants(),
		Pinned:         pinned,
		UnreadCount:    summary.UnreadCount,
	}
	if summary.LastMessage != nil {
		last, err := ToMessageView(summary.LastMessage)
		if err != nil {
			return ConversationSummaryView{}, err
		}
		v.LastMessage = &last
	}
	return v, nil
}
