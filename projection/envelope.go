package projection

import (
	"chat-core/domain/event"
	"chat-core/errors"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Envelope is the transport form of a notification, identical for local
// websocket clients and for the cross-instance relay.
type Envelope struct {
	Type           event.Type   `json:"type"`
	OccurredAt     time.Time    `json:"occurred_at"`
	ConversationID *uuid.UUID   `json:"conversation_id,omitempty"`
	Message        *MessageView `json:"message,omitempty"`
	MessageID      *uuid.UUID   `json:"message_id,omitempty"`
	UserID         *uuid.UUID   `json:"user_id,omitempty"`
}

func ToEnvelope(e event.DomainEvent) (Envelope, error) {
	env := Envelope{Type: e.Type(), OccurredAt: e.OccurredAt()}
	switch evt := e.(type) {
	case event.MessageSent:
		view, err := ToMessageView(evt.Message)
		if err != nil {
			return Envelope{}, err
		}
		env.ConversationID = lo.ToPtr(evt.ConversationID)
		env.Message = &view
		env.MessageID = lo.ToPtr(view.ID)
	case event.MessageUpdated:
		view, err := ToMessageView(evt.Message)
		if err != nil {
			return Envelope{}, err
		}
		env.Message = &view
		env.MessageID = lo.ToPtr(view.ID)
	case event.MessageDeleted:
		env.MessageID = lo.ToPtr(evt.MessageID)
	case event.MessageMarkedAsRead:
		env.MessageID = lo.ToPtr(evt.MessageID)
		env.UserID = lo.ToPtr(evt.UserID)
	default:
		return Envelope{}, fmt.Errorf("%w: %T is not a notification", errors.ErrInvalidPayload, e)
	}
	return env, nil
}

func (e Envelope) Encode() ([]byte, error) {
	return json.Marshal(e)
}

func DecodeEnvelope(data []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Envelope{}, fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
	}
	if env.Type == "" {
		return Envelope{}, fmt.Errorf("%w: envelope without type", errors.ErrInvalidPayload)
	}
	return env, nil
}
