package projection

import (
	"chat-core/domain/event"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTimeline_Consume_KeepsLastEnvelopes(t *testing.T) {
	req := require.New(t)
	timeline := NewTimeline(2)
	ctx := context.Background()
	at := time.Now().UTC()

	for i := 0; i < 3; i++ {
		err := timeline.Consume(ctx, Envelope{Type: event.MessageDeletedType, OccurredAt: at.Add(time.Duration(i) * time.Second)})
		req.NoError(err)
	}

	envelopes := timeline.Envelopes()
	req.Len(envelopes, 2)
	req.Equal(at.Add(time.Second), envelopes[0].OccurredAt)
	req.Equal(at.Add(2*time.Second), envelopes[1].OccurredAt)
}

func TestTimeline_Consume_CanceledContext(t *testing.T) {
	req := require.New(t)
	timeline := NewTimeline(0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := timeline.Consume(ctx, Envelope{Type: event.MessageSentType})

	req.ErrorIs(err, context.Canceled)
	req.Empty(timeline.Envelopes())
}
