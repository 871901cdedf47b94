package workers

import (
	"chat-core/contract"
	"chat-core/domain/chat"
	"chat-core/domain/event"
	"chat-core/mocks"
	"chat-core/reconciliation"
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestContentRemovalWorker_ReconcilesEverySignal(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	store := mocks.NewMockIMessageStore(ctrl)
	now := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	first, second := uuid.New(), uuid.New()

	m, err := chat.NewMessage(chat.MessageParams{SenderID: uuid.New(), ContentItems: []uuid.UUID{second}}, now)
	req.NoError(err)

	// Given the first lookup fails and the second finds one message
	store.EXPECT().FindMessagesReferencingContent(gomock.Any(), first).Return(nil, fmt.Errorf("boom"))
	store.EXPECT().FindMessagesReferencingContent(gomock.Any(), second).Return([]chat.Message{m}, nil)
	done := make(chan struct{})
	store.EXPECT().MutateMessage(gomock.Any(), m.ID(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, mutate contract.MessageMutation) (chat.Message, contract.Mutation, error) {
			defer close(done)
			return mutate(m)
		})

	signals := make(chan event.ContentDeleted, 2)
	signals <- event.ContentDeleted{ContentItemID: first, At: now}
	signals <- event.ContentDeleted{ContentItemID: second, At: now}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	worker := NewContentRemovalWorker(log, reconciliation.NewReconciler(log, store, nil), signals)
	stopped := make(chan error)
	go func() { stopped <- worker.Run(ctx) }()

	// Then the failure does not stop the worker
	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("second signal was never reconciled")
	}

	// And cancelling stops it cleanly
	cancel()
	req.NoError(<-stopped)
}

func TestContentRemovalWorker_StopsWhenChannelCloses(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	signals := make(chan event.ContentDeleted)
	close(signals)

	worker := NewContentRemovalWorker(log, reconciliation.NewReconciler(log, nil, nil), signals)

	req.NoError(worker.Run(context.Background()))
}
