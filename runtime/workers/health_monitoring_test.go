package workers

import (
	"chat-core/domain/event"
	"chat-core/observability"
	"chat-core/projection"
	"chat-core/runtime"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestHealthMonitoringWorker_SamplesRuntime(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	monitoring := observability.NewMonitoringManager(log)
	registry := runtime.NewRegistry()
	registry.Subscribe("timeline", projection.NewTimeline(1))
	signals := make(chan event.ContentDeleted, 4)
	signals <- event.ContentDeleted{ContentItemID: uuid.New()}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stopped := make(chan error)
	go func() {
		stopped <- NewHealthMonitoringWorker(log, monitoring, registry, signals, 10*time.Millisecond).Run(ctx)
	}()

	// Then a first sample is available right away
	req.Eventually(func() bool { return !monitoring.GetLatest().SampledAt.IsZero() }, time.Second, 5*time.Millisecond)
	stats := monitoring.GetLatest()
	req.Equal(1, stats.ConnectedClients)
	req.Equal(1, stats.ContentQueueSize)
	req.Equal(4, stats.ContentQueueCapacity)
	req.Positive(stats.NumGoroutine)

	cancel()
	req.NoError(<-stopped)
}
