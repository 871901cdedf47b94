package workers

import (
	"chat-core/contract"
	"chat-core/domain/event"
	"chat-core/observability"
	"context"
	"log/slog"
	"os"
	goruntime "runtime"
	"time"

	"github.com/shirou/gopsutil/process"
)

// HealthMonitoringWorker samples the process and the chat runtime every
// metricInterval and hands the result to the monitoring manager.
type HealthMonitoringWorker struct {
	log            *slog.Logger
	monitoring     *observability.MonitoringManager
	registry       contract.IRegistry
	contentSignals chan event.ContentDeleted
	metricInterval time.Duration
}

func NewHealthMonitoringWorker(
	log *slog.Logger,
	monitoring *observability.MonitoringManager,
	registry contract.IRegistry,
	contentSignals chan event.ContentDeleted,
	metricInterval time.Duration,
) *HealthMonitoringWorker {
	return &HealthMonitoringWorker{
		log:            log,
		monitoring:     monitoring,
		registry:       registry,
		contentSignals: contentSignals,
		metricInterval: metricInterval,
	}
}

func (w *HealthMonitoringWorker) Run(ctx context.Context) error {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		w.log.Warn("Process metrics unavailable", "error", err)
		p = nil
	}

	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()
	w.monitoring.Update(w.sample(p))
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping health monitoring")
			return nil
		case <-ticker.C:
			w.monitoring.Update(w.sample(p))
		}
	}
}

func (w *HealthMonitoringWorker) sample(p *process.Process) observability.MonitoringStats {
	var m goruntime.MemStats
	goruntime.ReadMemStats(&m)
	stats := observability.MonitoringStats{
		ConnectedClients:     w.registry.Count(),
		ContentQueueSize:     len(w.contentSignals),
		ContentQueueCapacity: cap(w.contentSignals),
		NumGoroutine:         goruntime.NumGoroutine(),
		AllocMemMb:           m.Alloc / 1024 / 1024,
		NumGC:                m.NumGC,
		SampledAt:            time.Now().UTC(),
	}
	if p == nil {
		return stats
	}
	if cpu, err := p.CPUPercent(); err == nil {
		stats.ProcessCPUPercent = cpu
	} else {
		w.log.Debug("Error while finding process cpu usage", "error", err)
	}
	if mem, err := p.MemoryInfo(); err == nil {
		stats.ProcessRSSMb = mem.RSS / 1024 / 1024
	} else {
		w.log.Debug("Error while finding process ram usage", "error", err)
	}
	return stats
}
