package observability

import (
	"log/slog"
	"sync"
	"time"
)

// MonitoringStats is what the debug stats endpoint shows.
type MonitoringStats struct {
	ConnectedClients     int       `json:"connected_clients"`
	ContentQueueSize     int       `json:"content_queue_size"`
	ContentQueueCapacity int       `json:"content_queue_capacity"`
	NumGoroutine         int       `json:"num_goroutine"`
	AllocMemMb           uint64    `json:"alloc_mem_mb"`
	NumGC                uint32    `json:"num_gc"`
	ProcessCPUPercent    float64   `json:"process_cpu_percent"`
	ProcessRSSMb         uint64    `json:"process_rss_mb"`
	SampledAt            time.Time `json:"sampled_at"`
}

// MonitoringManager keeps the latest sample taken by the health monitoring
// worker.
type MonitoringManager struct {
	log         *slog.Logger
	mu          sync.RWMutex
	latestStats MonitoringStats
}

func NewMonitoringManager(log *slog.Logger) *MonitoringManager {
	return &MonitoringManager{log: log}
}

func (mm *MonitoringManager) Update(stats MonitoringStats) {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	mm.latestStats = stats
	ContentQueueSize.Set(float64(stats.ContentQueueSize))

	mm.log.Debug("Stats updated",
		"clients", stats.ConnectedClients,
		"content_queue", stats.ContentQueueSize,
		"mem_mb", stats.AllocMemMb,
		"rss_mb", stats.ProcessRSSMb,
	)
}

func (mm *MonitoringManager) GetLatest() MonitoringStats {
	mm.mu.RLock()
	defer mm.mu.RUnlock()
	return mm.latestStats
}
