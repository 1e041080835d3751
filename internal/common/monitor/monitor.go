package monitor

import (
	"runtime"
	"sync"
	"time"

	"github.com/urlscout/urlscout-go/internal/common/logger"
	"go.uber.org/zap"
)

// Stats represents scan progress statistics
type Stats struct {
	StartTime    time.Time
	FilesScanned uint64
	URLsFound    uint64
	mutex        sync.RWMutex
}

// Monitor periodically logs scan progress and runtime metrics
type Monitor struct {
	stats    *Stats
	interval time.Duration
	done     chan struct{}
	once     sync.Once
}

// New creates a new progress monitor
func New(interval time.Duration) *Monitor {
	return &Monitor{
		stats: &Stats{
			StartTime: time.Now(),
		},
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start starts the monitoring
func (m *Monitor) Start() {
	go m.monitor()
}

// Stop stops the monitoring
func (m *Monitor) Stop() {
	m.once.Do(func() { close(m.done) })
}

// GetStats returns current statistics
func (m *Monitor) GetStats() (files, urls uint64) {
	m.stats.mutex.RLock()
	defer m.stats.mutex.RUnlock()
	return m.stats.FilesScanned, m.stats.URLsFound
}

// RecordFile records one completed file and the URLs found in it
func (m *Monitor) RecordFile(urls int) {
	m.stats.mutex.Lock()
	m.stats.FilesScanned++
	m.stats.URLsFound += uint64(urls)
	m.stats.mutex.Unlock()
}

// monitor periodically reports progress
func (m *Monitor) monitor() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.report()
		case <-m.done:
			return
		}
	}
}

// report logs current progress and memory use
func (m *Monitor) report() {
	files, urls := m.GetStats()

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	logger.Info("Scan progress",
		zap.Uint64("files_scanned", files),
		zap.Uint64("urls_found", urls),
		zap.Uint64("memory_bytes", memStats.Alloc),
		zap.Duration("elapsed", time.Since(m.stats.StartTime)),
	)
}
