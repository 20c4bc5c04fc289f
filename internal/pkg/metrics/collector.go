package metrics

import (
	"runtime"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// Collector tracks process-lifetime counters and samples system resources on
// demand. Counters are atomic so handlers and the service can record from any
// goroutine without coordination.
type Collector struct {
	startTime     time.Time
	analyses      atomic.Int64
	requests      atomic.Int64
	totalAnalysis atomic.Int64 // nanoseconds
}

type Snapshot struct {
	UptimeSeconds      int64   `json:"uptimeSeconds"`
	AnalysesPerformed  int64   `json:"analysesPerformed"`
	RequestsServed     int64   `json:"requestsServed"`
	AvgAnalysisMicros  int64   `json:"avgAnalysisMicros"`
	CPUPercent         float64 `json:"cpuPercent"`
	SystemMemoryUsedMB uint64  `json:"systemMemoryUsedMb"`
	HeapAllocMB        uint64  `json:"heapAllocMb"`
	Goroutines         int     `json:"goroutines"`
}

func NewCollector() *Collector {
	return &Collector{startTime: time.Now()}
}

func (c *Collector) RecordAnalysis(duration time.Duration) {
	c.analyses.Add(1)
	c.totalAnalysis.Add(int64(duration))
}

func (c *Collector) RecordRequest() {
	c.requests.Add(1)
}

func (c *Collector) Analyses() int64 {
	return c.analyses.Load()
}

// Snapshot samples CPU and memory via gopsutil and merges the counters.
// Sampling failures leave the affected fields at zero rather than failing the
// health probe.
func (c *Collector) Snapshot() Snapshot {
	snap := Snapshot{
		UptimeSeconds:     int64(time.Since(c.startTime).Seconds()),
		AnalysesPerformed: c.analyses.Load(),
		RequestsServed:    c.requests.Load(),
		Goroutines:        runtime.NumGoroutine(),
	}

	if snap.AnalysesPerformed > 0 {
		snap.AvgAnalysisMicros = c.totalAnalysis.Load() / snap.AnalysesPerformed / int64(time.Microsecond)
	}

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		snap.CPUPercent = percents[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		snap.SystemMemoryUsedMB = vm.Used / 1024 / 1024
	}

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	snap.HeapAllocMB = ms.HeapAlloc / 1024 / 1024

	return snap
}
