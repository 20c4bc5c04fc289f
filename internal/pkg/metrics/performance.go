package metrics

import (
	"runtime"
	"time"
)

type PerformanceMetrics struct {
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	AllocBytes uint64
}

// CapturePerformance measures wall time and allocation delta around fn.
func CapturePerformance(fn func()) *PerformanceMetrics {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)
	startAlloc := stats.TotalAlloc

	perf := &PerformanceMetrics{StartTime: time.Now()}

	fn()

	runtime.ReadMemStats(&stats)
	perf.EndTime = time.Now()
	perf.Duration = perf.EndTime.Sub(perf.StartTime)
	perf.AllocBytes = stats.TotalAlloc - startAlloc

	return perf
}
