package services

import (
	"errors"
	"time"

	"deskgauge/internal/models"
)

// ErrStaleCounterReset reports a network counter that went backwards
var ErrStaleCounterReset = errors.New("network counter reset")

// RateKBps converts a counter delta to KB/s. A decreasing counter yields 0
// and reset=true.
func RateKBps(prev, curr uint64, seconds float64) (rate float64, reset bool) {
	if curr < prev {
		return 0, true
	}
	if seconds <= 0 {
		return 0, false
	}
	return float64(curr-prev) / 1024 / seconds, false
}

// ComputeRate derives upload/download throughput between two snapshots.
// The divisor is the measured time between the snapshots, falling back to
// the nominal interval when the timestamps do not give a positive duration.
func ComputeRate(prev, curr models.MetricSnapshot, interval time.Duration) models.RateSample {
	if !prev.NetworkAvailable() || !curr.NetworkAvailable() {
		return models.RateSample{}
	}

	elapsed := interval
	if !prev.TakenAt.IsZero() && !curr.TakenAt.IsZero() {
		if measured := curr.TakenAt.Sub(prev.TakenAt); measured > 0 {
			elapsed = measured
		}
	}

	seconds := elapsed.Seconds()
	upload, sentReset := RateKBps(prev.BytesSent, curr.BytesSent, seconds)
	download, recvReset := RateKBps(prev.BytesRecv, curr.BytesRecv, seconds)

	return models.RateSample{
		UploadKBps:   upload,
		DownloadKBps: download,
		Elapsed:      elapsed,
		Reset:        sentReset || recvReset,
		Available:    true,
	}
}
