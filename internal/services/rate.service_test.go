package services

import (
	"errors"
	"testing"
	"time"

	"deskgauge/internal/models"
)

func TestRateKBps(t *testing.T) {
	tests := []struct {
		name      string
		prev      uint64
		curr      uint64
		seconds   float64
		want      float64
		wantReset bool
	}{
		{name: "one MiB per second", prev: 1048576, curr: 3145728, seconds: 2, want: 1024},
		{name: "no traffic", prev: 5000, curr: 5000, seconds: 2, want: 0},
		{name: "counter reset", prev: 5000, curr: 4000, seconds: 2, want: 0, wantReset: true},
		{name: "zero interval", prev: 0, curr: 2048, seconds: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, reset := RateKBps(tt.prev, tt.curr, tt.seconds)
			if got != tt.want {
				t.Errorf("rate: got %v, want %v", got, tt.want)
			}
			if reset != tt.wantReset {
				t.Errorf("reset: got %v, want %v", reset, tt.wantReset)
			}
		})
	}
}

func TestComputeRateNominalInterval(t *testing.T) {
	// no timestamps: the nominal interval is the divisor
	prev := models.MetricSnapshot{BytesSent: 1048576, BytesRecv: 0}
	curr := models.MetricSnapshot{BytesSent: 3145728, BytesRecv: 4096}

	rate := ComputeRate(prev, curr, 2*time.Second)
	if !rate.Available {
		t.Fatal("rate should be available")
	}
	if rate.UploadKBps != 1024.0 {
		t.Errorf("UploadKBps: got %v, want 1024", rate.UploadKBps)
	}
	if rate.DownloadKBps != 2.0 {
		t.Errorf("DownloadKBps: got %v, want 2", rate.DownloadKBps)
	}
	if rate.Elapsed != 2*time.Second {
		t.Errorf("Elapsed: got %v", rate.Elapsed)
	}
}

func TestComputeRateMeasuredElapsed(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	prev := models.MetricSnapshot{BytesSent: 0, TakenAt: start}
	// a delayed tick: 4s instead of the nominal 2s
	curr := models.MetricSnapshot{BytesSent: 4096 * 4, TakenAt: start.Add(4 * time.Second)}

	rate := ComputeRate(prev, curr, 2*time.Second)
	if rate.UploadKBps != 4.0 {
		t.Errorf("UploadKBps: got %v, want 4", rate.UploadKBps)
	}
	if rate.Elapsed != 4*time.Second {
		t.Errorf("Elapsed: got %v, want 4s", rate.Elapsed)
	}
}

func TestComputeRateCounterReset(t *testing.T) {
	prev := models.MetricSnapshot{BytesSent: 100, BytesRecv: 5000}
	curr := models.MetricSnapshot{BytesSent: 2148, BytesRecv: 4000}

	rate := ComputeRate(prev, curr, 2*time.Second)
	if rate.DownloadKBps != 0.0 {
		t.Errorf("DownloadKBps: got %v, want 0", rate.DownloadKBps)
	}
	if rate.UploadKBps != 1.0 {
		t.Errorf("UploadKBps: got %v, want 1", rate.UploadKBps)
	}
	if !rate.Reset {
		t.Error("Reset should be set")
	}
}

func TestComputeRateUnavailable(t *testing.T) {
	prev := models.MetricSnapshot{BytesSent: 10}
	curr := models.MetricSnapshot{}
	curr.SetError(models.MetricUpload, errors.New("no interfaces"))

	if rate := ComputeRate(prev, curr, 2*time.Second); rate.Available {
		t.Errorf("rate should be unavailable, got %+v", rate)
	}
	if rate := ComputeRate(curr, prev, 2*time.Second); rate.Available {
		t.Errorf("rate should be unavailable, got %+v", rate)
	}
}
