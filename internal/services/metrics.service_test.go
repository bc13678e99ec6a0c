package services

import (
	"errors"
	"testing"
	"time"

	"deskgauge/internal/models"
)

type fakeOS struct {
	cpu, mem, disk float64
	sent, recv     uint64

	cpuErr, memErr, diskErr, netErr error
	diskPath                        string
}

func (f *fakeOS) CPUPercent() (float64, error)    { return f.cpu, f.cpuErr }
func (f *fakeOS) MemoryPercent() (float64, error) { return f.mem, f.memErr }

func (f *fakeOS) DiskPercent(path string) (float64, error) {
	f.diskPath = path
	return f.disk, f.diskErr
}

func (f *fakeOS) NetCounters() (uint64, uint64, error) {
	if f.netErr != nil {
		return 0, 0, f.netErr
	}
	return f.sent, f.recv, nil
}

func TestSamplerSample(t *testing.T) {
	facility := &fakeOS{cpu: 12.5, mem: 64, disk: 91, sent: 100, recv: 200}
	sampler := NewSampler(facility, "")
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	sampler.now = func() time.Time { return now }

	snap := sampler.Sample()

	if facility.diskPath != "/" {
		t.Errorf("disk path: got %q, want /", facility.diskPath)
	}
	if snap.CPUPercent != 12.5 || snap.MemoryPercent != 64 || snap.DiskPercent != 91 {
		t.Errorf("percentages: got %+v", snap)
	}
	if snap.BytesSent != 100 || snap.BytesRecv != 200 {
		t.Errorf("counters: got %d/%d", snap.BytesSent, snap.BytesRecv)
	}
	if !snap.TakenAt.Equal(now) {
		t.Errorf("TakenAt: got %v", snap.TakenAt)
	}
	for _, kind := range models.MetricKinds {
		if !snap.Available(kind) {
			t.Errorf("%s should be available", kind)
		}
	}
}

func TestSamplerDiskUnavailable(t *testing.T) {
	facility := &fakeOS{cpu: 30, mem: 40, diskErr: errors.New("permission denied"), sent: 1, recv: 2}
	snap := NewSampler(facility, "/data").Sample()

	if facility.diskPath != "/data" {
		t.Errorf("disk path: got %q", facility.diskPath)
	}
	if snap.Available(models.MetricDisk) {
		t.Fatal("disk should be unavailable")
	}
	if !errors.Is(snap.Errors[models.MetricDisk], ErrMetricsUnavailable) {
		t.Errorf("disk error should wrap ErrMetricsUnavailable: %v", snap.Errors[models.MetricDisk])
	}
	if !snap.Available(models.MetricCPU) || !snap.Available(models.MetricMemory) || !snap.NetworkAvailable() {
		t.Error("other readings should still be available")
	}
	if _, ok := snap.Percent(models.MetricDisk); ok {
		t.Error("Percent(disk) should report unavailable")
	}
	if v, ok := snap.Percent(models.MetricCPU); !ok || v != 30 {
		t.Errorf("Percent(cpu): got %v, %v", v, ok)
	}
}

func TestSamplerNetworkUnavailable(t *testing.T) {
	facility := &fakeOS{netErr: errors.New("no interfaces")}
	snap := NewSampler(facility, "/").Sample()

	if snap.NetworkAvailable() || snap.Available(models.MetricDownload) {
		t.Error("network should be unavailable for upload and download")
	}
}
