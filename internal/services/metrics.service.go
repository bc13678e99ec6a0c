package services

import (
	"errors"
	"fmt"
	"time"

	"deskgauge/internal/models"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/net"
)

// ErrMetricsUnavailable is wrapped by every failed OS reading
var ErrMetricsUnavailable = errors.New("metrics unavailable")

// OSMetrics is the host facility the sampler reads from
type OSMetrics interface {
	CPUPercent() (float64, error)
	MemoryPercent() (float64, error)
	DiskPercent(path string) (float64, error)
	NetCounters() (sent, recv uint64, err error)
}

// HostMetrics reads the local machine through gopsutil
type HostMetrics struct{}

// CPUPercent returns CPU usage since the previous call
func (HostMetrics) CPUPercent() (float64, error) {
	percentage, err := cpu.Percent(0, false)
	if err != nil {
		return 0, err
	}
	if len(percentage) == 0 {
		return 0, fmt.Errorf("cpu.Percent returned no data")
	}
	return percentage[0], nil
}

// MemoryPercent returns virtual memory usage
func (HostMetrics) MemoryPercent() (float64, error) {
	virtualMemory, err := mem.VirtualMemory()
	if err != nil {
		return 0, err
	}
	if virtualMemory == nil {
		return 0, fmt.Errorf("mem.VirtualMemory returned no data")
	}
	return virtualMemory.UsedPercent, nil
}

// DiskPercent returns filesystem usage for a mount path
func (HostMetrics) DiskPercent(path string) (float64, error) {
	if path == "" {
		path = "/"
	}

	usage, err := disk.Usage(path)
	if err != nil {
		return 0, err
	}
	if usage == nil {
		return 0, fmt.Errorf("disk.Usage returned no data for %s", path)
	}
	return usage.UsedPercent, nil
}

// NetCounters returns total bytes sent/received across all interfaces
func (HostMetrics) NetCounters() (uint64, uint64, error) {
	counters, err := net.IOCounters(true)
	if err != nil {
		return 0, 0, err
	}
	if len(counters) == 0 {
		return 0, 0, fmt.Errorf("net.IOCounters returned no interfaces")
	}

	var totalBytesSent uint64
	var totalBytesRecv uint64

	for _, counter := range counters {
		totalBytesSent += counter.BytesSent
		totalBytesRecv += counter.BytesRecv
	}

	return totalBytesSent, totalBytesRecv, nil
}

// Sampler takes MetricSnapshots from an OSMetrics facility
type Sampler struct {
	os       OSMetrics
	diskPath string
	now      func() time.Time
}

// NewSampler creates a sampler reading disk usage of diskPath
func NewSampler(facility OSMetrics, diskPath string) *Sampler {
	if diskPath == "" {
		diskPath = "/"
	}
	return &Sampler{
		os:       facility,
		diskPath: diskPath,
		now:      time.Now,
	}
}

// Sample reads every metric once. A failed reading is recorded on the
// snapshot and does not prevent the others from being taken.
func (s *Sampler) Sample() models.MetricSnapshot {
	snap := models.MetricSnapshot{TakenAt: s.now()}

	if v, err := s.os.CPUPercent(); err != nil {
		snap.SetError(models.MetricCPU, unavailable("cpu", err))
	} else {
		snap.CPUPercent = v
	}

	if v, err := s.os.MemoryPercent(); err != nil {
		snap.SetError(models.MetricMemory, unavailable("memory", err))
	} else {
		snap.MemoryPercent = v
	}

	if v, err := s.os.DiskPercent(s.diskPath); err != nil {
		snap.SetError(models.MetricDisk, unavailable("disk "+s.diskPath, err))
	} else {
		snap.DiskPercent = v
	}

	if sent, recv, err := s.os.NetCounters(); err != nil {
		snap.SetError(models.MetricUpload, unavailable("network", err))
	} else {
		snap.BytesSent = sent
		snap.BytesRecv = recv
	}

	return snap
}

func unavailable(what string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrMetricsUnavailable, what, err)
}
