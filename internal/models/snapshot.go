package models

import "time"

// MetricSnapshot represents one point-in-time reading of all tracked metrics
type MetricSnapshot struct {
	CPUPercent    float64   `json:"cpu_percent"`
	MemoryPercent float64   `json:"memory_percent"`
	DiskPercent   float64   `json:"disk_percent"`
	BytesSent     uint64    `json:"bytes_sent"`
	BytesRecv     uint64    `json:"bytes_recv"`
	TakenAt       time.Time `json:"taken_at"`

	// Errors holds the readings that could not be taken. Network counters
	// are recorded under MetricUpload.
	Errors map[MetricKind]error `json:"-"`
}

// Available reports whether the reading for kind was taken successfully.
// Upload and download share the network counter reading.
func (s MetricSnapshot) Available(kind MetricKind) bool {
	if kind == MetricDownload {
		kind = MetricUpload
	}
	if s.Errors == nil {
		return true
	}
	return s.Errors[kind] == nil
}

// NetworkAvailable reports whether the byte counters were read
func (s MetricSnapshot) NetworkAvailable() bool {
	return s.Available(MetricUpload)
}

// Percent returns the percentage reading for kind
func (s MetricSnapshot) Percent(kind MetricKind) (float64, bool) {
	if !kind.IsPercentage() || !s.Available(kind) {
		return 0, false
	}
	switch kind {
	case MetricCPU:
		return s.CPUPercent, true
	case MetricMemory:
		return s.MemoryPercent, true
	default:
		return s.DiskPercent, true
	}
}

// SetError records a failed reading
func (s *MetricSnapshot) SetError(kind MetricKind, err error) {
	if err == nil {
		return
	}
	if s.Errors == nil {
		s.Errors = make(map[MetricKind]error)
	}
	s.Errors[kind] = err
}
