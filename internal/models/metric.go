package models

// MetricKind identifies one label of the widget
type MetricKind int

const (
	MetricCPU MetricKind = iota
	MetricMemory
	MetricDisk
	MetricUpload
	MetricDownload
)

// MetricKinds lists every kind in display order
var MetricKinds = []MetricKind{MetricCPU, MetricMemory, MetricDisk, MetricUpload, MetricDownload}

var metricNames = map[MetricKind]string{
	MetricCPU:      "CPU",
	MetricMemory:   "Memory",
	MetricDisk:     "Disk",
	MetricUpload:   "Upload",
	MetricDownload: "Download",
}

var metricLabelIDs = map[MetricKind]string{
	MetricCPU:      "cpu",
	MetricMemory:   "memory",
	MetricDisk:     "disk",
	MetricUpload:   "upload",
	MetricDownload: "download",
}

// Name returns the caption shown next to the value
func (k MetricKind) Name() string {
	if name, ok := metricNames[k]; ok {
		return name
	}
	return "Unknown"
}

// LabelID returns the identifier of the label bound to this kind
func (k MetricKind) LabelID() string {
	if id, ok := metricLabelIDs[k]; ok {
		return id
	}
	return "unknown"
}

func (k MetricKind) String() string {
	return k.LabelID()
}

// IsPercentage reports whether the kind carries a percentage (and so a tier)
func (k MetricKind) IsPercentage() bool {
	return k == MetricCPU || k == MetricMemory || k == MetricDisk
}
