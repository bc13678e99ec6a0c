package models

import "time"

// RateSample holds network throughput derived from two snapshots
type RateSample struct {
	UploadKBps   float64       `json:"upload_kb_per_s"`
	DownloadKBps float64       `json:"download_kb_per_s"`
	Elapsed      time.Duration `json:"elapsed"`
	Reset        bool          `json:"reset"`     // a counter decreased between the snapshots
	Available    bool          `json:"available"` // false when either snapshot lacks counters
}
