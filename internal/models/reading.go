package models

// Reading is the latest sampled state as exposed to scripts
type Reading struct {
	Snapshot    MetricSnapshot `json:"snapshot"`
	Rate        RateSample     `json:"rate"`
	Unavailable []string       `json:"unavailable,omitempty"`
}

// NewReading collects the names of failed readings alongside the values
func NewReading(snap MetricSnapshot, rate RateSample) Reading {
	reading := Reading{Snapshot: snap, Rate: rate}
	for _, kind := range MetricKinds {
		if !snap.Available(kind) {
			reading.Unavailable = append(reading.Unavailable, kind.LabelID())
		}
	}
	return reading
}
