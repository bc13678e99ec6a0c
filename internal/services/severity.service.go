package services

import "deskgauge/internal/models"

// Thresholds splits percentages into tiers
type Thresholds struct {
	Warning  float64
	Critical float64
}

// DefaultThresholds are the compiled-in tier boundaries
var DefaultThresholds = Thresholds{Warning: 50, Critical: 90}

// Classify maps a percentage to a tier. Out-of-range values are not clamped.
func (t Thresholds) Classify(percent float64) models.SeverityTier {
	switch {
	case percent > t.Critical:
		return models.TierCritical
	case percent > t.Warning:
		return models.TierWarning
	default:
		return models.TierNormal
	}
}

// Classify applies the default thresholds
func Classify(percent float64) models.SeverityTier {
	return DefaultThresholds.Classify(percent)
}
