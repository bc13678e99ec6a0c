package models

import "fmt"

// SeverityTier is the severity bucket of a percentage
type SeverityTier int

const (
	TierNormal SeverityTier = iota
	TierWarning
	TierCritical
)

func (t SeverityTier) String() string {
	switch t {
	case TierWarning:
		return "warning"
	case TierCritical:
		return "critical"
	default:
		return "normal"
	}
}

// Tier colors
const (
	ColorNormal   = "#28A745"
	ColorWarning  = "#E7A911"
	ColorCritical = "#DC3545"
)

// Color returns the text color used for the tier
func (t SeverityTier) Color() string {
	switch t {
	case TierWarning:
		return ColorWarning
	case TierCritical:
		return ColorCritical
	default:
		return ColorNormal
	}
}

func (t SeverityTier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *SeverityTier) UnmarshalText(text []byte) error {
	switch string(text) {
	case "normal":
		*t = TierNormal
	case "warning":
		*t = TierWarning
	case "critical":
		*t = TierCritical
	default:
		return fmt.Errorf("unknown severity tier %q", text)
	}
	return nil
}
