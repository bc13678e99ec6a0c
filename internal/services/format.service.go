package services

import "fmt"

// Placeholder is shown in place of a reading that could not be taken
const Placeholder = "—"

func FormatPercent(percent float64) string {
	return fmt.Sprintf("%.1f%%", percent)
}

func FormatRate(kbps float64) string {
	return fmt.Sprintf("%.1f KB/s", kbps)
}
