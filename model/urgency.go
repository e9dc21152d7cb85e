// model/urgency.go
package model

import "strings"

// Urgency levels. Free text at the storage layer; these are the values the
// bot assigns when the submitter does not pick one.
const (
	UrgencyCritical = "Critical (Medical Emergency)"
	UrgencyHigh     = "High (Trapped/Missing)"
	UrgencyMedium   = "Medium (Safe but Separated)"
	UrgencyLow      = "Low (Information Only)"
)

// DetermineUrgency derives an urgency level from keywords in the report
// details. Checks run in severity order, first hit wins.
func DetermineUrgency(text string) string {
	text = strings.ToLower(text)
	switch {
	case strings.Contains(text, "critical"),
		strings.Contains(text, "emergency"),
		strings.Contains(text, "urgent"),
		strings.Contains(text, "life threatening"):
		return UrgencyCritical
	case strings.Contains(text, "high"),
		strings.Contains(text, "trapped"),
		strings.Contains(text, "injured"):
		return UrgencyHigh
	case strings.Contains(text, "medium"),
		strings.Contains(text, "safe"):
		return UrgencyMedium
	}
	return UrgencyLow
}
