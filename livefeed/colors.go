// livefeed/colors.go
package livefeed

import "lostandfound/model"

// UrgencyColor maps an urgency level to the hex chip shown on the live
// dashboard. Unknown levels get white.
func UrgencyColor(urgency string) string {
	switch urgency {
	case model.UrgencyCritical:
		return "#FF3B30"
	case model.UrgencyHigh:
		return "#FF9500"
	case model.UrgencyMedium:
		return "#FFCC00"
	case model.UrgencyLow:
		return "#34C759"
	default:
		return "#FFFFFF"
	}
}
