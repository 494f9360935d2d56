package rooms

import "math"

// Severity is the display bucket for a room's availability.
type Severity int

const (
	SeverityLow Severity = iota
	SeverityMediumLow
	SeverityMediumHigh
	SeverityHigh
	SeverityUnknown
)

// Inclusive lower bounds, checked from the top.
const (
	HighThreshold       = 75.0
	MediumHighThreshold = 50.0
	MediumLowThreshold  = 25.0
)

// Classify maps an availability percentage to a Severity. It is total over
// float64: NaN is SeverityUnknown, +Inf is high, -Inf and negatives are low.
func Classify(pct float64) Severity {
	switch {
	case math.IsNaN(pct):
		return SeverityUnknown
	case pct >= HighThreshold:
		return SeverityHigh
	case pct >= MediumHighThreshold:
		return SeverityMediumHigh
	case pct >= MediumLowThreshold:
		return SeverityMediumLow
	default:
		return SeverityLow
	}
}

func (s Severity) String() string {
	switch s {
	case SeverityHigh:
		return "high"
	case SeverityMediumHigh:
		return "medium-high"
	case SeverityMediumLow:
		return "medium-low"
	case SeverityLow:
		return "low"
	default:
		return "unknown"
	}
}

// Severities lists every bucket from most to least available, then unknown.
var Severities = []Severity{SeverityHigh, SeverityMediumHigh, SeverityMediumLow, SeverityLow, SeverityUnknown}
