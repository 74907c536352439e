// Package momentum derives the direction of emotional-severity change
// across the last few recorded interactions of a session.
package momentum

import "kiddoo/internal/classifier"

// Trend is the session momentum over the trailing window.
type Trend string

const (
	TrendStable    Trend = "Stable"
	TrendSpiraling Trend = "Spiraling"
	TrendImproving Trend = "Improving"
)

// Record is a caller-supplied prior classification. Only the state name is
// read; unknown or missing names map to Normal.
type Record struct {
	ClassifiedState string `json:"classified_state"`
}

// window is how many trailing records are considered.
const window = 3

// Analyze compares the first and last severity in the trailing window.
// Fewer than two records always reads as Stable.
func Analyze(history []Record) Trend {
	if len(history) < 2 {
		return TrendStable
	}

	recent := history
	if len(recent) > window {
		recent = recent[len(recent)-window:]
	}

	first := severityOf(recent[0])
	last := severityOf(recent[len(recent)-1])

	switch {
	case last > first:
		return TrendSpiraling
	case last < first:
		return TrendImproving
	default:
		return TrendStable
	}
}

func severityOf(r Record) int {
	state, _ := classifier.ParseState(r.ClassifiedState)
	return state.Severity()
}
