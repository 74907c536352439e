package momentum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func records(states ...string) []Record {
	rs := make([]Record, len(states))
	for i, s := range states {
		rs[i] = Record{ClassifiedState: s}
	}
	return rs
}

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name    string
		history []Record
		want    Trend
	}{
		{"empty history", nil, TrendStable},
		{"single record", records("Depression"), TrendStable},
		{"worsening", records("Normal", "Stress", "Depression"), TrendSpiraling},
		{"improving", records("Depression", "Stress", "Normal"), TrendImproving},
		{"flat", records("Normal", "Normal"), TrendStable},
		{"dip and recovery reads stable", records("Stress", "Depression", "Stress"), TrendStable},
		{"only trailing window counts", records("Critical Distress", "Normal", "Stress", "Depression"), TrendSpiraling},
		{"unknown states map to normal", records("garbage", "Anxiety"), TrendSpiraling},
		{"missing state maps to normal", append(records("Stress"), Record{}), TrendImproving},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Analyze(tt.history))
		})
	}
}
