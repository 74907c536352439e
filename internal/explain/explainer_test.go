package explain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kiddoo/internal/classifier"
	"kiddoo/internal/lexicon"
)

func TestIntensityReasoningTiers(t *testing.T) {
	tests := []struct {
		name      string
		intensity float64
		contains  string
	}{
		{"critical tier", 4.0, "Critical indicators detected"},
		{"high critical tier", 5.0, "Critical indicators detected"},
		{"moderate tier", 2.5, "Moderate emotional intensity"},
		{"upper moderate tier", 3.9, "Moderate emotional intensity"},
		{"stable tier", 2.4, "Stable emotional state"},
		{"low tier", 0.0, "Stable emotional state"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exp := Build(classifier.StateStress, []string{"stressed"}, lexicon.Matches{lexicon.CategoryStress: 1}, -0.4, tt.intensity)
			assert.Contains(t, exp.IntensityReasoning, tt.contains)
		})
	}
}

func TestDecisionSummaryCritical(t *testing.T) {
	exp := Build(classifier.StateCritical, []string{"want to die"}, lexicon.Matches{lexicon.CategoryCritical: 10}, -1.0, 5.0)
	assert.Equal(t, "The message was classified as Critical Distress due to the presence of emergency/crisis indicators.", exp.FinalDecisionSummary)
}

func TestDecisionSummaryKeywordDriven(t *testing.T) {
	exp := Build(classifier.StateAnxiety, []string{"anxious", "panic"}, lexicon.Matches{lexicon.CategoryAnxiety: 2}, -0.3, 3.0)
	assert.Contains(t, exp.FinalDecisionSummary, "classified as Anxiety because of a high concentration of Anxiety-related keywords")
}

func TestDecisionSummarySentimentDriven(t *testing.T) {
	exp := Build(classifier.StateStress, nil, lexicon.Matches{}, -0.35, 1.7)
	assert.Contains(t, exp.FinalDecisionSummary, "based primarily on the overall sentiment score of -0.35")
}

func TestBuildCarriesInputsThrough(t *testing.T) {
	matches := lexicon.Matches{lexicon.CategoryDepression: 2}
	keywords := []string{"empty", "hopeless"}

	exp := Build(classifier.StateDepression, keywords, matches, -0.7, 4.2)
	assert.Equal(t, classifier.StateDepression, exp.DominantState)
	assert.Equal(t, keywords, exp.TriggerKeywords)
	assert.Equal(t, matches, exp.KeywordContributions)
	assert.Equal(t, -0.7, exp.SentimentInfluence)
}
