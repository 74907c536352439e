// Package explain assembles the human-readable reasoning bundle attached
// to review-mode analysis results.
package explain

import (
	"fmt"

	"kiddoo/internal/classifier"
	"kiddoo/internal/lexicon"
)

// Explanation is the structured decision-explanation bundle.
type Explanation struct {
	DominantState        classifier.State `json:"dominant_state"`
	TriggerKeywords      []string         `json:"trigger_keywords"`
	KeywordContributions lexicon.Matches  `json:"keyword_contributions"`
	SentimentInfluence   float64          `json:"sentiment_influence"`
	IntensityReasoning   string           `json:"intensity_reasoning"`
	FinalDecisionSummary string           `json:"final_decision_summary"`
}

// Intensity tiers for the reasoning templates.
const (
	criticalIntensity = 4.0
	moderateIntensity = 2.5
)

// Build assembles the explanation for one classification.
func Build(state classifier.State, keywords []string, matches lexicon.Matches, sentimentScore, intensityScore float64) Explanation {
	return Explanation{
		DominantState:        state,
		TriggerKeywords:      keywords,
		KeywordContributions: matches,
		SentimentInfluence:   sentimentScore,
		IntensityReasoning:   intensityReasoning(intensityScore, len(keywords), sentimentScore),
		FinalDecisionSummary: decisionSummary(state, matches, sentimentScore),
	}
}

func intensityReasoning(intensityScore float64, keywordCount int, sentimentScore float64) string {
	switch {
	case intensityScore >= criticalIntensity:
		return fmt.Sprintf("Critical indicators detected with high volume of risk keywords (%d) and significant negative sentiment (%.2f).", keywordCount, sentimentScore)
	case intensityScore >= moderateIntensity:
		return fmt.Sprintf("Moderate emotional intensity characterized by negative sentiment and %d matching emotion keywords.", keywordCount)
	default:
		return "Stable emotional state with low keyword density and neutral or positive sentiment."
	}
}

func decisionSummary(state classifier.State, matches lexicon.Matches, sentimentScore float64) string {
	switch {
	case state == classifier.StateCritical:
		return "The message was classified as Critical Distress due to the presence of emergency/crisis indicators."
	case matches.HasAny():
		return fmt.Sprintf("The message was classified as %s because of a high concentration of %s-related keywords and sentiment influence.", state, state)
	default:
		return fmt.Sprintf("The message was classified as %s based primarily on the overall sentiment score of %.2f.", state, sentimentScore)
	}
}
