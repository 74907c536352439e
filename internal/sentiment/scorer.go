package sentiment

import (
	"fmt"
	"math"
	"strings"

	"kiddoo/internal/lexicon"
)

// Label classifies a sentiment score.
type Label string

const (
	LabelCritical Label = "Critical"
	LabelPositive Label = "Positive"
	LabelNegative Label = "Negative"
	LabelNeutral  Label = "Neutral"
)

// Result is a signed sentiment score in [-1, 1] with its label.
type Result struct {
	Score float64 `json:"score"`
	Label Label   `json:"label"`
}

// dangerPhrases trigger an immediate Critical override regardless of the
// lexicon content or polarity output.
var dangerPhrases = []string{
	"suicide",
	"kill myself",
	"killing myself",
	"end my life",
	"want to die",
	"going to die",
	"end it all",
}

// standaloneDangerTokens are Critical only as whole whitespace-bounded
// tokens, so "killer workout" stays out of the override path.
var standaloneDangerTokens = map[string]struct{}{
	"die":  {},
	"kill": {},
}

// depressionClamp caps the polarity score when depression phrases are
// present in the text.
const depressionClamp = -0.6

// Scorer computes sentiment with priority overrides ahead of the injected
// polarity primitive.
type Scorer struct {
	lex      *lexicon.Lexicon
	polarity PolarityAnalyzer
}

func NewScorer(lex *lexicon.Lexicon, polarity PolarityAnalyzer) *Scorer {
	return &Scorer{lex: lex, polarity: polarity}
}

// Score evaluates the override rules in priority order, first match wins:
// danger phrases, standalone danger tokens, Critical Distress phrases,
// Depression phrases (clamped polarity), then plain polarity.
func (s *Scorer) Score(text string) (Result, error) {
	lower := strings.ToLower(text)

	for _, phrase := range dangerPhrases {
		if lexicon.ContainsPhrase(lower, phrase) {
			return Result{Score: -1.0, Label: LabelCritical}, nil
		}
	}

	for _, token := range strings.Fields(lower) {
		if _, ok := standaloneDangerTokens[token]; ok {
			return Result{Score: -1.0, Label: LabelCritical}, nil
		}
	}

	for _, phrase := range s.lex.Phrases(lexicon.CategoryCritical) {
		if lexicon.ContainsPhrase(lower, phrase) {
			return Result{Score: -1.0, Label: LabelCritical}, nil
		}
	}

	for _, phrase := range s.lex.Phrases(lexicon.CategoryDepression) {
		if lexicon.ContainsPhrase(lower, phrase) {
			score, err := s.polarity.Polarity(text)
			if err != nil {
				return Result{}, fmt.Errorf("sentiment: polarity analyzer: %w", err)
			}
			return Result{Score: round2(math.Min(score, depressionClamp)), Label: LabelNegative}, nil
		}
	}

	score, err := s.polarity.Polarity(text)
	if err != nil {
		return Result{}, fmt.Errorf("sentiment: polarity analyzer: %w", err)
	}

	label := LabelNeutral
	switch {
	case score > 0.1:
		label = LabelPositive
	case score < -0.1:
		label = LabelNegative
	}
	return Result{Score: round2(score), Label: label}, nil
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
