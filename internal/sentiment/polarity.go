package sentiment

import (
	"math"
	"strings"
)

// PolarityAnalyzer is the injected general-purpose sentiment primitive.
// Implementations return a polarity in [-1, 1]; an error marks the
// dependency as unavailable and propagates to the caller.
type PolarityAnalyzer interface {
	Polarity(text string) (float64, error)
}

// PolarityFunc adapts a plain function to the PolarityAnalyzer interface.
type PolarityFunc func(text string) (float64, error)

func (f PolarityFunc) Polarity(text string) (float64, error) {
	return f(text)
}

// WordlistPolarity is a deterministic word-list polarity analyzer. Scores
// are averaged over matched words, with negation flipping and intensifier
// scaling on the preceding token, then clamped to [-1, 1].
type WordlistPolarity struct {
	positive     map[string]float64
	negative     map[string]float64
	intensifiers map[string]float64
	negations    map[string]struct{}
}

// NewWordlistPolarity builds the default polarity analyzer.
func NewWordlistPolarity() *WordlistPolarity {
	return &WordlistPolarity{
		positive:     positiveWords(),
		negative:     negativeWords(),
		intensifiers: intensifierWords(),
		negations:    negationWords(),
	}
}

func (w *WordlistPolarity) Polarity(text string) (float64, error) {
	words := strings.Fields(strings.ToLower(text))

	var total float64
	var matched int
	for i, word := range words {
		cleaned := strings.Trim(word, ".,!?;:'\"()")

		negated := false
		multiplier := 1.0
		if i > 0 {
			prev := strings.Trim(words[i-1], ".,!?;:'\"()")
			if _, ok := w.negations[prev]; ok {
				negated = true
			}
			if m, ok := w.intensifiers[prev]; ok {
				multiplier = m
			}
		}

		if score, ok := w.positive[cleaned]; ok {
			if negated {
				total -= score * multiplier
			} else {
				total += score * multiplier
			}
			matched++
		} else if score, ok := w.negative[cleaned]; ok {
			if negated {
				total += score * multiplier
			} else {
				total -= score * multiplier
			}
			matched++
		}
	}

	if matched == 0 {
		return 0, nil
	}
	return math.Max(-1, math.Min(1, total/float64(matched))), nil
}

func positiveWords() map[string]float64 {
	return map[string]float64{
		"good": 0.5, "great": 0.7, "wonderful": 0.8, "happy": 0.7,
		"calm": 0.5, "relaxed": 0.6, "peaceful": 0.6, "better": 0.4,
		"fine": 0.3, "okay": 0.2, "hopeful": 0.6, "excited": 0.6,
		"love": 0.7, "grateful": 0.7, "balanced": 0.5, "rested": 0.5,
		"energetic": 0.6, "confident": 0.6, "proud": 0.6, "joy": 0.8,
	}
}

func negativeWords() map[string]float64 {
	return map[string]float64{
		"bad": 0.5, "sad": 0.6, "terrible": 0.8, "awful": 0.8,
		"anxious": 0.6, "worried": 0.5, "scared": 0.6, "afraid": 0.6,
		"stressed": 0.6, "overwhelmed": 0.7, "tired": 0.4, "exhausted": 0.6,
		"hopeless": 0.9, "worthless": 0.9, "empty": 0.7, "numb": 0.7,
		"lonely": 0.7, "miserable": 0.8, "angry": 0.6, "hurt": 0.6,
		"pain": 0.7, "crying": 0.7, "dark": 0.5, "heavy": 0.4,
	}
}

func intensifierWords() map[string]float64 {
	return map[string]float64{
		"very": 1.5, "really": 1.4, "extremely": 1.8, "so": 1.3,
		"incredibly": 1.7, "totally": 1.5, "completely": 1.6,
		"slightly": 0.6, "somewhat": 0.7, "bit": 0.7, "little": 0.7,
	}
}

func negationWords() map[string]struct{} {
	words := []string{"not", "no", "never", "don't", "dont", "can't", "cant", "won't", "wont", "isn't", "isnt"}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
