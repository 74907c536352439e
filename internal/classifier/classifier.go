package classifier

import (
	"math"

	"kiddoo/internal/lexicon"
)

// Distribution maps each state to an integer percentage. A well-formed
// distribution sums to exactly 100.
type Distribution map[State]int

// Sum returns the total percentage mass, 100 for a valid distribution.
func (d Distribution) Sum() int {
	total := 0
	for _, v := range d {
		total += v
	}
	return total
}

// Classifier turns category matches and a sentiment score into a discrete
// state plus a normalized probability distribution.
type Classifier struct {
	matcher *lexicon.Matcher
}

func New(matcher *lexicon.Matcher) *Classifier {
	return &Classifier{matcher: matcher}
}

// Detailed bundles everything the explainer and orchestrator need from a
// single classification pass.
type Detailed struct {
	State         State
	Probabilities Distribution
	Matches       lexicon.Matches
}

// Detail runs matching once and derives state and probabilities from it.
func (c *Classifier) Detail(text string, sentimentScore float64) Detailed {
	matches := c.matcher.CategoryMatches(text)
	return Detailed{
		State:         ClassifyMatches(matches, sentimentScore),
		Probabilities: DistributeMatches(matches, sentimentScore),
		Matches:       matches,
	}
}

// Classify returns the state for the text and sentiment score.
func (c *Classifier) Classify(text string, sentimentScore float64) State {
	return ClassifyMatches(c.matcher.CategoryMatches(text), sentimentScore)
}

// Probabilities returns the normalized distribution for the text and
// sentiment score.
func (c *Classifier) Probabilities(text string, sentimentScore float64) Distribution {
	return DistributeMatches(c.matcher.CategoryMatches(text), sentimentScore)
}

// ClassifyMatches applies the classification rules in strict priority
// order, first match wins. Every branch has an explicit fallback so the
// function is total over its inputs.
func ClassifyMatches(matches lexicon.Matches, sentimentScore float64) State {
	if matches[lexicon.CategoryCritical] > 0 {
		return StateCritical
	}
	dep := matches[lexicon.CategoryDepression]
	if dep > 1 || (dep > 0 && sentimentScore < -0.4) {
		return StateDepression
	}
	anx := matches[lexicon.CategoryAnxiety]
	if anx > 1 || (anx > 0 && sentimentScore < -0.2) {
		return StateAnxiety
	}
	if matches[lexicon.CategoryStress] > 0 {
		return StateStress
	}
	// Keyword-free but clearly negative messages still read as stress.
	if sentimentScore < -0.3 {
		return StateStress
	}
	return StateNormal
}

// DistributeMatches computes the normalized confidence across all states.
// Any Critical Distress match collapses the distribution to 100% Critical;
// otherwise raw scores are normalized to percentages and the rounding
// remainder is assigned to the dominant state so the total is exactly 100.
func DistributeMatches(matches lexicon.Matches, sentimentScore float64) Distribution {
	raw := Distribution{
		StateNormal:     10,
		StateAnxiety:    5,
		StateStress:     5,
		StateDepression: 5,
		StateCritical:   0,
	}

	const matchMultiplier = 10
	raw[StateAnxiety] += matches[lexicon.CategoryAnxiety] * matchMultiplier
	raw[StateStress] += matches[lexicon.CategoryStress] * matchMultiplier
	raw[StateDepression] += matches[lexicon.CategoryDepression] * matchMultiplier
	raw[StateCritical] += matches[lexicon.CategoryCritical] * 50

	switch {
	case sentimentScore < -0.5:
		raw[StateDepression] += 20
		raw[StateCritical] += 5
	case sentimentScore < -0.2:
		raw[StateStress] += 15
		raw[StateAnxiety] += 15
	case sentimentScore > 0.2:
		raw[StateNormal] += 30
	}

	if matches[lexicon.CategoryCritical] > 0 {
		dist := Distribution{}
		for _, s := range States() {
			dist[s] = 0
		}
		dist[StateCritical] = 100
		return dist
	}

	total := raw.Sum()
	if total == 0 {
		dist := Distribution{}
		for _, s := range States() {
			dist[s] = 0
		}
		dist[StateNormal] = 100
		return dist
	}

	dist := Distribution{}
	for _, s := range States() {
		dist[s] = int(math.Round(float64(raw[s]) / float64(total) * 100))
	}

	// Feed the rounding remainder to the first-encountered maximum in
	// canonical order so the distribution sums to exactly 100.
	diff := 100 - dist.Sum()
	maxState := StateNormal
	maxValue := -1
	for _, s := range States() {
		if dist[s] > maxValue {
			maxState = s
			maxValue = dist[s]
		}
	}
	dist[maxState] += diff
	return dist
}
