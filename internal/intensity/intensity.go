// Package intensity derives a 0.0-5.0 severity scalar from sentiment and
// keyword signal.
package intensity

import "math"

const (
	// criticalWeightFloor forces maximum intensity; a single Critical
	// Distress phrase already carries this much weight.
	criticalWeightFloor = 10

	maxIntensity = 5.0
)

// Score combines the sentiment score and total keyword match weight into
// an intensity in [0.0, 5.0], rounded to one decimal place.
func Score(sentimentScore float64, keywordWeight int) float64 {
	if keywordWeight >= criticalWeightFloor {
		return maxIntensity
	}

	sentimentComponent := (1.0 - sentimentScore) * 1.25
	keywordComponent := math.Min(float64(keywordWeight)*0.5, 2.5)

	total := math.Min(sentimentComponent+keywordComponent, maxIntensity)
	return math.Round(total*10) / 10
}
