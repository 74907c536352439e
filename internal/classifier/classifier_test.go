package classifier

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kiddoo/internal/lexicon"
)

func testMatcher(t *testing.T) *lexicon.Matcher {
	t.Helper()
	lex, err := lexicon.New(map[lexicon.Category][]string{
		lexicon.CategoryAnxiety:    {"anxious", "panic", "worried"},
		lexicon.CategoryStress:     {"stressed", "deadline", "pressure"},
		lexicon.CategoryDepression: {"hopeless", "worthless", "empty"},
		lexicon.CategoryCritical:   {"want to die", "kill myself"},
	})
	require.NoError(t, err)
	return lexicon.NewMatcher(lex)
}

func TestClassifyPriorityOrder(t *testing.T) {
	tests := []struct {
		name      string
		matches   lexicon.Matches
		sentiment float64
		want      State
	}{
		{
			name:      "critical always wins",
			matches:   lexicon.Matches{lexicon.CategoryCritical: 10, lexicon.CategoryDepression: 5},
			sentiment: 0.9,
			want:      StateCritical,
		},
		{
			name:      "depression by count",
			matches:   lexicon.Matches{lexicon.CategoryDepression: 2},
			sentiment: 0.0,
			want:      StateDepression,
		},
		{
			name:      "depression by single match plus sentiment",
			matches:   lexicon.Matches{lexicon.CategoryDepression: 1},
			sentiment: -0.5,
			want:      StateDepression,
		},
		{
			name:      "single depression match with mild sentiment is not depression",
			matches:   lexicon.Matches{lexicon.CategoryDepression: 1},
			sentiment: -0.3,
			want:      StateNormal,
		},
		{
			name:      "anxiety by count",
			matches:   lexicon.Matches{lexicon.CategoryAnxiety: 2},
			sentiment: 0.2,
			want:      StateAnxiety,
		},
		{
			name:      "anxiety by single match plus sentiment",
			matches:   lexicon.Matches{lexicon.CategoryAnxiety: 1},
			sentiment: -0.25,
			want:      StateAnxiety,
		},
		{
			name:      "stress by keyword",
			matches:   lexicon.Matches{lexicon.CategoryStress: 1},
			sentiment: 0.5,
			want:      StateStress,
		},
		{
			name:      "generalized stress without keywords",
			matches:   lexicon.Matches{},
			sentiment: -0.35,
			want:      StateStress,
		},
		{
			name:      "normal fallback",
			matches:   lexicon.Matches{},
			sentiment: 0.1,
			want:      StateNormal,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyMatches(tt.matches, tt.sentiment))
		})
	}
}

func TestDistributionAlwaysSumsTo100(t *testing.T) {
	cases := []struct {
		matches   lexicon.Matches
		sentiment float64
	}{
		{lexicon.Matches{}, 0.0},
		{lexicon.Matches{}, 0.9},
		{lexicon.Matches{}, -0.9},
		{lexicon.Matches{lexicon.CategoryAnxiety: 3}, -0.3},
		{lexicon.Matches{lexicon.CategoryStress: 1, lexicon.CategoryDepression: 1}, -0.55},
		{lexicon.Matches{lexicon.CategoryCritical: 10}, -1.0},
		{lexicon.Matches{lexicon.CategoryAnxiety: 1, lexicon.CategoryStress: 2, lexicon.CategoryDepression: 3}, -0.45},
	}
	for _, tc := range cases {
		dist := DistributeMatches(tc.matches, tc.sentiment)
		assert.Equal(t, 100, dist.Sum(), "matches=%v sentiment=%v", tc.matches, tc.sentiment)
		assert.Len(t, dist, 5)
	}
}

func TestDistributionCriticalCollapse(t *testing.T) {
	dist := DistributeMatches(lexicon.Matches{lexicon.CategoryCritical: 10, lexicon.CategoryAnxiety: 4}, 0.8)

	assert.Equal(t, 100, dist[StateCritical])
	assert.Equal(t, 0, dist[StateNormal])
	assert.Equal(t, 0, dist[StateAnxiety])
	assert.Equal(t, 0, dist[StateStress])
	assert.Equal(t, 0, dist[StateDepression])
}

func TestDistributionPositiveSentimentFavorsNormal(t *testing.T) {
	dist := DistributeMatches(lexicon.Matches{}, 0.6)

	for _, s := range States() {
		if s == StateNormal {
			continue
		}
		assert.Greater(t, dist[StateNormal], dist[s])
	}
}

func TestDetailUsesOnePassOverText(t *testing.T) {
	c := New(testMatcher(t))

	detail := c.Detail("I feel anxious and worried about the deadline", -0.3)
	assert.Equal(t, StateAnxiety, detail.State)
	assert.Equal(t, 2, detail.Matches[lexicon.CategoryAnxiety])
	assert.Equal(t, 1, detail.Matches[lexicon.CategoryStress])
	assert.Equal(t, 100, detail.Probabilities.Sum())
}

func TestStateJSONRoundTrip(t *testing.T) {
	dist := Distribution{StateCritical: 100, StateNormal: 0, StateAnxiety: 0, StateStress: 0, StateDepression: 0}

	data, err := json.Marshal(dist)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Critical Distress":100`)

	var state State
	require.NoError(t, json.Unmarshal([]byte(`"Depression"`), &state))
	assert.Equal(t, StateDepression, state)

	require.NoError(t, json.Unmarshal([]byte(`"garbage"`), &state))
	assert.Equal(t, StateNormal, state)
}

func TestSeverityOrdering(t *testing.T) {
	assert.Less(t, StateNormal.Severity(), StateStress.Severity())
	assert.Less(t, StateStress.Severity(), StateAnxiety.Severity())
	assert.Less(t, StateAnxiety.Severity(), StateDepression.Severity())
	assert.Less(t, StateDepression.Severity(), StateCritical.Severity())
}
