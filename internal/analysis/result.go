package analysis

import (
	"fmt"

	"kiddoo/internal/alert"
	"kiddoo/internal/classifier"
	"kiddoo/internal/explain"
	"kiddoo/internal/respond"
	"kiddoo/internal/sentiment"
)

// Mode selects the output verbosity of an analysis.
type Mode string

const (
	// ModeUser returns the reduced bundle without internal reasoning.
	ModeUser Mode = "user"
	// ModeReview returns the full bundle including the decision
	// explanation and state probabilities.
	ModeReview Mode = "review"
)

// ParseMode validates a mode string. The empty string defaults to user.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "":
		return ModeUser, nil
	case ModeUser:
		return ModeUser, nil
	case ModeReview:
		return ModeReview, nil
	default:
		return "", fmt.Errorf("%w: unknown mode %q", ErrInvalidInput, s)
	}
}

// Result is the canonical full analysis bundle. It is immutable after
// construction; mode filtering happens as a projection over it, never as
// a second computation.
type Result struct {
	PredictionResult    classifier.State       `json:"prediction_result"`
	SentimentAnalysis   sentiment.Result       `json:"sentiment_analysis"`
	ExtractedKeywords   []string               `json:"extracted_keywords"`
	ClassifiedState     classifier.State       `json:"classified_state"`
	IntensityScore      float64                `json:"intensity_score"`
	StateProbabilities  classifier.Distribution `json:"state_probabilities"`
	Precautions         []string               `json:"precautions"`
	AutonomousAction    alert.Action           `json:"autonomous_action"`
	DecisionExplanation explain.Explanation    `json:"decision_explanation"`
	AgentResponse       respond.Response       `json:"agent_response"`
	Mode                Mode                   `json:"mode"`
}

// UserView is the reduced projection served in user mode. Every field is
// copied verbatim from the canonical result.
type UserView struct {
	PredictionResult  classifier.State `json:"prediction_result"`
	SentimentAnalysis sentiment.Result `json:"sentiment_analysis"`
	IntensityScore    float64          `json:"intensity_score"`
	ClassifiedState   classifier.State `json:"classified_state"`
	Precautions       []string         `json:"precautions"`
	AutonomousAction  alert.Action     `json:"autonomous_action"`
	AgentResponse     respond.Response `json:"agent_response"`
	Mode              Mode             `json:"mode"`
}

// View projects the result according to its mode.
func (r *Result) View() any {
	if r.Mode == ModeReview {
		return r
	}
	return UserView{
		PredictionResult:  r.PredictionResult,
		SentimentAnalysis: r.SentimentAnalysis,
		IntensityScore:    r.IntensityScore,
		ClassifiedState:   r.ClassifiedState,
		Precautions:       r.Precautions,
		AutonomousAction:  r.AutonomousAction,
		AgentResponse:     r.AgentResponse,
		Mode:              r.Mode,
	}
}
