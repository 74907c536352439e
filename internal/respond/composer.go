// Package respond maps (state, trend) to a deterministic empathetic agent
// response. Content here is product copy, not algorithm.
package respond

import (
	"kiddoo/internal/classifier"
	"kiddoo/internal/momentum"
)

// Urgency is the response urgency label.
type Urgency string

const (
	UrgencyLow    Urgency = "Low"
	UrgencyMedium Urgency = "Medium"
	UrgencyHigh   Urgency = "High"
)

// Response is the composed agent reply for one analysis.
type Response struct {
	Message          string   `json:"agent_message"`
	SuggestedActions []string `json:"suggested_actions"`
	RecommendedFocus string   `json:"recommended_focus"`
	UrgencyLevel     Urgency  `json:"urgency_level"`
	AgentTone        string   `json:"agent_tone"`
}

const (
	spiralingPrefix = "I've noticed you're feeling more distressed than a few moments ago leading up to this.\n\n"
	improvingPrefix = "It seems like things are starting to settle down a bit for you.\n\n"
)

// Compose returns the fully deterministic response for the state and
// session trend.
func Compose(state classifier.State, trend momentum.Trend) Response {
	prefix := ""
	switch trend {
	case momentum.TrendSpiraling:
		if state == classifier.StateAnxiety || state == classifier.StateDepression || state == classifier.StateCritical {
			prefix = spiralingPrefix
		}
	case momentum.TrendImproving:
		if state == classifier.StateNormal || state == classifier.StateStress {
			prefix = improvingPrefix
		}
	}

	return Response{
		Message:          prefix + messageFor(state),
		SuggestedActions: actionsFor(state),
		RecommendedFocus: focusFor(state),
		UrgencyLevel:     urgencyFor(state),
		AgentTone:        toneFor(state),
	}
}

func messageFor(state classifier.State) string {
	switch state {
	case classifier.StateStress:
		return "I can sense that things feel quite heavy and hectic right now.\n\nIt's important to remember that you don't have to carry everything at once. Let's try to take things one step at a time.\n\nYou've got this, and I'm here to listen."
	case classifier.StateAnxiety:
		return "It sounds like your thoughts are racing, and that can feel very overwhelming and scary.\n\nI'm right here with you. Let's focus on finding a small moment of calm together.\n\nDeep breaths—we can handle this together."
	case classifier.StateDepression:
		return "I hear how difficult and heavy things feel for you lately.\n\nIt's okay to feel this way, and I want you to know that your feelings are valid. You don't have to face this alone.\n\nYou matter, and I'm glad you're sharing this with me."
	case classifier.StateCritical:
		return "I can hear how much pain you're in, and I want you to know that there is support available.\n\nYour safety is the most important thing right now. Please lean on those who can help you through this.\n\nYou are not alone—please stay with me."
	default:
		return "It's wonderful to hear that you're feeling balanced and stable.\n\nKeeping up with your positive habits will help you maintain this clarity and energy.\n\nYou're doing great, keep it up!"
	}
}

func actionsFor(state classifier.State) []string {
	switch state {
	case classifier.StateStress:
		return []string{
			"Take a 10-minute break away from screens",
			"Try time-boxing your tasks to avoid feeling overwhelmed",
			"Practice a quick muscle relaxation exercise",
		}
	case classifier.StateAnxiety:
		return []string{
			"Try a grounding exercise (name 5 things you see)",
			"Follow a slow breathing prompt (4-7-8 technique)",
			"Reduce environmental stimulation (dim lights, quiet space)",
		}
	case classifier.StateDepression:
		return []string{
			"Engage in one gentle activity, like a short walk",
			"Practice self-kindness; talk to yourself like a friend",
			"Reach out to a trusted person just to say hello",
		}
	case classifier.StateCritical:
		return []string{
			"Focus on immediate grounding (feel your feet on the floor)",
			"Reach out to a trusted contact or emergency service now",
			"Remember that this intense feeling will pass with support",
			"Stay in a safe, well-lit place with people if possible",
		}
	default:
		return []string{
			"Encourage reflection on what's going well",
			"Maintain your current healthy routine",
			"Try a 5-minute gratitude journaling session",
		}
	}
}

func focusFor(state classifier.State) string {
	switch state {
	case classifier.StateStress:
		return "Rest & Prioritization"
	case classifier.StateAnxiety:
		return "Grounding & Calm"
	case classifier.StateDepression:
		return "Self-Compassion & Connection"
	case classifier.StateCritical:
		return "Safety & Immediate Support"
	default:
		return "Maintenance & Growth"
	}
}

func urgencyFor(state classifier.State) Urgency {
	switch state {
	case classifier.StateCritical:
		return UrgencyHigh
	case classifier.StateNormal:
		return UrgencyLow
	default:
		return UrgencyMedium
	}
}

func toneFor(state classifier.State) string {
	switch state {
	case classifier.StateStress:
		return "Calming"
	case classifier.StateAnxiety:
		return "Grounding"
	case classifier.StateDepression:
		return "Gentle"
	case classifier.StateCritical:
		return "Urgent"
	default:
		return "Supportive"
	}
}
