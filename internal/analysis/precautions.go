package analysis

import "kiddoo/internal/classifier"

// precautionsFor returns the static advisory list for a state.
func precautionsFor(state classifier.State) []string {
	switch state {
	case classifier.StateAnxiety:
		return []string{
			"Practice grounding exercises (5-4-3-2-1 technique)",
			"Reduce caffeine intake",
			"Talk to a trusted person about your worries",
			"Try deep breathing exercises",
		}
	case classifier.StateStress:
		return []string{
			"Take regular breaks during work",
			"Identify and prioritize your tasks",
			"Try a 10-minute meditation",
			"Ensure you're getting adequate physical activity",
		}
	case classifier.StateDepression:
		return []string{
			"Set small, achievable daily goals",
			"Try to spend some time outdoors",
			"Reach out to a mental health professional",
			"Avoid isolation; connect with loved ones",
		}
	case classifier.StateCritical:
		return []string{
			"Contact an emergency service immediately",
			"Reach out to a crisis hotline (e.g., 988 in the US)",
			"Stay with someone you trust",
			"Remove any dangerous items from your vicinity",
		}
	default:
		return []string{
			"Maintain a healthy sleep schedule",
			"Keep up with your regular routine",
			"Engage in hobbies you enjoy",
		}
	}
}
