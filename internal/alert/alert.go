// Package alert sends emergency SOS notifications to configured contacts.
// Dispatch outcomes are recorded per contact and never abort the analysis
// that triggered them.
package alert

import "context"

// Status is the delivery outcome for one contact.
type Status string

const (
	StatusSent     Status = "sent"
	StatusFailed   Status = "failed"
	StatusMockSent Status = "mock_sent"
)

// Contact is an emergency contact to notify.
type Contact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Delivery is the recorded outcome for one contact. Name is always set,
// even when the contact record was incomplete.
type Delivery struct {
	Name   string `json:"name"`
	Status Status `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// Action is the autonomous-action bundle embedded in analysis results.
type Action struct {
	SOSTriggered     bool       `json:"sos_triggered"`
	ContactsNotified []Delivery `json:"contacts_notified,omitempty"`
	Message          string     `json:"message"`
}

// NoAction is the action recorded when no emergency response is needed.
func NoAction() Action {
	return Action{
		SOSTriggered: false,
		Message:      "No emergency action required",
	}
}

// Dispatcher delivers SOS alerts. Implementations must degrade rather
// than fail: per-contact errors become failed deliveries, and a missing
// transport configuration yields mock_sent outcomes.
type Dispatcher interface {
	Dispatch(ctx context.Context, contacts []Contact) Action
}

// fallbackContactName labels deliveries for contacts without a name.
const fallbackContactName = "Contact"

func contactName(c Contact) string {
	if c.Name == "" {
		return fallbackContactName
	}
	return c.Name
}
