package alert

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"kiddoo/internal/observability"
)

// smsBody is the alert copy sent to every contact.
const smsBody = "🚨 EMERGENCY ALERT: This is an automated message from KIDDOO. The user has triggered a mental health SOS. Status: Critical. Please check on them immediately."

const (
	defaultDispatchTimeout = 5 * time.Second
	maxResponseBytes       = 64 << 10
	maxConcurrentSends     = 4
)

// TwilioConfig configures the SMS transport. With empty credentials the
// dispatcher degrades to mock deliveries instead of raising.
type TwilioConfig struct {
	AccountSID string        `yaml:"account_sid" mapstructure:"account_sid"`
	AuthToken  string        `yaml:"auth_token" mapstructure:"auth_token"`
	FromNumber string        `yaml:"from_number" mapstructure:"from_number"`
	Timeout    time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

func (c TwilioConfig) configured() bool {
	return c.AccountSID != "" && c.AuthToken != "" && c.FromNumber != ""
}

// TwilioDispatcher sends SOS alerts as SMS through the Twilio Messages
// API. Each dispatch runs under a bounded timeout so a slow provider
// never delays the analysis response.
type TwilioDispatcher struct {
	config TwilioConfig
	client *http.Client
	logger *observability.Logger

	// baseURL is overridable for tests.
	baseURL string
}

// NewTwilioDispatcher creates a dispatcher for the given transport config.
func NewTwilioDispatcher(config TwilioConfig, logger *observability.Logger) *TwilioDispatcher {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = defaultDispatchTimeout
	}
	return &TwilioDispatcher{
		config:  config,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
		baseURL: "https://api.twilio.com",
	}
}

// Dispatch notifies every contact and records a per-contact outcome.
// Failures are captured as failed deliveries; Dispatch itself never
// returns an error.
func (d *TwilioDispatcher) Dispatch(ctx context.Context, contacts []Contact) Action {
	d.logger.WarnContext(ctx, "SOS triggered", "contacts", len(contacts))

	if !d.config.configured() {
		d.logger.WarnContext(ctx, "SMS transport not configured, recording mock deliveries")
		deliveries := make([]Delivery, len(contacts))
		for i, c := range contacts {
			deliveries[i] = Delivery{Name: contactName(c), Status: StatusMockSent}
		}
		return Action{
			SOSTriggered:     true,
			ContactsNotified: deliveries,
			Message:          "Emergency response sequence initiated (MOCK)",
		}
	}

	timeout := d.config.Timeout
	if timeout <= 0 {
		timeout = defaultDispatchTimeout
	}
	dispatchCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	deliveries := make([]Delivery, len(contacts))
	g, gctx := errgroup.WithContext(dispatchCtx)
	g.SetLimit(maxConcurrentSends)
	for i, contact := range contacts {
		g.Go(func() error {
			deliveries[i] = d.send(gctx, contact)
			return nil
		})
	}
	_ = g.Wait()

	for _, delivery := range deliveries {
		if delivery.Status == StatusFailed {
			d.logger.WarnContext(ctx, "SOS delivery failed", "contact", delivery.Name, "detail", delivery.Detail)
		}
	}

	return Action{
		SOSTriggered:     true,
		ContactsNotified: deliveries,
		Message:          "Emergency response sequence initiated",
	}
}

func (d *TwilioDispatcher) send(ctx context.Context, contact Contact) Delivery {
	name := contactName(contact)
	if contact.Phone == "" {
		// Never silently skip: a contact without a phone number is a
		// visible configuration problem.
		return Delivery{Name: name, Status: StatusFailed, Detail: "missing phone number"}
	}

	form := url.Values{}
	form.Set("To", contact.Phone)
	form.Set("From", d.config.FromNumber)
	form.Set("Body", smsBody)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", d.baseURL, d.config.AccountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return Delivery{Name: name, Status: StatusFailed, Detail: err.Error()}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(d.config.AccountSID, d.config.AuthToken)

	resp, err := d.client.Do(req)
	if err != nil {
		return Delivery{Name: name, Status: StatusFailed, Detail: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return Delivery{Name: name, Status: StatusFailed, Detail: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Delivery{Name: name, Status: StatusFailed, Detail: fmt.Sprintf("provider returned %d", resp.StatusCode)}
	}

	var created struct {
		SID string `json:"sid"`
	}
	detail := ""
	if err := json.Unmarshal(body, &created); err == nil && created.SID != "" {
		detail = created.SID
	}

	d.logger.InfoContext(ctx, "SMS sent",
		"contact", name,
		"phone", observability.MaskPhone(contact.Phone),
		"sid", detail,
	)
	return Delivery{Name: name, Status: StatusSent, Detail: detail}
}
