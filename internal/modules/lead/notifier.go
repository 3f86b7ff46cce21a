package lead

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Payload is the JSON body sent to the lead-email function. It carries
// the full submission, including fields that are not persisted (the ad
// hoc message text).
type Payload struct {
	Name                   string `json:"name"`
	Email                  string `json:"email"`
	ServiceType            string `json:"service_type"`
	ModalType              string `json:"modal_type"`
	Source                 string `json:"source"`
	Company                string `json:"company,omitempty"`
	Phone                  string `json:"phone,omitempty"`
	ProjectDescription     string `json:"project_description,omitempty"`
	Goals                  string `json:"goals,omitempty"`
	CurrentChallenges      string `json:"current_challenges,omitempty"`
	BudgetRange            string `json:"budget_range,omitempty"`
	Timeline               string `json:"timeline,omitempty"`
	PreferredContactMethod string `json:"preferred_contact_method,omitempty"`
	ReferralInfo           string `json:"referral_info,omitempty"`
	Message                string `json:"message,omitempty"`
}

// Notifier delivers the submission payload to the notification
// function.
type Notifier interface {
	SendLeadEmail(ctx context.Context, p Payload) error
}

// HTTPNotifier posts the payload to the lead-email endpoint. It relies
// on the transport's default timeout behavior; no application timeout
// is configured.
type HTTPNotifier struct {
	url    string
	client *http.Client
}

func NewHTTPNotifier(url string) *HTTPNotifier {
	return &HTTPNotifier{
		url:    url,
		client: http.DefaultClient,
	}
}

func (n *HTTPNotifier) SendLeadEmail(ctx context.Context, p Payload) error {
	body, err := json.Marshal(p)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading notification response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := strings.TrimSpace(string(respBody))
		if msg == "" {
			msg = fmt.Sprintf("notification endpoint returned %d", resp.StatusCode)
		}
		return fmt.Errorf("%s", msg)
	}

	return nil
}
