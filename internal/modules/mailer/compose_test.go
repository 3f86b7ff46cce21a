package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeConfirmation_Newsletter(t *testing.T) {
	e := composeConfirmation(LeadEmailPayload{
		Email:       "a@b.com",
		ServiceType: "newsletter",
		Source:      "footer",
	}, "Acme Automation")

	assert.Equal(t, "a@b.com", e.To)
	assert.Equal(t, "Thanks for signing up for our newsletter!", e.Subject)
	// no name on a footer signup, the address stands in
	assert.Contains(t, e.Body, "Welcome, a@b.com!")
	assert.Contains(t, e.Body, "Acme Automation")
}

func TestComposeConfirmation_Inquiry(t *testing.T) {
	e := composeConfirmation(LeadEmailPayload{
		Name:               "Dana",
		Email:              "dana@co.com",
		ServiceType:        "automation",
		Company:            "Co",
		ProjectDescription: "automate invoicing",
	}, "Acme Automation")

	assert.Equal(t, "dana@co.com", e.To)
	assert.Equal(t, "We received your automation inquiry!", e.Subject)
	assert.Contains(t, e.Body, "Thank you, Dana!")
	assert.Contains(t, e.Body, "Company: Co")
	assert.Contains(t, e.Body, "Project: automate invoicing")
	// absent fields render as a dash, not empty
	assert.Contains(t, e.Body, "Phone: -")
}

func TestComposeAdminAlert(t *testing.T) {
	e := composeAdminAlert(LeadEmailPayload{
		Name:        "Dana",
		Email:       "dana@co.com",
		ServiceType: "quick_contact",
		Source:      "hero",
		Message:     "call me back",
	}, "leads@acme.com")

	assert.Equal(t, "leads@acme.com", e.To)
	assert.Equal(t, "New quick_contact lead from Dana", e.Subject)
	assert.Contains(t, e.Body, "Email: dana@co.com")
	assert.Contains(t, e.Body, "Message: call me back")
	assert.Contains(t, e.Body, "Source: hero")
}

func TestComposeAdminAlert_FallsBackToEmail(t *testing.T) {
	e := composeAdminAlert(LeadEmailPayload{
		Email:       "a@b.com",
		ServiceType: "newsletter",
	}, "leads@acme.com")

	assert.Equal(t, "New newsletter lead from a@b.com", e.Subject)
}
