package mailer

import (
	"fmt"
	"strings"
)

// Email is a composed message ready for delivery.
type Email struct {
	To      string
	Subject string
	Body    string
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// composeConfirmation builds the message sent back to the submitter.
// Newsletter signups get a welcome; everything else gets an inquiry
// receipt with a short summary.
func composeConfirmation(p LeadEmailPayload, fromName string) Email {
	if p.ServiceType == "newsletter" {
		who := p.Name
		if who == "" {
			who = p.Email
		}
		return Email{
			To:      p.Email,
			Subject: "Thanks for signing up for our newsletter!",
			Body: fmt.Sprintf(
				"Welcome, %s!\n\nYou've joined the %s newsletter. Stay tuned for insights and resources.\n",
				who, fromName,
			),
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Thank you, %s!\n\n", p.Name)
	fmt.Fprintf(&b, "We received your %s request. We'll be in touch soon!\n\n", p.ServiceType)
	b.WriteString("Summary:\n")
	fmt.Fprintf(&b, "  Email: %s\n", p.Email)
	fmt.Fprintf(&b, "  Company: %s\n", orDash(p.Company))
	fmt.Fprintf(&b, "  Phone: %s\n", orDash(p.Phone))
	fmt.Fprintf(&b, "  Project: %s\n", orDash(p.ProjectDescription))
	fmt.Fprintf(&b, "  Goals: %s\n", orDash(p.Goals))
	fmt.Fprintf(&b, "  Budget: %s\n", orDash(p.BudgetRange))
	fmt.Fprintf(&b, "\nTalk soon!\nThe %s Team\n", fromName)

	return Email{
		To:      p.Email,
		Subject: fmt.Sprintf("We received your %s inquiry!", p.ServiceType),
		Body:    b.String(),
	}
}

// composeAdminAlert builds the internal notification listing every
// submitted field.
func composeAdminAlert(p LeadEmailPayload, adminEmail string) Email {
	who := p.Name
	if who == "" {
		who = p.Email
	}

	var b strings.Builder
	fmt.Fprintf(&b, "New %s inquiry\n\n", p.ServiceType)
	fmt.Fprintf(&b, "  Name: %s\n", orDash(p.Name))
	fmt.Fprintf(&b, "  Email: %s\n", p.Email)
	fmt.Fprintf(&b, "  Company: %s\n", orDash(p.Company))
	fmt.Fprintf(&b, "  Phone: %s\n", orDash(p.Phone))
	fmt.Fprintf(&b, "  Project: %s\n", orDash(p.ProjectDescription))
	fmt.Fprintf(&b, "  Goals: %s\n", orDash(p.Goals))
	fmt.Fprintf(&b, "  Current Challenges: %s\n", orDash(p.CurrentChallenges))
	fmt.Fprintf(&b, "  Budget: %s\n", orDash(p.BudgetRange))
	fmt.Fprintf(&b, "  Timeline: %s\n", orDash(p.Timeline))
	fmt.Fprintf(&b, "  Preferred Contact: %s\n", orDash(p.PreferredContactMethod))
	fmt.Fprintf(&b, "  Referral Info: %s\n", orDash(p.ReferralInfo))
	fmt.Fprintf(&b, "  Message: %s\n", orDash(p.Message))
	fmt.Fprintf(&b, "  Source: %s\n", orDash(p.Source))

	return Email{
		To:      adminEmail,
		Subject: fmt.Sprintf("New %s lead from %s", p.ServiceType, who),
		Body:    b.String(),
	}
}
