package mailer

// LeadEmailPayload is the JSON body of POST /send-lead-email. It mirrors
// the submission payload the site sends, including the ad hoc message
// text that is never persisted.
type LeadEmailPayload struct {
	Name                   string `json:"name"`
	Email                  string `json:"email" binding:"required,email"`
	ServiceType            string `json:"service_type"`
	ModalType              string `json:"modal_type"`
	Source                 string `json:"source"`
	Company                string `json:"company"`
	Phone                  string `json:"phone"`
	ProjectDescription     string `json:"project_description"`
	Goals                  string `json:"goals"`
	CurrentChallenges      string `json:"current_challenges"`
	BudgetRange            string `json:"budget_range"`
	Timeline               string `json:"timeline"`
	PreferredContactMethod string `json:"preferred_contact_method"`
	ReferralInfo           string `json:"referral_info"`
	Message                string `json:"message"`
}
