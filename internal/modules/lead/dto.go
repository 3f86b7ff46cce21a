package lead

// SubmitConsultationRequest is the body of POST /consultations. The
// accepted field set depends on modal_type; values for fields the
// variant does not render are ignored.
type SubmitConsultationRequest struct {
	ModalType string `json:"modal_type" binding:"required"`
	Source    string `json:"source"`
	// SubmissionToken lets the browser dedupe a double-submit. When
	// absent a fresh one is minted and the request is not deduped.
	SubmissionToken string `json:"submission_token"`

	Name                   string `json:"name"`
	Email                  string `json:"email"`
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

func (r *SubmitConsultationRequest) fieldValues() map[string]string {
	return map[string]string{
		"name":                     r.Name,
		"email":                    r.Email,
		"company":                  r.Company,
		"phone":                    r.Phone,
		"project_description":      r.ProjectDescription,
		"goals":                    r.Goals,
		"current_challenges":       r.CurrentChallenges,
		"budget_range":             r.BudgetRange,
		"timeline":                 r.Timeline,
		"preferred_contact_method": r.PreferredContactMethod,
		"referral_info":            r.ReferralInfo,
		"message":                  r.Message,
	}
}
