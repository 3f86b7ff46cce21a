package domain

import "time"

// ModalType identifies which form variant produced a submission.
type ModalType string

const (
	ModalQuickContact         ModalType = "quick_contact"
	ModalDetailedConsultation ModalType = "detailed_consultation"
	ModalNewsletter           ModalType = "newsletter"
	ModalGeneral              ModalType = "general"
	ModalAutomation           ModalType = "automation"
	ModalConsulting           ModalType = "consulting"
)

// Valid reports whether t is one of the recognized variants.
func (t ModalType) Valid() bool {
	switch t {
	case ModalQuickContact, ModalDetailedConsultation, ModalNewsletter,
		ModalGeneral, ModalAutomation, ModalConsulting:
		return true
	}
	return false
}

// RequestStatus is the lifecycle tag on a stored request. Only "new" is
// assigned here; progression happens outside this system.
type RequestStatus string

const StatusNew RequestStatus = "new"

// ConsultationRequest is a persisted lead-capture submission. Records are
// write-only from the site's perspective: nothing here reads them back.
type ConsultationRequest struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"required"`
	Email     string    `json:"email" validate:"required,email"`
	ModalType ModalType `json:"modal_type" validate:"required"`
	// ServiceType mirrors ModalType unless the variant carries a more
	// specific service tag (automation, consulting).
	ServiceType            string        `json:"service_type"`
	Company                string        `json:"company,omitempty"`
	Phone                  string        `json:"phone,omitempty"`
	ProjectDescription     string        `json:"project_description,omitempty"`
	Goals                  string        `json:"goals,omitempty"`
	CurrentChallenges      string        `json:"current_challenges,omitempty"`
	BudgetRange            string        `json:"budget_range,omitempty"`
	Timeline               string        `json:"timeline,omitempty"`
	PreferredContactMethod string        `json:"preferred_contact_method,omitempty"`
	ReferralInfo           string        `json:"referral_info,omitempty"`
	Source                 string        `json:"source,omitempty"`
	Status                 RequestStatus `json:"status"`
	// SubmissionToken is minted once per modal-open session and unique at
	// the store layer, so a double-submit cannot create a second record.
	SubmissionToken string `json:"-"`
	// Notified is flipped best-effort after the lead email goes out; a
	// false value on an old record means the notify call failed.
	Notified  bool      `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
