package lead

import "aiconsult/internal/domain"

// FieldKind tells the renderer which input to use.
type FieldKind string

const (
	KindText     FieldKind = "text"
	KindEmail    FieldKind = "email"
	KindTextarea FieldKind = "textarea"
)

// FieldDescriptor describes one form field of a variant.
type FieldDescriptor struct {
	Name     string
	Label    string
	Kind     FieldKind
	Required bool
	Step     int
}

// VariantConfig is the full form configuration for one modal variant.
type VariantConfig struct {
	Title       string
	Description string
	// ServiceType is what gets persisted; it mirrors the modal type
	// except for the variants carrying a more specific service tag.
	ServiceType string
	Steps       int
	Fields      []FieldDescriptor
}

func contactFields() []FieldDescriptor {
	return []FieldDescriptor{
		{Name: "name", Label: "Your Name", Kind: KindText, Required: true},
		{Name: "email", Label: "Email Address", Kind: KindEmail, Required: true},
		{Name: "message", Label: "Your message...", Kind: KindTextarea, Required: true},
	}
}

func consultationFields() []FieldDescriptor {
	return []FieldDescriptor{
		{Name: "name", Label: "Your Name", Kind: KindText, Required: true, Step: 0},
		{Name: "email", Label: "Email Address", Kind: KindEmail, Required: true, Step: 0},
		{Name: "company", Label: "Company (optional)", Kind: KindText, Step: 1},
		{Name: "phone", Label: "Phone (optional)", Kind: KindText, Step: 1},
		{Name: "project_description", Label: "Describe your project or needs", Kind: KindTextarea, Required: true, Step: 1},
		{Name: "goals", Label: "What are your main goals?", Kind: KindTextarea, Step: 1},
		{Name: "current_challenges", Label: "Current challenges (optional)", Kind: KindTextarea, Step: 1},
		{Name: "budget_range", Label: "Budget Range (optional)", Kind: KindText, Step: 1},
		{Name: "timeline", Label: "Timeline (optional)", Kind: KindText, Step: 1},
		{Name: "preferred_contact_method", Label: "Preferred contact method (optional)", Kind: KindText, Step: 1},
		{Name: "referral_info", Label: "How did you hear about us? (optional)", Kind: KindText, Step: 1},
	}
}

// ConfigFor maps every recognized modal variant to its form
// configuration. The switch is exhaustive over domain.ModalType.
func ConfigFor(t domain.ModalType) VariantConfig {
	switch t {
	case domain.ModalQuickContact:
		return VariantConfig{
			Title:       "Quick Contact",
			Description: "Send us a quick message and we'll get back to you!",
			ServiceType: string(domain.ModalQuickContact),
			Steps:       1,
			Fields:      contactFields(),
		}
	case domain.ModalDetailedConsultation:
		return VariantConfig{
			Title:       "AI Consultation",
			Description: "Let's discuss your AI automation needs in detail.",
			ServiceType: string(domain.ModalDetailedConsultation),
			Steps:       2,
			Fields:      consultationFields(),
		}
	case domain.ModalNewsletter:
		return VariantConfig{
			Title:       "Newsletter Signup",
			Description: "Stay updated with the latest AI automation tips and insights.",
			ServiceType: string(domain.ModalNewsletter),
			Steps:       1,
			Fields: []FieldDescriptor{
				{Name: "name", Label: "Your Name", Kind: KindText},
				{Name: "email", Label: "Email Address", Kind: KindEmail, Required: true},
			},
		}
	case domain.ModalAutomation:
		cfg := ConfigFor(domain.ModalDetailedConsultation)
		cfg.Title = "Automation Consultation"
		cfg.ServiceType = string(domain.ModalAutomation)
		return cfg
	case domain.ModalConsulting:
		cfg := ConfigFor(domain.ModalDetailedConsultation)
		cfg.Title = "Strategy Consultation"
		cfg.ServiceType = string(domain.ModalConsulting)
		return cfg
	default: // domain.ModalGeneral
		return VariantConfig{
			Title:       "Contact Us",
			Description: "Get in touch with us for any inquiries.",
			ServiceType: string(domain.ModalGeneral),
			Steps:       1,
			Fields:      contactFields(),
		}
	}
}

// FieldsForStep returns the descriptors rendered on one step.
func (v VariantConfig) FieldsForStep(step int) []FieldDescriptor {
	out := make([]FieldDescriptor, 0, len(v.Fields))
	for _, f := range v.Fields {
		if f.Step == step {
			out = append(out, f)
		}
	}
	return out
}

// Field looks up a descriptor by name.
func (v VariantConfig) Field(name string) (FieldDescriptor, bool) {
	for _, f := range v.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldDescriptor{}, false
}
