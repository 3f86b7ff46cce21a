package lead

import (
	"fmt"

	"aiconsult/internal/pkg/validator"
)

// Form holds the field values and step position for one modal session.
// It is re-created whenever the modal transitions from closed to open.
type Form struct {
	cfg    VariantConfig
	modal  ModalState
	values map[string]string
	step   int

	loading bool
	success bool
}

// NewForm builds a form for the active modal configuration, seeding the
// email field from ModalState.InitialEmail when present.
func NewForm(modal ModalState) *Form {
	f := &Form{
		cfg:    ConfigFor(modal.ModalType),
		modal:  modal,
		values: make(map[string]string),
	}
	if modal.InitialEmail != "" {
		f.values["email"] = modal.InitialEmail
	}
	return f
}

// Config returns the variant configuration driving this form.
func (f *Form) Config() VariantConfig { return f.cfg }

// Set assigns exactly one field. It never validates as a side effect;
// validation happens on step advance and at submit time.
func (f *Form) Set(name, value string) error {
	if _, ok := f.cfg.Field(name); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	if name == "email" && f.modal.InitialEmail != "" {
		return ErrReadOnlyField
	}
	f.values[name] = value
	return nil
}

// Value returns the current value of a field.
func (f *Form) Value(name string) string { return f.values[name] }

// Values returns a copy of all field values.
func (f *Form) Values() map[string]string {
	out := make(map[string]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

// EmailReadOnly reports whether the email field was pre-filled at open
// time and is therefore locked.
func (f *Form) EmailReadOnly() bool { return f.modal.InitialEmail != "" }

// Step returns the current step index.
func (f *Form) Step() int { return f.step }

// CanGoBack is false on the first step, where the back control is
// disabled.
func (f *Form) CanGoBack() bool { return f.step > 0 }

// Next advances to the following step. It is blocked when a required
// field of the current step is empty or malformed; the step index never
// passes the last step.
func (f *Form) Next() (map[string]string, error) {
	if problems := f.validateStep(f.step); len(problems) > 0 {
		return problems, ErrValidation
	}
	if f.step < f.cfg.Steps-1 {
		f.step++
	}
	return nil, nil
}

// Back always succeeds and clamps at the first step.
func (f *Form) Back() {
	if f.step > 0 {
		f.step--
	}
}

// Validate checks every required field of every step plus email syntax.
// It returns nil when the form is ready to submit.
func (f *Form) Validate() map[string]string {
	problems := make(map[string]string)
	for step := 0; step < f.cfg.Steps; step++ {
		for k, v := range f.validateStep(step) {
			problems[k] = v
		}
	}
	if len(problems) == 0 {
		return nil
	}
	return problems
}

func (f *Form) validateStep(step int) map[string]string {
	problems := make(map[string]string)
	for _, fd := range f.cfg.FieldsForStep(step) {
		v := f.values[fd.Name]
		if fd.Required && v == "" {
			problems[fd.Name] = "required"
			continue
		}
		if fd.Kind == KindEmail && v != "" && !validator.Email(v) {
			problems[fd.Name] = "email"
		}
	}
	return problems
}

// Loading reports whether a submission is in flight.
func (f *Form) Loading() bool { return f.loading }

// Success reports whether the submission reached its terminal success
// state. Only a fresh modal open restarts the cycle.
func (f *Form) Success() bool { return f.success }

// Reset restores every field to its initial value, with email re-seeded
// from the modal state, and clears the step and submission flags.
func (f *Form) Reset() {
	f.values = make(map[string]string)
	if f.modal.InitialEmail != "" {
		f.values["email"] = f.modal.InitialEmail
	}
	f.step = 0
	f.loading = false
	f.success = false
}
