package lead

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aiconsult/internal/domain"
)

func newModal(kind domain.ModalType, source, initialEmail string) ModalState {
	return ModalState{
		IsOpen:          true,
		ModalType:       kind,
		Source:          source,
		InitialEmail:    initialEmail,
		SubmissionToken: "tok-1",
	}
}

func TestForm_SeedsInitialEmail(t *testing.T) {
	f := NewForm(newModal(domain.ModalNewsletter, "footer", "a@b.com"))

	assert.Equal(t, "a@b.com", f.Value("email"))
	assert.True(t, f.EmailReadOnly())
}

func TestForm_PreFilledEmailIsReadOnly(t *testing.T) {
	f := NewForm(newModal(domain.ModalNewsletter, "footer", "a@b.com"))

	err := f.Set("email", "other@b.com")
	assert.ErrorIs(t, err, ErrReadOnlyField)
	assert.Equal(t, "a@b.com", f.Value("email"))
}

func TestForm_SetRejectsUnknownField(t *testing.T) {
	f := NewForm(newModal(domain.ModalQuickContact, "hero", ""))

	err := f.Set("budget_range", "10k")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestForm_SetDoesNotValidate(t *testing.T) {
	f := NewForm(newModal(domain.ModalQuickContact, "hero", ""))

	// malformed value is accepted; validation happens at submit time
	require.NoError(t, f.Set("email", "not-an-email"))
	assert.Equal(t, "not-an-email", f.Value("email"))
}

func TestForm_NextBlockedByMissingRequiredFields(t *testing.T) {
	f := NewForm(newModal(domain.ModalDetailedConsultation, "services", ""))
	require.NoError(t, f.Set("email", "x@y.com"))
	// name left empty

	problems, err := f.Next()
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "required", problems["name"])
	assert.Equal(t, 0, f.Step())
}

func TestForm_NextAdvancesWhenStepValid(t *testing.T) {
	f := NewForm(newModal(domain.ModalDetailedConsultation, "services", ""))
	require.NoError(t, f.Set("name", "Dana"))
	require.NoError(t, f.Set("email", "dana@co.com"))

	_, err := f.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, f.Step())

	// step index never passes the last step
	require.NoError(t, f.Set("project_description", "automate reporting"))
	_, err = f.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, f.Step())
}

func TestForm_BackClampsAtFirstStep(t *testing.T) {
	f := NewForm(newModal(domain.ModalDetailedConsultation, "services", ""))

	assert.False(t, f.CanGoBack())
	f.Back()
	assert.Equal(t, 0, f.Step())

	require.NoError(t, f.Set("name", "Dana"))
	require.NoError(t, f.Set("email", "dana@co.com"))
	_, err := f.Next()
	require.NoError(t, err)

	assert.True(t, f.CanGoBack())
	f.Back()
	assert.Equal(t, 0, f.Step())
}

func TestForm_ValidateChecksEmailSyntax(t *testing.T) {
	f := NewForm(newModal(domain.ModalQuickContact, "hero", ""))
	require.NoError(t, f.Set("name", "Dana"))
	require.NoError(t, f.Set("email", "not-an-email"))
	require.NoError(t, f.Set("message", "hello"))

	problems := f.Validate()
	assert.Equal(t, "email", problems["email"])
}

func TestForm_NewsletterNeedsOnlyEmail(t *testing.T) {
	f := NewForm(newModal(domain.ModalNewsletter, "footer", "a@b.com"))

	assert.Nil(t, f.Validate())
}

func TestForm_ResetRestoresInitialValues(t *testing.T) {
	f := NewForm(newModal(domain.ModalQuickContact, "hero", ""))
	require.NoError(t, f.Set("name", "Dana"))
	require.NoError(t, f.Set("email", "dana@co.com"))
	require.NoError(t, f.Set("message", "hello"))

	f.Reset()

	assert.Empty(t, f.Value("name"))
	assert.Empty(t, f.Value("email"))
	assert.Empty(t, f.Value("message"))
	assert.Equal(t, 0, f.Step())
	assert.False(t, f.Success())
}

func TestForm_ResetReseedsInitialEmail(t *testing.T) {
	f := NewForm(newModal(domain.ModalNewsletter, "footer", "a@b.com"))
	require.NoError(t, f.Set("name", "Dana"))

	f.Reset()

	assert.Empty(t, f.Value("name"))
	assert.Equal(t, "a@b.com", f.Value("email"))
}
