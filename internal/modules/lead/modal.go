package lead

import (
	"github.com/google/uuid"

	"aiconsult/internal/domain"
)

// ModalState is the active modal configuration. A snapshot of it seeds
// every Form.
type ModalState struct {
	IsOpen       bool
	ModalType    domain.ModalType
	Source       string
	InitialEmail string
	// SubmissionToken is minted per Open call; the store enforces its
	// uniqueness so a double-submit within one modal session cannot
	// create two records.
	SubmissionToken string
}

// Orchestrator owns the modal state. There is exactly one per UI
// process, passed to whoever needs it; callers mutate it only through
// Open and Close. Not safe for concurrent use: all access is expected
// from the single UI event loop.
type Orchestrator struct {
	state ModalState
}

func NewOrchestrator() *Orchestrator {
	return &Orchestrator{
		state: ModalState{
			IsOpen:    false,
			ModalType: domain.ModalGeneral,
		},
	}
}

// Open replaces the whole configuration and opens the modal. The kind
// and source values are trusted; the last caller wins. initialEmail may
// be empty; when set, the email field of the form becomes read-only.
func (o *Orchestrator) Open(kind domain.ModalType, source, initialEmail string) {
	o.state = ModalState{
		IsOpen:          true,
		ModalType:       kind,
		Source:          source,
		InitialEmail:    initialEmail,
		SubmissionToken: uuid.NewString(),
	}
}

// Close hides the modal but keeps the rest of the configuration, so a
// render during the closing transition still sees the prior content.
func (o *Orchestrator) Close() {
	o.state.IsOpen = false
}

// State returns a snapshot of the current configuration.
func (o *Orchestrator) State() ModalState {
	return o.state
}
