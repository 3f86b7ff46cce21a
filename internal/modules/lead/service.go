package lead

import (
	"context"
	"fmt"

	"aiconsult/internal/domain"
	"aiconsult/internal/repository"
)

// Store is the consultation-request persistence the service needs.
type Store interface {
	Create(ctx context.Context, c *domain.ConsultationRequest) error
	MarkNotified(ctx context.Context, id string) error
}

// Service runs the submission pipeline: persist the record, then call
// the notification function. The two steps are sequential, not a
// transaction; a failed notify leaves the record in place.
type Service struct {
	store    Store
	notifier Notifier
}

func NewService(store Store, notifier Notifier) *Service {
	return &Service{
		store:    store,
		notifier: notifier,
	}
}

// buildRequest maps form values plus the modal context onto a record.
// The ad hoc message doubles as the project description when no
// dedicated one was entered, matching what gets persisted vs. what only
// travels in the notification payload.
func buildRequest(f *Form, modal ModalState) *domain.ConsultationRequest {
	v := f.Values()
	projectDescription := v["project_description"]
	if projectDescription == "" {
		projectDescription = v["message"]
	}
	return &domain.ConsultationRequest{
		Name:                   v["name"],
		Email:                  v["email"],
		ModalType:              modal.ModalType,
		ServiceType:            f.Config().ServiceType,
		Company:                v["company"],
		Phone:                  v["phone"],
		ProjectDescription:     projectDescription,
		Goals:                  v["goals"],
		CurrentChallenges:      v["current_challenges"],
		BudgetRange:            v["budget_range"],
		Timeline:               v["timeline"],
		PreferredContactMethod: v["preferred_contact_method"],
		ReferralInfo:           v["referral_info"],
		Source:                 modal.Source,
		Status:                 domain.StatusNew,
		SubmissionToken:        modal.SubmissionToken,
	}
}

func buildPayload(f *Form, req *domain.ConsultationRequest) Payload {
	return Payload{
		Name:                   req.Name,
		Email:                  req.Email,
		ServiceType:            req.ServiceType,
		ModalType:              string(req.ModalType),
		Source:                 req.Source,
		Company:                req.Company,
		Phone:                  req.Phone,
		ProjectDescription:     req.ProjectDescription,
		Goals:                  req.Goals,
		CurrentChallenges:      req.CurrentChallenges,
		BudgetRange:            req.BudgetRange,
		Timeline:               req.Timeline,
		PreferredContactMethod: req.PreferredContactMethod,
		ReferralInfo:           req.ReferralInfo,
		Message:                f.Value("message"),
	}
}

// Submit runs one submission attempt for the form.
//
//	Idle -> Submitting -> {PersistFailed, NotifyFailed, Succeeded}
//
// Validation failures never reach the store. A persist failure aborts
// before any notify. A notify failure is reported even though the
// record is already persisted; there is no rollback and no automatic
// retry at any layer.
func (s *Service) Submit(ctx context.Context, f *Form, modal ModalState) (*domain.ConsultationRequest, error) {
	if problems := f.Validate(); problems != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, problems)
	}

	f.loading = true
	defer func() { f.loading = false }()

	req := buildRequest(f, modal)

	if err := s.store.Create(ctx, req); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrAlreadySubmitted
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if err := s.notifier.SendLeadEmail(ctx, buildPayload(f, req)); err != nil {
		return req, fmt.Errorf("%w: %v", ErrNotification, err)
	}

	// best-effort flag; the submission already succeeded
	_ = s.store.MarkNotified(ctx, req.ID)

	f.success = true
	return req, nil
}
