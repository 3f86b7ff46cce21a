package subscriber

import (
	"context"
	"strings"

	"aiconsult/internal/domain"
	"aiconsult/internal/repository"
)

// Store is the subscriber persistence the service needs.
type Store interface {
	Create(ctx context.Context, s *domain.EmailSubscriber) error
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Subscribe records a newsletter signup. A repeated email surfaces as
// ErrAlreadySubscribed, which callers treat as informational rather
// than a failure.
func (s *Service) Subscribe(ctx context.Context, req SubscribeRequest) (*domain.EmailSubscriber, error) {
	sub := &domain.EmailSubscriber{
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		Name:       strings.TrimSpace(req.Name),
		RememberMe: req.RememberMe,
		Source:     req.Source,
	}

	if err := s.store.Create(ctx, sub); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrAlreadySubscribed
		}
		return nil, err
	}

	return sub, nil
}
