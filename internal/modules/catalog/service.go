package catalog

import (
	"context"
	"log"

	"aiconsult/internal/domain"
	"aiconsult/internal/repository"
)

// PromptRepository lists the public prompt library.
type PromptRepository interface {
	ListPublic(ctx context.Context, category string) ([]domain.Prompt, error)
}

// ToolRepository is the tool directory storage.
type ToolRepository interface {
	Create(ctx context.Context, t *domain.Tool) error
	GetByID(ctx context.Context, id string) (*domain.Tool, error)
	List(ctx context.Context, f repository.ToolFilters) ([]domain.Tool, error)
	Update(ctx context.Context, t *domain.Tool) error
	Delete(ctx context.Context, id string) error
}

// BlueprintRepository is the blueprint download storage.
type BlueprintRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Blueprint, error)
	List(ctx context.Context) ([]domain.Blueprint, error)
	IncrementDownloadCount(ctx context.Context, id string) error
}

// FileResolver maps a stored object path to its public URL.
type FileResolver interface {
	PublicURL(objectPath string) string
}

type Service struct {
	prompts    PromptRepository
	tools      ToolRepository
	blueprints BlueprintRepository
	files      FileResolver
}

func NewService(
	prompts PromptRepository,
	tools ToolRepository,
	blueprints BlueprintRepository,
	files FileResolver,
) *Service {
	return &Service{
		prompts:    prompts,
		tools:      tools,
		blueprints: blueprints,
		files:      files,
	}
}

func (s *Service) ListPrompts(ctx context.Context, category string) ([]domain.Prompt, error) {
	return s.prompts.ListPublic(ctx, category)
}

func (s *Service) ListTools(ctx context.Context, f repository.ToolFilters) ([]domain.Tool, error) {
	return s.tools.List(ctx, f)
}

func (s *Service) CreateTool(ctx context.Context, req CreateToolRequest) (*domain.Tool, error) {
	t := &domain.Tool{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		WebsiteURL:  req.WebsiteURL,
		IconURL:     req.IconURL,
		Tags:        req.Tags,
		IsFeatured:  req.IsFeatured,
	}
	if err := s.tools.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) UpdateTool(ctx context.Context, id string, req UpdateToolRequest) (*domain.Tool, error) {
	t := &domain.Tool{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		WebsiteURL:  req.WebsiteURL,
		IconURL:     req.IconURL,
		Tags:        req.Tags,
		IsFeatured:  req.IsFeatured,
	}
	if err := s.tools.Update(ctx, t); err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.tools.GetByID(ctx, id)
}

func (s *Service) DeleteTool(ctx context.Context, id string) error {
	if err := s.tools.Delete(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) ListBlueprints(ctx context.Context) ([]domain.Blueprint, error) {
	return s.blueprints.List(ctx)
}

// DownloadBlueprint resolves the public file URL and bumps the download
// counter. The counter update is best-effort: a failed bump never
// blocks the download.
func (s *Service) DownloadBlueprint(ctx context.Context, id string) (string, error) {
	b, err := s.blueprints.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return "", ErrNotFound
		}
		return "", err
	}

	if err := s.blueprints.IncrementDownloadCount(ctx, id); err != nil {
		log.Printf("blueprint download count update failed id=%s err=%v", id, err)
	}

	return s.files.PublicURL(b.JSONFilePath), nil
}
