package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"aiconsult/internal/domain"
)

type PromptRepository struct {
	db *gorm.DB
}

func NewPromptRepository(db *gorm.DB) *PromptRepository {
	return &PromptRepository{db: db}
}

type promptModel struct {
	ID          string            `gorm:"column:id;primaryKey"`
	Title       string            `gorm:"column:title"`
	Description string            `gorm:"column:description"`
	Content     string            `gorm:"column:content"`
	Category    string            `gorm:"column:category"`
	Author      string            `gorm:"column:author"`
	Tags        domain.StringList `gorm:"column:tags;type:text"`
	IsPublic    bool              `gorm:"column:is_public"`
	CreatedAt   time.Time         `gorm:"column:created_at"`
	UpdatedAt   time.Time         `gorm:"column:updated_at"`
}

func (promptModel) TableName() string { return "prompts" }

func toDomainPrompt(m promptModel) *domain.Prompt {
	return &domain.Prompt{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Content:     m.Content,
		Category:    m.Category,
		Author:      m.Author,
		Tags:        m.Tags,
		IsPublic:    m.IsPublic,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toPromptModel(p *domain.Prompt) promptModel {
	return promptModel{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Content:     p.Content,
		Category:    p.Category,
		Author:      p.Author,
		Tags:        p.Tags,
		IsPublic:    p.IsPublic,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (r *PromptRepository) Create(ctx context.Context, p *domain.Prompt) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	m := toPromptModel(p)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainPrompt(m)
	return nil
}

// ListPublic returns public prompts newest first, optionally filtered by
// category.
func (r *PromptRepository) ListPublic(ctx context.Context, category string) ([]domain.Prompt, error) {
	q := r.db.WithContext(ctx).
		Where("is_public = ?", true).
		Order("created_at DESC")
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var models []promptModel
	if tx := q.Find(&models); tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Prompt, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainPrompt(m))
	}
	return out, nil
}
