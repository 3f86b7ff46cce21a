package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"aiconsult/internal/domain"
)

type ToolRepository struct {
	db *gorm.DB
}

func NewToolRepository(db *gorm.DB) *ToolRepository {
	return &ToolRepository{db: db}
}

type toolModel struct {
	ID          string            `gorm:"column:id;primaryKey"`
	Name        string            `gorm:"column:name"`
	Description string            `gorm:"column:description"`
	Category    string            `gorm:"column:category"`
	WebsiteURL  string            `gorm:"column:website_url"`
	IconURL     *string           `gorm:"column:icon_url"`
	Tags        domain.StringList `gorm:"column:tags;type:text"`
	IsFeatured  bool              `gorm:"column:is_featured"`
	CreatedAt   time.Time         `gorm:"column:created_at"`
	UpdatedAt   time.Time         `gorm:"column:updated_at"`
}

func (toolModel) TableName() string { return "tools" }

func toDomainTool(m toolModel) *domain.Tool {
	var icon string
	if m.IconURL != nil {
		icon = *m.IconURL
	}
	return &domain.Tool{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Category:    m.Category,
		WebsiteURL:  m.WebsiteURL,
		IconURL:     icon,
		Tags:        m.Tags,
		IsFeatured:  m.IsFeatured,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toToolModel(t *domain.Tool) toolModel {
	var icon *string
	if t.IconURL != "" {
		v := t.IconURL
		icon = &v
	}
	return toolModel{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Category:    t.Category,
		WebsiteURL:  t.WebsiteURL,
		IconURL:     icon,
		Tags:        t.Tags,
		IsFeatured:  t.IsFeatured,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

type ToolFilters struct {
	Category string
	Featured bool
}

func (r *ToolRepository) Create(ctx context.Context, t *domain.Tool) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	m := toToolModel(t)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*t = *toDomainTool(m)
	return nil
}

func (r *ToolRepository) GetByID(ctx context.Context, id string) (*domain.Tool, error) {
	var m toolModel
	tx := r.db.WithContext(ctx).First(&m, "id = ?", id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainTool(m), nil
}

func (r *ToolRepository) List(ctx context.Context, f ToolFilters) ([]domain.Tool, error) {
	q := r.db.WithContext(ctx).Order("name ASC")
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Featured {
		q = q.Where("is_featured = ?", true)
	}

	var models []toolModel
	if tx := q.Find(&models); tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Tool, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainTool(m))
	}
	return out, nil
}

func (r *ToolRepository) Update(ctx context.Context, t *domain.Tool) error {
	m := toToolModel(t)
	tx := r.db.WithContext(ctx).
		Model(&toolModel{}).
		Where("id = ?", t.ID).
		Updates(map[string]any{
			"name":        m.Name,
			"description": m.Description,
			"category":    m.Category,
			"website_url": m.WebsiteURL,
			"icon_url":    m.IconURL,
			"tags":        m.Tags,
			"is_featured": m.IsFeatured,
			"updated_at":  time.Now(),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ToolRepository) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Delete(&toolModel{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
