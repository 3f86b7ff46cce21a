package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"aiconsult/internal/domain"
)

type BlueprintRepository struct {
	db *gorm.DB
}

func NewBlueprintRepository(db *gorm.DB) *BlueprintRepository {
	return &BlueprintRepository{db: db}
}

type blueprintModel struct {
	ID            string    `gorm:"column:id;primaryKey"`
	Title         string    `gorm:"column:title"`
	Description   string    `gorm:"column:description"`
	JSONFilePath  string    `gorm:"column:json_file_path"`
	FileSizeKB    *int      `gorm:"column:file_size_kb"`
	DownloadCount int       `gorm:"column:download_count"`
	Category      *string   `gorm:"column:category"`
	IsFeatured    bool      `gorm:"column:is_featured"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (blueprintModel) TableName() string { return "blueprints" }

func toDomainBlueprint(m blueprintModel) *domain.Blueprint {
	var category string
	if m.Category != nil {
		category = *m.Category
	}
	return &domain.Blueprint{
		ID:            m.ID,
		Title:         m.Title,
		Description:   m.Description,
		JSONFilePath:  m.JSONFilePath,
		FileSizeKB:    m.FileSizeKB,
		DownloadCount: m.DownloadCount,
		Category:      category,
		IsFeatured:    m.IsFeatured,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toBlueprintModel(b *domain.Blueprint) blueprintModel {
	var category *string
	if b.Category != "" {
		v := b.Category
		category = &v
	}
	return blueprintModel{
		ID:            b.ID,
		Title:         b.Title,
		Description:   b.Description,
		JSONFilePath:  b.JSONFilePath,
		FileSizeKB:    b.FileSizeKB,
		DownloadCount: b.DownloadCount,
		Category:      category,
		IsFeatured:    b.IsFeatured,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (r *BlueprintRepository) Create(ctx context.Context, b *domain.Blueprint) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	m := toBlueprintModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBlueprint(m)
	return nil
}

func (r *BlueprintRepository) GetByID(ctx context.Context, id string) (*domain.Blueprint, error) {
	var m blueprintModel
	tx := r.db.WithContext(ctx).First(&m, "id = ?", id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBlueprint(m), nil
}

// List returns blueprints with featured entries first, then newest.
func (r *BlueprintRepository) List(ctx context.Context) ([]domain.Blueprint, error) {
	var models []blueprintModel
	tx := r.db.WithContext(ctx).
		Order("is_featured DESC").
		Order("created_at DESC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Blueprint, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainBlueprint(m))
	}
	return out, nil
}

// IncrementDownloadCount bumps the counter in a single UPDATE so
// concurrent downloads never lose an increment.
func (r *BlueprintRepository) IncrementDownloadCount(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).
		Model(&blueprintModel{}).
		Where("id = ?", id).
		UpdateColumn("download_count", gorm.Expr("download_count + ?", 1))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
