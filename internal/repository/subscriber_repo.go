package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"aiconsult/internal/domain"
)

type SubscriberRepository struct {
	db *gorm.DB
}

func NewSubscriberRepository(db *gorm.DB) *SubscriberRepository {
	return &SubscriberRepository{db: db}
}

type subscriberModel struct {
	ID           string    `gorm:"column:id;primaryKey"`
	Email        string    `gorm:"column:email;uniqueIndex:idx_subscribers_email"`
	Name         *string   `gorm:"column:name"`
	RememberMe   bool      `gorm:"column:remember_me"`
	IsVerified   bool      `gorm:"column:is_verified"`
	Source       *string   `gorm:"column:source"`
	SubscribedAt time.Time `gorm:"column:subscribed_at"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (subscriberModel) TableName() string { return "email_subscribers" }

func toDomainSubscriber(m subscriberModel) *domain.EmailSubscriber {
	var name, source string
	if m.Name != nil {
		name = *m.Name
	}
	if m.Source != nil {
		source = *m.Source
	}
	return &domain.EmailSubscriber{
		ID:           m.ID,
		Email:        m.Email,
		Name:         name,
		RememberMe:   m.RememberMe,
		IsVerified:   m.IsVerified,
		Source:       source,
		SubscribedAt: m.SubscribedAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toSubscriberModel(s *domain.EmailSubscriber) subscriberModel {
	var name, source *string
	if s.Name != "" {
		v := s.Name
		name = &v
	}
	if s.Source != "" {
		v := s.Source
		source = &v
	}
	return subscriberModel{
		ID:           s.ID,
		Email:        s.Email,
		Name:         name,
		RememberMe:   s.RememberMe,
		IsVerified:   s.IsVerified,
		Source:       source,
		SubscribedAt: s.SubscribedAt,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func (r *SubscriberRepository) Create(ctx context.Context, s *domain.EmailSubscriber) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.SubscribedAt.IsZero() {
		s.SubscribedAt = time.Now()
	}
	m := toSubscriberModel(s)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainSubscriber(m)
	return nil
}

func (r *SubscriberRepository) GetByEmail(ctx context.Context, email string) (*domain.EmailSubscriber, error) {
	var m subscriberModel
	tx := r.db.WithContext(ctx).First(&m, "email = ?", email)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainSubscriber(m), nil
}
