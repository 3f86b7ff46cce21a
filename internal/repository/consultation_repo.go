package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"aiconsult/internal/domain"
)

type ConsultationRepository struct {
	db *gorm.DB
}

func NewConsultationRepository(db *gorm.DB) *ConsultationRepository {
	return &ConsultationRepository{db: db}
}

type consultationModel struct {
	ID                     string    `gorm:"column:id;primaryKey"`
	Name                   string    `gorm:"column:name"`
	Email                  string    `gorm:"column:email"`
	ModalType              string    `gorm:"column:modal_type"`
	ServiceType            string    `gorm:"column:service_type"`
	Company                *string   `gorm:"column:company"`
	Phone                  *string   `gorm:"column:phone"`
	ProjectDescription     *string   `gorm:"column:project_description"`
	Goals                  *string   `gorm:"column:goals"`
	CurrentChallenges      *string   `gorm:"column:current_challenges"`
	BudgetRange            *string   `gorm:"column:budget_range"`
	Timeline               *string   `gorm:"column:timeline"`
	PreferredContactMethod *string   `gorm:"column:preferred_contact_method"`
	ReferralInfo           *string   `gorm:"column:referral_info"`
	Source                 *string   `gorm:"column:source"`
	Status                 string    `gorm:"column:status"`
	SubmissionToken        string    `gorm:"column:submission_token;uniqueIndex:idx_consultations_token"`
	Notified               bool      `gorm:"column:notified"`
	CreatedAt              time.Time `gorm:"column:created_at"`
	UpdatedAt              time.Time `gorm:"column:updated_at"`
}

func (consultationModel) TableName() string { return "consultation_requests" }

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	v := s
	return &v
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func toDomainConsultation(m consultationModel) *domain.ConsultationRequest {
	return &domain.ConsultationRequest{
		ID:                     m.ID,
		Name:                   m.Name,
		Email:                  m.Email,
		ModalType:              domain.ModalType(m.ModalType),
		ServiceType:            m.ServiceType,
		Company:                strVal(m.Company),
		Phone:                  strVal(m.Phone),
		ProjectDescription:     strVal(m.ProjectDescription),
		Goals:                  strVal(m.Goals),
		CurrentChallenges:      strVal(m.CurrentChallenges),
		BudgetRange:            strVal(m.BudgetRange),
		Timeline:               strVal(m.Timeline),
		PreferredContactMethod: strVal(m.PreferredContactMethod),
		ReferralInfo:           strVal(m.ReferralInfo),
		Source:                 strVal(m.Source),
		Status:                 domain.RequestStatus(m.Status),
		SubmissionToken:        m.SubmissionToken,
		Notified:               m.Notified,
		CreatedAt:              m.CreatedAt,
		UpdatedAt:              m.UpdatedAt,
	}
}

func toConsultationModel(c *domain.ConsultationRequest) consultationModel {
	return consultationModel{
		ID:                     c.ID,
		Name:                   c.Name,
		Email:                  c.Email,
		ModalType:              string(c.ModalType),
		ServiceType:            c.ServiceType,
		Company:                strPtr(c.Company),
		Phone:                  strPtr(c.Phone),
		ProjectDescription:     strPtr(c.ProjectDescription),
		Goals:                  strPtr(c.Goals),
		CurrentChallenges:      strPtr(c.CurrentChallenges),
		BudgetRange:            strPtr(c.BudgetRange),
		Timeline:               strPtr(c.Timeline),
		PreferredContactMethod: strPtr(c.PreferredContactMethod),
		ReferralInfo:           strPtr(c.ReferralInfo),
		Source:                 strPtr(c.Source),
		Status:                 string(c.Status),
		SubmissionToken:        c.SubmissionToken,
		Notified:               c.Notified,
		CreatedAt:              c.CreatedAt,
		UpdatedAt:              c.UpdatedAt,
	}
}

func (r *ConsultationRepository) Create(ctx context.Context, c *domain.ConsultationRequest) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Status == "" {
		c.Status = domain.StatusNew
	}
	m := toConsultationModel(c)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainConsultation(m)
	return nil
}

// MarkNotified records that the lead email for this request went out.
func (r *ConsultationRepository) MarkNotified(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&consultationModel{}).
		Where("id = ?", id).
		UpdateColumn("notified", true).Error
}
