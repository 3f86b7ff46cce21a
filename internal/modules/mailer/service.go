package mailer

import (
	"fmt"
	"log"
	"net/smtp"

	"aiconsult/internal/config"
)

// Service sends lead emails over SMTP. With Email.Enabled=false it only
// logs, which keeps local development and tests offline.
type Service struct {
	cfg *config.EmailConfig
}

func NewService(cfg *config.EmailConfig) *Service {
	return &Service{cfg: cfg}
}

// SendLeadEmails delivers the submitter confirmation and the admin
// alert for one submission. Both must succeed.
func (s *Service) SendLeadEmails(p LeadEmailPayload) error {
	confirmation := composeConfirmation(p, s.cfg.FromName)
	if err := s.send(confirmation); err != nil {
		return fmt.Errorf("confirmation email: %w", err)
	}

	alert := composeAdminAlert(p, s.cfg.AdminEmail)
	if err := s.send(alert); err != nil {
		return fmt.Errorf("admin email: %w", err)
	}

	return nil
}

func (s *Service) send(e Email) error {
	if !s.cfg.Enabled {
		log.Printf("[EMAIL] would send to=%s subject=%q", e.To, e.Subject)
		return nil
	}

	if s.cfg.SMTPHost == "" || s.cfg.Username == "" || s.cfg.Password == "" {
		return fmt.Errorf("email service not properly configured")
	}

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.SMTPHost)
	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)

	msg := fmt.Sprintf(
		"From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n\r\n%s",
		s.cfg.FromName, s.cfg.FromEmail, e.To, e.Subject, e.Body,
	)

	return smtp.SendMail(addr, auth, s.cfg.FromEmail, []string{e.To}, []byte(msg))
}
