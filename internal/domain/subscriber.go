package domain

import "time"

// EmailSubscriber is a newsletter / blueprint-access signup. Email is
// unique at the store layer.
type EmailSubscriber struct {
	ID           string    `json:"id"`
	Email        string    `json:"email" validate:"required,email"`
	Name         string    `json:"name,omitempty"`
	RememberMe   bool      `json:"remember_me"`
	IsVerified   bool      `json:"is_verified"`
	Source       string    `json:"source,omitempty"`
	SubscribedAt time.Time `json:"subscribed_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
