package domain

import "time"

// Tool is an entry in the AI tool directory.
type Tool struct {
	ID          string     `json:"id"`
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description" validate:"required"`
	Category    string     `json:"category" validate:"required"`
	WebsiteURL  string     `json:"website_url" validate:"required,url"`
	IconURL     string     `json:"icon_url,omitempty"`
	Tags        StringList `json:"tags,omitempty"`
	IsFeatured  bool       `json:"is_featured"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
