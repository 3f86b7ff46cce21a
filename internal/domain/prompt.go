package domain

import "time"

// Prompt is an entry in the public prompt library.
type Prompt struct {
	ID          string     `json:"id"`
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description" validate:"required"`
	Content     string     `json:"content" validate:"required"`
	Category    string     `json:"category" validate:"required"`
	Author      string     `json:"author" validate:"required"`
	Tags        StringList `json:"tags,omitempty"`
	IsPublic    bool       `json:"is_public"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
