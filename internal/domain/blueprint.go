package domain

import "time"

// Blueprint is a downloadable automation workflow file.
type Blueprint struct {
	ID            string    `json:"id"`
	Title         string    `json:"title" validate:"required"`
	Description   string    `json:"description" validate:"required"`
	JSONFilePath  string    `json:"json_file_path" validate:"required"`
	FileSizeKB    *int      `json:"file_size_kb,omitempty"`
	DownloadCount int       `json:"download_count"`
	Category      string    `json:"category,omitempty"`
	IsFeatured    bool      `json:"is_featured"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
