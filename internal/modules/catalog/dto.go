package catalog

// CreateToolRequest is the body for POST /tools.
type CreateToolRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	WebsiteURL  string   `json:"website_url" binding:"required,url"`
	IconURL     string   `json:"icon_url"`
	Tags        []string `json:"tags"`
	IsFeatured  bool     `json:"is_featured"`
}

// UpdateToolRequest is the body for PUT /tools/:id.
type UpdateToolRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	WebsiteURL  string   `json:"website_url" binding:"required,url"`
	IconURL     string   `json:"icon_url"`
	Tags        []string `json:"tags"`
	IsFeatured  bool     `json:"is_featured"`
}

// DownloadResponse carries the public URL the browser should fetch.
type DownloadResponse struct {
	URL string `json:"url"`
}
