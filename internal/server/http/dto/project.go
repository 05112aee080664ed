package dto

import "time"

// ProjectImagePayload references one hosted image.
type ProjectImagePayload struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// ProjectRequest creates or replaces a portfolio project.
type ProjectRequest struct {
	Title          string                `json:"title"`
	Category       string                `json:"category,omitempty"`
	Description    string                `json:"description,omitempty"`
	TechnologyUsed string                `json:"technologyUsed,omitempty"`
	ClientIndustry string                `json:"clientIndustry,omitempty"`
	Icon           string                `json:"icon,omitempty"`
	Link           string                `json:"link,omitempty"`
	Images         []ProjectImagePayload `json:"images,omitempty"`
}

// ProjectResponse is the portfolio project view.
type ProjectResponse struct {
	ID             int64                 `json:"id"`
	Title          string                `json:"title"`
	Category       string                `json:"category,omitempty"`
	Description    string                `json:"description,omitempty"`
	TechnologyUsed string                `json:"technologyUsed,omitempty"`
	ClientIndustry string                `json:"clientIndustry,omitempty"`
	Icon           string                `json:"icon,omitempty"`
	Link           string                `json:"link,omitempty"`
	Images         []ProjectImagePayload `json:"images,omitempty"`
	CreatedAt      time.Time             `json:"createdAt"`
	UpdatedAt      time.Time             `json:"updatedAt"`
}
