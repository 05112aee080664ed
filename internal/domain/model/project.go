package model

import "time"

// ProjectImage references an image held by the external media store.
// PublicID is kept so the remote copy can be removed with the project.
type ProjectImage struct {
	URL      string
	PublicID string
}

// Project is a portfolio entry shown on the public site.
type Project struct {
	ID             int64
	Title          string
	Category       string
	Description    string
	TechnologyUsed string
	ClientIndustry string
	Icon           string
	Link           string
	Images         []ProjectImage
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
