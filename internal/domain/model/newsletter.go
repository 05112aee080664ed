package model

import "time"

// Subscriber is a newsletter recipient. UnsubscribeToken allows opting
// out from an email link without authentication.
type Subscriber struct {
	ID               int64
	Email            string
	Name             string
	UnsubscribeToken string
	Subscribed       bool
	CreatedAt        time.Time
}

// NewsletterStatus marks whether an issue has gone out.
type NewsletterStatus string

const (
	NewsletterStatusDraft NewsletterStatus = "draft"
	NewsletterStatusSent  NewsletterStatus = "sent"
)

// Newsletter is a stored issue, either a draft or a sent record.
type Newsletter struct {
	ID        int64
	Subject   string
	Content   string
	Status    NewsletterStatus
	SentAt    *time.Time
	CreatedAt time.Time
}
