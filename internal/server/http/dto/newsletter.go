package dto

import "time"

// SubscribeRequest joins the newsletter list.
type SubscribeRequest struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// UnsubscribeRequest leaves the list by email.
type UnsubscribeRequest struct {
	Email string `json:"email"`
}

// SubscriberUpdateRequest edits a recipient from the dashboard.
type SubscriberUpdateRequest struct {
	Name       string `json:"name"`
	Subscribed bool   `json:"subscribed"`
}

// SubscriberResponse is the recipient view for the dashboard.
type SubscriberResponse struct {
	ID         int64     `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name,omitempty"`
	Subscribed bool      `json:"subscribed"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NewsletterRequest creates or edits an issue.
type NewsletterRequest struct {
	Subject string `json:"subject"`
	Content string `json:"content"`
}

// NewsletterResponse is the issue view.
type NewsletterResponse struct {
	ID        int64      `json:"id"`
	Subject   string     `json:"subject"`
	Content   string     `json:"content"`
	Status    string     `json:"status"`
	SentAt    *time.Time `json:"sentAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}
