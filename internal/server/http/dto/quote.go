package dto

import "time"

// QuoteRequestPayload is the public quote submission.
type QuoteRequestPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Service string `json:"service"`
	Message string `json:"message,omitempty"`
}

// QuoteStatusRequest sets a new conversation status.
type QuoteStatusRequest struct {
	Status string `json:"status"`
}

// QuoteAssignRequest hands a quote to an admin.
type QuoteAssignRequest struct {
	AdminID int64 `json:"adminId"`
}

// QuoteReplyRequest appends a reply to a quote thread.
type QuoteReplyRequest struct {
	Message string `json:"message"`
}

// QuoteReplyResponse is one thread entry.
type QuoteReplyResponse struct {
	ID          int64     `json:"id"`
	SenderEmail string    `json:"senderEmail"`
	SenderType  string    `json:"senderType"`
	Message     string    `json:"message"`
	RepliedAt   time.Time `json:"repliedAt"`
}

// QuoteResponse is the quote view with its reply thread.
type QuoteResponse struct {
	ID         int64                `json:"id"`
	Name       string               `json:"name"`
	Email      string               `json:"email"`
	Phone      string               `json:"phone,omitempty"`
	Service    string               `json:"service"`
	Message    string               `json:"message,omitempty"`
	Status     string               `json:"status"`
	AssignedTo *int64               `json:"assignedTo,omitempty"`
	AssignedAt *time.Time           `json:"assignedAt,omitempty"`
	CreatedAt  time.Time            `json:"createdAt"`
	Replies    []QuoteReplyResponse `json:"replies,omitempty"`
}
