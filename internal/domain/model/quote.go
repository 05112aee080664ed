package model

import "time"

// QuoteStatus tracks who owes the next action on a quote request.
type QuoteStatus string

const (
	QuoteStatusWaitingForSupport  QuoteStatus = "Waiting for Support"
	QuoteStatusWaitingForCustomer QuoteStatus = "Waiting for Customer"
	QuoteStatusInProgress         QuoteStatus = "In Progress"
	QuoteStatusResolved           QuoteStatus = "Resolved"
	QuoteStatusClosed             QuoteStatus = "Closed"
)

// Valid reports whether s is a recognised quote status.
func (s QuoteStatus) Valid() bool {
	switch s {
	case QuoteStatusWaitingForSupport, QuoteStatusWaitingForCustomer,
		QuoteStatusInProgress, QuoteStatusResolved, QuoteStatusClosed:
		return true
	}
	return false
}

// Sender types recorded on quote replies.
const (
	QuoteSenderAdmin    = "admin"
	QuoteSenderCustomer = "customer"
)

// QuoteReply is one message in a quote conversation thread.
type QuoteReply struct {
	ID          int64
	QuoteID     int64
	SenderID    *int64
	SenderEmail string
	SenderType  string
	Message     string
	RepliedAt   time.Time
}

// QuoteRequest is a service quote submitted from the public site.
type QuoteRequest struct {
	ID         int64
	Name       string
	Email      string
	Phone      string
	Service    string
	Message    string
	Status     QuoteStatus
	AssignedTo *int64
	AssignedAt *time.Time
	CreatedAt  time.Time
	Replies    []QuoteReply
}
