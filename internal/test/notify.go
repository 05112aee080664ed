package test

import (
	"context"
	"sync"

	"github.com/mgv-tech/backoffice/internal/domain/model"
	"github.com/mgv-tech/backoffice/internal/notify"
)

// MailerStub records delivered messages for inspection.
type MailerStub struct {
	Err    error
	SendFn func(context.Context, notify.Message) error

	mu       sync.Mutex
	Messages []notify.Message
}

// Send records the message unless an override or error is configured.
func (s *MailerStub) Send(ctx context.Context, msg notify.Message) error {
	if s.SendFn != nil {
		return s.SendFn(ctx, msg)
	}
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Messages = append(s.Messages, msg)
	return nil
}

// Sent returns a snapshot of recorded messages.
func (s *MailerStub) Sent() []notify.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]notify.Message(nil), s.Messages...)
}

// NotifierRecorder satisfies the use case notifier contracts and counts
// events per kind.
type NotifierRecorder struct {
	mu          sync.Mutex
	Events      []string
	ResetTokens []string
}

func (r *NotifierRecorder) record(event string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, event)
}

// Count returns how many times the event fired.
func (r *NotifierRecorder) Count(event string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.Events {
		if e == event {
			n++
		}
	}
	return n
}

func (r *NotifierRecorder) OrderCreated(*model.Order, *model.User)       { r.record("order-created") }
func (r *NotifierRecorder) OrderDelivered(*model.Order, *model.User)     { r.record("order-delivered") }
func (r *NotifierRecorder) OrderStatusChanged(*model.Order, *model.User) { r.record("order-status") }
func (r *NotifierRecorder) UserRegistered(*model.User)                   { r.record("user-registered") }
func (r *NotifierRecorder) PasswordResetRequested(_ *model.User, token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, "password-reset")
	r.ResetTokens = append(r.ResetTokens, token)
}
func (r *NotifierRecorder) QuoteReceived(*model.QuoteRequest)            { r.record("quote-received") }
func (r *NotifierRecorder) QuoteAssigned(*model.QuoteRequest, *model.User) {
	r.record("quote-assigned")
}
func (r *NotifierRecorder) QuoteAdminReplied(*model.QuoteRequest, *model.QuoteReply) {
	r.record("quote-admin-reply")
}
func (r *NotifierRecorder) QuoteCustomerReplied(*model.QuoteRequest, *model.QuoteReply) {
	r.record("quote-customer-reply")
}
func (r *NotifierRecorder) SubscriberWelcome(*model.Subscriber) { r.record("subscriber-welcome") }
func (r *NotifierRecorder) NewsletterIssue(issue *model.Newsletter, subs []model.Subscriber) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for range subs {
		r.Events = append(r.Events, "newsletter-issue")
	}
}

// ImageStoreStub records destroyed asset IDs.
type ImageStoreStub struct {
	Err error

	mu        sync.Mutex
	Destroyed []string
}

// Destroy records the public ID unless an error is configured.
func (s *ImageStoreStub) Destroy(ctx context.Context, publicID string) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Destroyed = append(s.Destroyed, publicID)
	return nil
}
