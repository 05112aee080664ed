package repository

import (
	"context"
	"time"

	"github.com/mgv-tech/backoffice/internal/domain/model"
)

// SubscriberRepository manages newsletter recipients.
type SubscriberRepository interface {
	// Upsert subscribes the email, resubscribing a previously
	// unsubscribed address. Reports whether the row was newly created.
	Upsert(ctx context.Context, email, name, token string) (*model.Subscriber, bool, error)
	Unsubscribe(ctx context.Context, email string) error
	UnsubscribeByToken(ctx context.Context, token string) error
	ListActive(ctx context.Context) ([]model.Subscriber, error)
	ListAll(ctx context.Context) ([]model.Subscriber, error)
	Update(ctx context.Context, id int64, name string, subscribed bool) error
	Delete(ctx context.Context, id int64) error
}

// NewsletterRepository stores newsletter issues.
type NewsletterRepository interface {
	Create(ctx context.Context, subject, content string, status model.NewsletterStatus, sentAt *time.Time) (*model.Newsletter, error)
	GetByID(ctx context.Context, id int64) (*model.Newsletter, error)
	List(ctx context.Context) ([]model.Newsletter, error)
	Update(ctx context.Context, id int64, subject, content string) (*model.Newsletter, error)
	MarkSent(ctx context.Context, id int64, sentAt time.Time) error
	Delete(ctx context.Context, id int64) error
}
