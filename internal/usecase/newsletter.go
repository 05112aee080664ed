package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	domainErrors "github.com/mgv-tech/backoffice/internal/domain/errors"
	"github.com/mgv-tech/backoffice/internal/domain/model"
	"github.com/mgv-tech/backoffice/internal/domain/repository"
)

// NewsletterNotifier receives subscription and issue events.
type NewsletterNotifier interface {
	SubscriberWelcome(sub *model.Subscriber)
	NewsletterIssue(issue *model.Newsletter, subs []model.Subscriber)
}

// NewsletterUseCase manages subscribers and newsletter issues.
type NewsletterUseCase struct {
	subscribers repository.SubscriberRepository
	newsletters repository.NewsletterRepository
	notifier    NewsletterNotifier
}

// NewNewsletterUseCase constructs NewsletterUseCase.
func NewNewsletterUseCase(subscribers repository.SubscriberRepository, newsletters repository.NewsletterRepository, notifier NewsletterNotifier) *NewsletterUseCase {
	return &NewsletterUseCase{subscribers: subscribers, newsletters: newsletters, notifier: notifier}
}

// Subscribe adds or reactivates a recipient. The welcome mail goes out
// only for addresses not already subscribed.
func (u *NewsletterUseCase) Subscribe(ctx context.Context, email, name string) (*model.Subscriber, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", domainErrors.ErrInvalidInput)
	}

	token, err := randomToken(16)
	if err != nil {
		return nil, err
	}
	sub, created, err := u.subscribers.Upsert(ctx, email, strings.TrimSpace(name), token)
	if err != nil {
		return nil, err
	}

	if created {
		u.notifier.SubscriberWelcome(sub)
	}
	return sub, nil
}

// Unsubscribe opts an address out by email.
func (u *NewsletterUseCase) Unsubscribe(ctx context.Context, email string) error {
	return u.subscribers.Unsubscribe(ctx, normalizeEmail(email))
}

// UnsubscribeByToken opts an address out from an email link.
func (u *NewsletterUseCase) UnsubscribeByToken(ctx context.Context, token string) error {
	if token == "" {
		return domainErrors.ErrNotFound
	}
	return u.subscribers.UnsubscribeByToken(ctx, token)
}

// ListSubscribers returns every recipient row for the dashboard.
func (u *NewsletterUseCase) ListSubscribers(ctx context.Context) ([]model.Subscriber, error) {
	return u.subscribers.ListAll(ctx)
}

// UpdateSubscriber edits a recipient from the dashboard.
func (u *NewsletterUseCase) UpdateSubscriber(ctx context.Context, id int64, name string, subscribed bool) error {
	return u.subscribers.Update(ctx, id, strings.TrimSpace(name), subscribed)
}

// DeleteSubscriber removes a recipient row entirely.
func (u *NewsletterUseCase) DeleteSubscriber(ctx context.Context, id int64) error {
	return u.subscribers.Delete(ctx, id)
}

// CreateDraft stores a new unsent issue.
func (u *NewsletterUseCase) CreateDraft(ctx context.Context, subject, content string) (*model.Newsletter, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" || content == "" {
		return nil, fmt.Errorf("%w: subject and content are required", domainErrors.ErrInvalidInput)
	}
	return u.newsletters.Create(ctx, subject, content, model.NewsletterStatusDraft, nil)
}

// ListNewsletters returns all issues, drafts and sent alike.
func (u *NewsletterUseCase) ListNewsletters(ctx context.Context) ([]model.Newsletter, error) {
	return u.newsletters.List(ctx)
}

// UpdateDraft edits an issue's subject and content.
func (u *NewsletterUseCase) UpdateDraft(ctx context.Context, id int64, subject, content string) (*model.Newsletter, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" || content == "" {
		return nil, fmt.Errorf("%w: subject and content are required", domainErrors.ErrInvalidInput)
	}
	return u.newsletters.Update(ctx, id, subject, content)
}

// Send fans the issue out to every active subscriber and marks it sent.
// An issue can go out only once.
func (u *NewsletterUseCase) Send(ctx context.Context, id int64) (*model.Newsletter, error) {
	issue, err := u.newsletters.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if issue.Status == model.NewsletterStatusSent {
		return nil, fmt.Errorf("%w: newsletter already sent", domainErrors.ErrConflict)
	}

	subs, err := u.subscribers.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := u.newsletters.MarkSent(ctx, id, now); err != nil {
		return nil, err
	}
	issue.Status = model.NewsletterStatusSent
	issue.SentAt = &now

	u.notifier.NewsletterIssue(issue, subs)
	return issue, nil
}

// DeleteNewsletter removes an issue.
func (u *NewsletterUseCase) DeleteNewsletter(ctx context.Context, id int64) error {
	return u.newsletters.Delete(ctx, id)
}
