package usecase

import (
	"context"
	"fmt"
	"strings"

	domainErrors "github.com/mgv-tech/backoffice/internal/domain/errors"
	"github.com/mgv-tech/backoffice/internal/domain/model"
	"github.com/mgv-tech/backoffice/internal/domain/repository"
)

// QuoteNotifier receives quote conversation events.
type QuoteNotifier interface {
	QuoteReceived(q *model.QuoteRequest)
	QuoteAssigned(q *model.QuoteRequest, admin *model.User)
	QuoteAdminReplied(q *model.QuoteRequest, reply *model.QuoteReply)
	QuoteCustomerReplied(q *model.QuoteRequest, reply *model.QuoteReply)
}

// QuoteUseCase drives the quote request conversation flow. The status
// field tracks whose turn it is: replies from the support side park the
// quote at Waiting for Customer, customer replies move it back to
// Waiting for Support.
type QuoteUseCase struct {
	quotes   repository.QuoteRepository
	users    repository.UserRepository
	notifier QuoteNotifier
}

// NewQuoteUseCase constructs QuoteUseCase.
func NewQuoteUseCase(quotes repository.QuoteRepository, users repository.UserRepository, notifier QuoteNotifier) *QuoteUseCase {
	return &QuoteUseCase{quotes: quotes, users: users, notifier: notifier}
}

// Submit records a quote request from the public site.
func (u *QuoteUseCase) Submit(ctx context.Context, name, email, phone, service, message string) (*model.QuoteRequest, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	service = strings.TrimSpace(service)
	if name == "" || email == "" || service == "" {
		return nil, fmt.Errorf("%w: name, email, and service are required", domainErrors.ErrInvalidInput)
	}

	q, err := u.quotes.Create(ctx, &model.QuoteRequest{
		Name:    name,
		Email:   email,
		Phone:   strings.TrimSpace(phone),
		Service: service,
		Message: message,
		Status:  model.QuoteStatusWaitingForSupport,
	})
	if err != nil {
		return nil, err
	}

	u.notifier.QuoteReceived(q)
	return q, nil
}

// Get returns one quote with its reply thread.
func (u *QuoteUseCase) Get(ctx context.Context, id int64) (*model.QuoteRequest, error) {
	return u.quotes.GetByID(ctx, id)
}

// ListAll returns every quote for the admin dashboard.
func (u *QuoteUseCase) ListAll(ctx context.Context) ([]model.QuoteRequest, error) {
	return u.quotes.ListAll(ctx)
}

// ListByEmail returns quotes submitted with the given email.
func (u *QuoteUseCase) ListByEmail(ctx context.Context, email string) ([]model.QuoteRequest, error) {
	return u.quotes.ListByEmail(ctx, normalizeEmail(email))
}

// ListAssigned returns quotes assigned to the admin.
func (u *QuoteUseCase) ListAssigned(ctx context.Context, adminID int64) ([]model.QuoteRequest, error) {
	return u.quotes.ListAssignedTo(ctx, adminID)
}

// Assign hands a quote to an admin and notifies them. The assignee must
// actually hold the administrator role.
func (u *QuoteUseCase) Assign(ctx context.Context, quoteID, adminID int64) error {
	admin, err := u.users.GetByID(ctx, adminID)
	if err != nil {
		return err
	}
	if !admin.IsAdmin() {
		return fmt.Errorf("%w: assignee is not an admin", domainErrors.ErrInvalidInput)
	}
	if err := u.quotes.Assign(ctx, quoteID, adminID); err != nil {
		return err
	}

	if q, err := u.quotes.GetByID(ctx, quoteID); err == nil {
		u.notifier.QuoteAssigned(q, admin)
	}
	return nil
}

// AdminReply appends a support-side reply and parks the quote at
// Waiting for Customer.
func (u *QuoteUseCase) AdminReply(ctx context.Context, quoteID, adminID int64, message string) (*model.QuoteReply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("%w: empty reply", domainErrors.ErrInvalidInput)
	}

	admin, err := u.users.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}

	reply, err := u.quotes.AddReply(ctx, &model.QuoteReply{
		QuoteID:     quoteID,
		SenderID:    &adminID,
		SenderEmail: admin.Email,
		SenderType:  model.QuoteSenderAdmin,
		Message:     message,
	}, model.QuoteStatusWaitingForCustomer)
	if err != nil {
		return nil, err
	}

	if q, err := u.quotes.GetByID(ctx, quoteID); err == nil {
		u.notifier.QuoteAdminReplied(q, reply)
	}
	return reply, nil
}

// CustomerReply appends a customer reply and moves the quote back to
// Waiting for Support. The reply is accepted only from the email the
// quote was submitted with.
func (u *QuoteUseCase) CustomerReply(ctx context.Context, quoteID int64, email, message string) (*model.QuoteReply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("%w: empty reply", domainErrors.ErrInvalidInput)
	}

	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	email = normalizeEmail(email)
	if q.Email != email {
		return nil, domainErrors.ErrUnauthorized
	}

	reply, err := u.quotes.AddReply(ctx, &model.QuoteReply{
		QuoteID:     quoteID,
		SenderEmail: email,
		SenderType:  model.QuoteSenderCustomer,
		Message:     message,
	}, model.QuoteStatusWaitingForSupport)
	if err != nil {
		return nil, err
	}

	u.notifier.QuoteCustomerReplied(q, reply)
	return reply, nil
}

// UpdateStatus applies an explicit status change from the dashboard.
func (u *QuoteUseCase) UpdateStatus(ctx context.Context, quoteID int64, status model.QuoteStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", domainErrors.ErrInvalidStatus, status)
	}
	return u.quotes.UpdateStatus(ctx, quoteID, status)
}

// Delete removes a quote and its thread.
func (u *QuoteUseCase) Delete(ctx context.Context, quoteID int64) error {
	return u.quotes.Delete(ctx, quoteID)
}
