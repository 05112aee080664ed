package usecase_test

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/mgv-tech/backoffice/internal/domain/errors"
	"github.com/mgv-tech/backoffice/internal/domain/model"
	testhelpers "github.com/mgv-tech/backoffice/internal/test"
	"github.com/mgv-tech/backoffice/internal/usecase"
)

func newQuoteFixture() (*usecase.QuoteUseCase, *testhelpers.QuoteRepositoryStub, *testhelpers.UserRepositoryStub, *testhelpers.NotifierRecorder) {
	quotes := &testhelpers.QuoteRepositoryStub{}
	users := testhelpers.NewUserRepositoryStub()
	recorder := &testhelpers.NotifierRecorder{}
	uc := usecase.NewQuoteUseCase(quotes, users, recorder)
	return uc, quotes, users, recorder
}

func TestQuoteSubmit(t *testing.T) {
	uc, _, _, recorder := newQuoteFixture()

	q, err := uc.Submit(context.Background(), " Ada ", "Ada@Example.com", "555-0100", "Fiber install", "Need a quote")
	if err != nil {
		t.Fatalf("submit returned error: %v", err)
	}
	if q.Name != "Ada" || q.Email != "ada@example.com" {
		t.Fatalf("input not normalized: %+v", q)
	}
	if q.Status != model.QuoteStatusWaitingForSupport {
		t.Fatalf("new quote got status %q", q.Status)
	}
	if recorder.Count("quote-received") != 1 {
		t.Fatalf("expected one received event, got %d", recorder.Count("quote-received"))
	}
}

func TestQuoteSubmitValidation(t *testing.T) {
	uc, _, _, _ := newQuoteFixture()
	for _, tc := range []struct{ name, email, service string }{
		{"", "ada@example.com", "Fiber"},
		{"Ada", "", "Fiber"},
		{"Ada", "ada@example.com", "  "},
	} {
		if _, err := uc.Submit(context.Background(), tc.name, tc.email, "", tc.service, ""); !errors.Is(err, domainErrors.ErrInvalidInput) {
			t.Fatalf("submit(%q,%q,%q): expected ErrInvalidInput, got %v", tc.name, tc.email, tc.service, err)
		}
	}
}

func TestQuoteAssign(t *testing.T) {
	uc, quotes, users, recorder := newQuoteFixture()
	ctx := context.Background()
	admin := users.Add(&model.User{Name: "Root", Email: "root@example.com", Role: model.RoleAdmin})
	q, err := uc.Submit(ctx, "Ada", "ada@example.com", "", "Fiber", "")
	if err != nil {
		t.Fatalf("submit returned error: %v", err)
	}

	if err := uc.Assign(ctx, q.ID, admin.ID); err != nil {
		t.Fatalf("assign returned error: %v", err)
	}
	stored := quotes.Quotes[0]
	if stored.AssignedTo == nil || *stored.AssignedTo != admin.ID || stored.AssignedAt == nil {
		t.Fatalf("assignment not recorded: %+v", stored)
	}
	if recorder.Count("quote-assigned") != 1 {
		t.Fatalf("expected one assigned event, got %d", recorder.Count("quote-assigned"))
	}
}

func TestQuoteAssignRejectsNonAdmin(t *testing.T) {
	uc, quotes, users, _ := newQuoteFixture()
	ctx := context.Background()
	customer := users.Add(&model.User{Name: "Bob", Email: "bob@example.com", Role: model.RoleCustomer})
	q, err := uc.Submit(ctx, "Ada", "ada@example.com", "", "Fiber", "")
	if err != nil {
		t.Fatalf("submit returned error: %v", err)
	}

	if err := uc.Assign(ctx, q.ID, customer.ID); !errors.Is(err, domainErrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if quotes.Quotes[0].AssignedTo != nil {
		t.Fatalf("quote assigned despite rejection")
	}
}

func TestQuoteReplyTurnTaking(t *testing.T) {
	uc, quotes, users, recorder := newQuoteFixture()
	ctx := context.Background()
	admin := users.Add(&model.User{Name: "Root", Email: "root@example.com", Role: model.RoleAdmin})
	q, err := uc.Submit(ctx, "Ada", "ada@example.com", "", "Fiber", "")
	if err != nil {
		t.Fatalf("submit returned error: %v", err)
	}

	reply, err := uc.AdminReply(ctx, q.ID, admin.ID, "We can do Tuesday")
	if err != nil {
		t.Fatalf("admin reply returned error: %v", err)
	}
	if reply.SenderType != model.QuoteSenderAdmin || reply.SenderEmail != admin.Email {
		t.Fatalf("unexpected reply: %+v", reply)
	}
	if quotes.Quotes[0].Status != model.QuoteStatusWaitingForCustomer {
		t.Fatalf("admin reply left status %q", quotes.Quotes[0].Status)
	}

	if _, err := uc.CustomerReply(ctx, q.ID, "ADA@example.com", "Tuesday works"); err != nil {
		t.Fatalf("customer reply returned error: %v", err)
	}
	if quotes.Quotes[0].Status != model.QuoteStatusWaitingForSupport {
		t.Fatalf("customer reply left status %q", quotes.Quotes[0].Status)
	}
	if len(quotes.Quotes[0].Replies) != 2 {
		t.Fatalf("expected two replies, got %d", len(quotes.Quotes[0].Replies))
	}
	if recorder.Count("quote-admin-reply") != 1 || recorder.Count("quote-customer-reply") != 1 {
		t.Fatalf("unexpected events: %v", recorder.Events)
	}
}

func TestQuoteCustomerReplyWrongEmail(t *testing.T) {
	uc, quotes, _, _ := newQuoteFixture()
	ctx := context.Background()
	q, err := uc.Submit(ctx, "Ada", "ada@example.com", "", "Fiber", "")
	if err != nil {
		t.Fatalf("submit returned error: %v", err)
	}

	if _, err := uc.CustomerReply(ctx, q.ID, "intruder@example.com", "hello"); !errors.Is(err, domainErrors.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if len(quotes.Quotes[0].Replies) != 0 {
		t.Fatalf("reply stored despite rejection")
	}
}

func TestQuoteReplyEmptyMessage(t *testing.T) {
	uc, _, users, _ := newQuoteFixture()
	admin := users.Add(&model.User{Name: "Root", Email: "root@example.com", Role: model.RoleAdmin})
	if _, err := uc.AdminReply(context.Background(), 1, admin.ID, "   "); !errors.Is(err, domainErrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestQuoteUpdateStatus(t *testing.T) {
	uc, quotes, _, _ := newQuoteFixture()
	ctx := context.Background()
	q, err := uc.Submit(ctx, "Ada", "ada@example.com", "", "Fiber", "")
	if err != nil {
		t.Fatalf("submit returned error: %v", err)
	}

	if err := uc.UpdateStatus(ctx, q.ID, model.QuoteStatusResolved); err != nil {
		t.Fatalf("update status returned error: %v", err)
	}
	if quotes.Quotes[0].Status != model.QuoteStatusResolved {
		t.Fatalf("status not applied: %q", quotes.Quotes[0].Status)
	}
	if err := uc.UpdateStatus(ctx, q.ID, model.QuoteStatus("Escalated to Mars")); !errors.Is(err, domainErrors.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestQuoteListByEmailNormalizes(t *testing.T) {
	uc, _, _, _ := newQuoteFixture()
	ctx := context.Background()
	if _, err := uc.Submit(ctx, "Ada", "ada@example.com", "", "Fiber", ""); err != nil {
		t.Fatalf("submit returned error: %v", err)
	}

	out, err := uc.ListByEmail(ctx, " ADA@Example.com ")
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected one quote, got %d", len(out))
	}
}
