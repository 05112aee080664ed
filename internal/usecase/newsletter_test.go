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

func newNewsletterFixture() (*usecase.NewsletterUseCase, *testhelpers.SubscriberRepositoryStub, *testhelpers.NewsletterRepositoryStub, *testhelpers.NotifierRecorder) {
	subscribers := &testhelpers.SubscriberRepositoryStub{}
	newsletters := &testhelpers.NewsletterRepositoryStub{}
	recorder := &testhelpers.NotifierRecorder{}
	uc := usecase.NewNewsletterUseCase(subscribers, newsletters, recorder)
	return uc, subscribers, newsletters, recorder
}

func TestNewsletterSubscribe(t *testing.T) {
	uc, _, _, recorder := newNewsletterFixture()

	sub, err := uc.Subscribe(context.Background(), " Ada@Example.com ", "Ada")
	if err != nil {
		t.Fatalf("subscribe returned error: %v", err)
	}
	if sub.Email != "ada@example.com" || !sub.Subscribed {
		t.Fatalf("unexpected subscriber: %+v", sub)
	}
	if sub.UnsubscribeToken == "" {
		t.Fatal("no unsubscribe token issued")
	}
	if recorder.Count("subscriber-welcome") != 1 {
		t.Fatalf("expected one welcome, got %d", recorder.Count("subscriber-welcome"))
	}
}

func TestNewsletterResubscribeSkipsWelcome(t *testing.T) {
	uc, subscribers, _, recorder := newNewsletterFixture()
	ctx := context.Background()
	if _, err := uc.Subscribe(ctx, "ada@example.com", "Ada"); err != nil {
		t.Fatalf("subscribe returned error: %v", err)
	}
	if err := uc.Unsubscribe(ctx, "ada@example.com"); err != nil {
		t.Fatalf("unsubscribe returned error: %v", err)
	}

	sub, err := uc.Subscribe(ctx, "ada@example.com", "")
	if err != nil {
		t.Fatalf("resubscribe returned error: %v", err)
	}
	if !sub.Subscribed {
		t.Fatalf("resubscribe left subscriber off: %+v", sub)
	}
	if got := recorder.Count("subscriber-welcome"); got != 1 {
		t.Fatalf("welcome mailed again on resubscribe: %d", got)
	}
	if len(subscribers.Subscribers) != 1 {
		t.Fatalf("duplicate subscriber row created")
	}
}

func TestNewsletterSubscribeRequiresEmail(t *testing.T) {
	uc, _, _, _ := newNewsletterFixture()
	if _, err := uc.Subscribe(context.Background(), "  ", "Ada"); !errors.Is(err, domainErrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestNewsletterUnsubscribeByToken(t *testing.T) {
	uc, subscribers, _, _ := newNewsletterFixture()
	ctx := context.Background()
	sub, err := uc.Subscribe(ctx, "ada@example.com", "Ada")
	if err != nil {
		t.Fatalf("subscribe returned error: %v", err)
	}

	if err := uc.UnsubscribeByToken(ctx, sub.UnsubscribeToken); err != nil {
		t.Fatalf("unsubscribe returned error: %v", err)
	}
	if subscribers.Subscribers[0].Subscribed {
		t.Fatalf("subscriber still active after token unsubscribe")
	}
	if err := uc.UnsubscribeByToken(ctx, ""); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("empty token: expected ErrNotFound, got %v", err)
	}
	if err := uc.UnsubscribeByToken(ctx, "unknown"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("unknown token: expected ErrNotFound, got %v", err)
	}
}

func TestNewsletterDraftValidation(t *testing.T) {
	uc, _, _, _ := newNewsletterFixture()
	if _, err := uc.CreateDraft(context.Background(), "  ", "body"); !errors.Is(err, domainErrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := uc.CreateDraft(context.Background(), "Subject", ""); !errors.Is(err, domainErrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestNewsletterSend(t *testing.T) {
	uc, _, newsletters, recorder := newNewsletterFixture()
	ctx := context.Background()
	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		if _, err := uc.Subscribe(ctx, email, ""); err != nil {
			t.Fatalf("subscribe returned error: %v", err)
		}
	}
	if err := uc.Unsubscribe(ctx, "c@example.com"); err != nil {
		t.Fatalf("unsubscribe returned error: %v", err)
	}

	draft, err := uc.CreateDraft(ctx, "August news", "<p>Hello</p>")
	if err != nil {
		t.Fatalf("create draft returned error: %v", err)
	}

	sent, err := uc.Send(ctx, draft.ID)
	if err != nil {
		t.Fatalf("send returned error: %v", err)
	}
	if sent.Status != model.NewsletterStatusSent || sent.SentAt == nil {
		t.Fatalf("issue not marked sent: %+v", sent)
	}
	if newsletters.Issues[0].Status != model.NewsletterStatusSent {
		t.Fatalf("stored issue not marked sent")
	}
	// only the two active subscribers receive the issue
	if got := recorder.Count("newsletter-issue"); got != 2 {
		t.Fatalf("expected 2 deliveries, got %d", got)
	}
}

func TestNewsletterSendTwice(t *testing.T) {
	uc, _, _, recorder := newNewsletterFixture()
	ctx := context.Background()
	draft, err := uc.CreateDraft(ctx, "August news", "<p>Hello</p>")
	if err != nil {
		t.Fatalf("create draft returned error: %v", err)
	}
	if _, err := uc.Send(ctx, draft.ID); err != nil {
		t.Fatalf("first send returned error: %v", err)
	}

	if _, err := uc.Send(ctx, draft.ID); !errors.Is(err, domainErrors.ErrConflict) {
		t.Fatalf("expected ErrConflict on resend, got %v", err)
	}
	if recorder.Count("newsletter-issue") != 0 {
		t.Fatalf("deliveries recorded with no subscribers: %v", recorder.Events)
	}
}

func TestNewsletterSendUnknownIssue(t *testing.T) {
	uc, _, _, _ := newNewsletterFixture()
	if _, err := uc.Send(context.Background(), 99); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
