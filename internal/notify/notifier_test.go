package notify_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/mgv-tech/backoffice/internal/domain/model"
	"github.com/mgv-tech/backoffice/internal/notify"
	testhelpers "github.com/mgv-tech/backoffice/internal/test"
)

func newNotifierFixture(t *testing.T, admins []string) (*notify.Notifier, chan notify.Message) {
	t.Helper()
	delivered := make(chan notify.Message, 32)
	mailer := &testhelpers.MailerStub{SendFn: func(_ context.Context, msg notify.Message) error {
		delivered <- msg
		return nil
	}}
	d := notify.NewDispatcher(mailer, 1, 32, discardLogger())
	d.Start(context.Background())
	t.Cleanup(d.Stop)
	return notify.NewNotifier(d, admins, "https://mgv.example", discardLogger()), delivered
}

func receiveMessages(t *testing.T, ch chan notify.Message, n int) []notify.Message {
	t.Helper()
	out := make([]notify.Message, 0, n)
	for len(out) < n {
		select {
		case msg := <-ch:
			out = append(out, msg)
		case <-time.After(2 * time.Second):
			t.Fatalf("received %d of %d messages", len(out), n)
		}
	}
	return out
}

func TestNotifierOrderCreatedAddressing(t *testing.T) {
	n, delivered := newNotifierFixture(t, []string{"boss@mgv.example", "ops@mgv.example", "sales@mgv.example"})

	order := &model.Order{Number: "MGV000000007", Status: model.OrderStatusPending, TotalPrice: 120,
		Items: []model.OrderItem{{Name: "Router X200", Quantity: 1, Price: 120}}}
	user := &model.User{Name: "Ada", Email: "ada@example.com"}
	n.OrderCreated(order, user)

	msgs := receiveMessages(t, delivered, 2)
	customer, admin := msgs[0], msgs[1]
	if customer.To[0] != "ada@example.com" || len(customer.Cc) != 0 {
		t.Fatalf("customer addressing wrong: %+v", customer)
	}
	if !strings.Contains(customer.Subject, "MGV000000007") {
		t.Fatalf("subject missing order number: %q", customer.Subject)
	}
	if !strings.Contains(customer.HTML, "Router X200") {
		t.Fatalf("body missing item name")
	}
	if admin.To[0] != "boss@mgv.example" {
		t.Fatalf("first admin must be the To recipient: %+v", admin.To)
	}
	if len(admin.Cc) != 2 || admin.Cc[0] != "ops@mgv.example" || admin.Cc[1] != "sales@mgv.example" {
		t.Fatalf("remaining admins must be Cc: %+v", admin.Cc)
	}
}

func TestNotifierNoAdminsConfigured(t *testing.T) {
	n, delivered := newNotifierFixture(t, nil)

	n.UserRegistered(&model.User{Name: "Ada", Email: "ada@example.com", Role: model.RoleCustomer})

	msgs := receiveMessages(t, delivered, 1)
	if msgs[0].To[0] != "ada@example.com" {
		t.Fatalf("unexpected recipient: %+v", msgs[0].To)
	}
	select {
	case msg := <-delivered:
		t.Fatalf("admin message sent with no admins configured: %+v", msg)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestNotifierPasswordResetLink(t *testing.T) {
	n, delivered := newNotifierFixture(t, nil)

	n.PasswordResetRequested(&model.User{Name: "Ada", Email: "ada@example.com"}, "tok123")

	msgs := receiveMessages(t, delivered, 1)
	if !strings.Contains(msgs[0].HTML, "https://mgv.example/reset-password/tok123") {
		t.Fatalf("body missing reset link")
	}
}

func TestNotifierNewsletterFanOut(t *testing.T) {
	n, delivered := newNotifierFixture(t, nil)

	issue := &model.Newsletter{Subject: "August news", Content: "<p>Big update</p>"}
	subs := []model.Subscriber{
		{Email: "a@example.com", UnsubscribeToken: "tok-a"},
		{Email: "b@example.com", UnsubscribeToken: "tok-b"},
	}
	n.NewsletterIssue(issue, subs)

	msgs := receiveMessages(t, delivered, 2)
	for i, msg := range msgs {
		if msg.Subject != "August news" {
			t.Fatalf("unexpected subject: %q", msg.Subject)
		}
		if !strings.Contains(msg.HTML, "<p>Big update</p>") {
			t.Fatalf("issue content was escaped: %q", msg.HTML)
		}
		if !strings.Contains(msg.HTML, "/newsletter/unsubscribe/"+subs[i].UnsubscribeToken) {
			t.Fatalf("message %d missing its unsubscribe link", i)
		}
	}
}

func TestNotifierQuoteFlowRecipients(t *testing.T) {
	n, delivered := newNotifierFixture(t, []string{"boss@mgv.example"})

	q := &model.QuoteRequest{ID: 4, Name: "Ada", Email: "ada@example.com", Service: "Fiber install"}
	n.QuoteReceived(q)
	msgs := receiveMessages(t, delivered, 2)
	if msgs[0].To[0] != "ada@example.com" || msgs[1].To[0] != "boss@mgv.example" {
		t.Fatalf("unexpected recipients: %+v, %+v", msgs[0].To, msgs[1].To)
	}

	admin := &model.User{Name: "Root", Email: "root@mgv.example", Role: model.RoleAdmin}
	n.QuoteAssigned(q, admin)
	msgs = receiveMessages(t, delivered, 1)
	if msgs[0].To[0] != "root@mgv.example" {
		t.Fatalf("assignment not mailed to assignee: %+v", msgs[0].To)
	}

	reply := &model.QuoteReply{QuoteID: 4, Message: "We can start Monday"}
	n.QuoteAdminReplied(q, reply)
	msgs = receiveMessages(t, delivered, 1)
	if msgs[0].To[0] != "ada@example.com" || !strings.Contains(msgs[0].HTML, "We can start Monday") {
		t.Fatalf("admin reply not forwarded to customer: %+v", msgs[0])
	}
}
