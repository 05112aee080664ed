package notify

import (
	"fmt"
	"html/template"
	"log/slog"

	"github.com/mgv-tech/backoffice/internal/domain/model"
)

// Notifier renders event messages and hands them to the dispatcher.
// Every method is fire-and-forget: rendering failures are logged and
// the event is dropped; the triggering operation is never affected.
// Customer and admin messages are enqueued independently so one failing
// does not prevent the other.
type Notifier struct {
	dispatcher  *Dispatcher
	adminEmails []string
	frontendURL string
	logger      *slog.Logger
}

// NewNotifier constructs Notifier around the dispatcher.
func NewNotifier(dispatcher *Dispatcher, adminEmails []string, frontendURL string, logger *slog.Logger) *Notifier {
	return &Notifier{
		dispatcher:  dispatcher,
		adminEmails: adminEmails,
		frontendURL: frontendURL,
		logger:      logger,
	}
}

func (n *Notifier) send(to []string, cc []string, subject, tmpl string, data templateData) {
	data.FrontendURL = n.frontendURL
	html, err := render(tmpl, data)
	if err != nil {
		n.logger.Error("render notification failed",
			slog.String("template", tmpl),
			slog.String("error", err.Error()),
		)
		return
	}
	n.dispatcher.Enqueue(Message{To: to, Cc: cc, Subject: subject, HTML: html})
}

func (n *Notifier) sendAdmins(subject, tmpl string, data templateData) {
	if len(n.adminEmails) == 0 {
		return
	}
	n.send(n.adminEmails[:1], n.adminEmails[1:], subject, tmpl, data)
}

// OrderCreated emits the customer confirmation and admin notification.
func (n *Notifier) OrderCreated(order *model.Order, user *model.User) {
	data := templateData{Order: order, User: user}
	n.send([]string{user.Email}, nil,
		fmt.Sprintf("Your Order Confirmation - %s | %s", order.Number, brandName),
		"orderCreatedCustomer", data)
	n.sendAdmins(fmt.Sprintf("New Order Placed - %s", order.Number), "orderCreatedAdmin", data)
}

// OrderDelivered notifies both sides that the order reached Delivered.
func (n *Notifier) OrderDelivered(order *model.Order, user *model.User) {
	data := templateData{Order: order, User: user}
	n.send([]string{user.Email}, nil,
		fmt.Sprintf("Your Order Has Been Delivered - %s", order.Number),
		"orderDeliveredCustomer", data)
	n.sendAdmins(fmt.Sprintf("Order Delivered - %s", order.Number), "orderDeliveredAdmin", data)
}

// OrderStatusChanged notifies both sides about any other status update.
func (n *Notifier) OrderStatusChanged(order *model.Order, user *model.User) {
	data := templateData{Order: order, User: user}
	subject := fmt.Sprintf("Order Status Updated - %s | %s", order.Number, order.Status)
	n.send([]string{user.Email}, nil, subject, "orderStatusCustomer", data)
	n.sendAdmins(subject, "orderStatusAdmin", data)
}

// UserRegistered sends the welcome mail and the admin heads-up.
func (n *Notifier) UserRegistered(user *model.User) {
	data := templateData{User: user}
	n.send([]string{user.Email}, nil, "Welcome to "+brandName, "welcomeCustomer", data)
	n.sendAdmins(fmt.Sprintf("New User Registration || %s", user.Name), "welcomeAdmin", data)
}

// PasswordResetRequested mails the reset link to the account owner.
func (n *Notifier) PasswordResetRequested(user *model.User, token string) {
	data := templateData{
		User:     user,
		ResetURL: fmt.Sprintf("%s/reset-password/%s", n.frontendURL, token),
	}
	n.send([]string{user.Email}, nil, "Password Reset - "+brandName, "passwordReset", data)
}

// QuoteReceived acknowledges the customer and alerts the admins.
func (n *Notifier) QuoteReceived(q *model.QuoteRequest) {
	data := templateData{Quote: q}
	n.send([]string{q.Email}, nil, "We Received Your Quote Request | "+brandName, "quoteReceivedCustomer", data)
	n.sendAdmins(fmt.Sprintf("New Quote Request from %s", q.Name), "quoteReceivedAdmin", data)
}

// QuoteAssigned tells the assignee a quote is now theirs.
func (n *Notifier) QuoteAssigned(q *model.QuoteRequest, admin *model.User) {
	n.send([]string{admin.Email}, nil,
		fmt.Sprintf("Quote Request #%d Assigned to You", q.ID),
		"quoteAssigned", templateData{Quote: q, User: admin})
}

// QuoteAdminReplied forwards an admin reply to the customer.
func (n *Notifier) QuoteAdminReplied(q *model.QuoteRequest, reply *model.QuoteReply) {
	n.send([]string{q.Email}, nil,
		fmt.Sprintf("Update on Your Quote Request | %s", brandName),
		"quoteReplyCustomer", templateData{Quote: q, Reply: reply})
}

// QuoteCustomerReplied forwards a customer reply to the admins.
func (n *Notifier) QuoteCustomerReplied(q *model.QuoteRequest, reply *model.QuoteReply) {
	n.sendAdmins(fmt.Sprintf("Customer Reply on Quote #%d", q.ID),
		"quoteReplyAdmin", templateData{Quote: q, Reply: reply})
}

// SubscriberWelcome confirms a newsletter subscription.
func (n *Notifier) SubscriberWelcome(sub *model.Subscriber) {
	n.send([]string{sub.Email}, nil, "You're Subscribed | "+brandName, "subscriberWelcome",
		templateData{UnsubscribeURL: n.unsubscribeURL(sub)})
}

// NewsletterIssue fans the issue out, one message per subscriber so
// each carries its own unsubscribe link.
func (n *Notifier) NewsletterIssue(issue *model.Newsletter, subs []model.Subscriber) {
	for i := range subs {
		sub := &subs[i]
		n.send([]string{sub.Email}, nil, issue.Subject, "newsletterIssue", templateData{
			Content:        template.HTML(issue.Content),
			UnsubscribeURL: n.unsubscribeURL(sub),
		})
	}
}

func (n *Notifier) unsubscribeURL(sub *model.Subscriber) string {
	return fmt.Sprintf("%s/newsletter/unsubscribe/%s", n.frontendURL, sub.UnsubscribeToken)
}
