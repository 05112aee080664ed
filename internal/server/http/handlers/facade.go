package handlers

import (
	"context"

	"github.com/mgv-tech/backoffice/internal/domain/model"
	"github.com/mgv-tech/backoffice/internal/usecase"
)

// UserFacade describes the account capabilities required by handlers.
type UserFacade interface {
	Register(ctx context.Context, name, email, password string) (*model.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (int64, string, error)
	Profile(ctx context.Context, userID int64) (*model.User, error)
	UpdateProfile(ctx context.Context, userID int64, name, email, password string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	ListAdmins(ctx context.Context) ([]model.User, error)
	SetUserRole(ctx context.Context, userID int64, role model.Role) error
	SetUserDisabled(ctx context.Context, userID int64, disabled bool) error
	DeleteUser(ctx context.Context, userID int64) error
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password string) (*model.User, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, userID int64, in usecase.CreateOrderInput) (*model.Order, error)
	Order(ctx context.Context, orderID, requesterID int64, requesterRole model.Role) (*model.Order, error)
	TrackOrder(ctx context.Context, number string) (*model.PublicOrderStatus, error)
	MyOrders(ctx context.Context, userID int64) ([]model.Order, error)
	AllOrders(ctx context.Context) ([]model.Order, error)
	DeliverOrder(ctx context.Context, orderID int64) (*model.Order, error)
	SetOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error)
	DeleteOrder(ctx context.Context, orderID int64) error
}

// QuoteFacade covers the quote conversation flow. Profile is needed to
// resolve the caller's email for customer-side operations.
type QuoteFacade interface {
	SubmitQuote(ctx context.Context, name, email, phone, service, message string) (*model.QuoteRequest, error)
	Quote(ctx context.Context, quoteID int64) (*model.QuoteRequest, error)
	AllQuotes(ctx context.Context) ([]model.QuoteRequest, error)
	QuotesByEmail(ctx context.Context, email string) ([]model.QuoteRequest, error)
	AssignedQuotes(ctx context.Context, adminID int64) ([]model.QuoteRequest, error)
	AssignQuote(ctx context.Context, quoteID, adminID int64) error
	AdminReplyQuote(ctx context.Context, quoteID, adminID int64, message string) (*model.QuoteReply, error)
	CustomerReplyQuote(ctx context.Context, quoteID int64, email, message string) (*model.QuoteReply, error)
	SetQuoteStatus(ctx context.Context, quoteID int64, status model.QuoteStatus) error
	DeleteQuote(ctx context.Context, quoteID int64) error
	Profile(ctx context.Context, userID int64) (*model.User, error)
}

// ProjectFacade covers portfolio management.
type ProjectFacade interface {
	CreateProject(ctx context.Context, p *model.Project) (*model.Project, error)
	Project(ctx context.Context, id int64) (*model.Project, error)
	Projects(ctx context.Context) ([]model.Project, error)
	UpdateProject(ctx context.Context, p *model.Project) (*model.Project, error)
	DeleteProject(ctx context.Context, id int64) error
}

// NewsletterFacade covers subscriptions and issue management.
type NewsletterFacade interface {
	Subscribe(ctx context.Context, email, name string) (*model.Subscriber, error)
	Unsubscribe(ctx context.Context, email string) error
	UnsubscribeByToken(ctx context.Context, token string) error
	Subscribers(ctx context.Context) ([]model.Subscriber, error)
	UpdateSubscriber(ctx context.Context, id int64, name string, subscribed bool) error
	DeleteSubscriber(ctx context.Context, id int64) error
	CreateNewsletter(ctx context.Context, subject, content string) (*model.Newsletter, error)
	Newsletters(ctx context.Context) ([]model.Newsletter, error)
	UpdateNewsletter(ctx context.Context, id int64, subject, content string) (*model.Newsletter, error)
	SendNewsletter(ctx context.Context, id int64) (*model.Newsletter, error)
	DeleteNewsletter(ctx context.Context, id int64) error
}

// BackofficeFacade aggregates the full set of operations used across handlers.
type BackofficeFacade interface {
	UserFacade
	OrderFacade
	QuoteFacade
	ProjectFacade
	NewsletterFacade
}
