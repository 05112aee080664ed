package test

import (
	"context"
	"time"

	"github.com/mgv-tech/backoffice/internal/domain/model"
	"github.com/mgv-tech/backoffice/internal/usecase"
)

// UserFacadeStub simulates account facade interactions.
type UserFacadeStub struct {
	RegisterFn      func(context.Context, string, string, string) (*model.User, string, error)
	AuthenticateFn  func(context.Context, string, string) (*model.User, string, error)
	ParseFn         func(string) (int64, string, error)
	ProfileFn       func(context.Context, int64) (*model.User, error)
	UpdateProfileFn func(context.Context, int64, string, string, string) (*model.User, error)
	ResetRequestFn  func(context.Context, string) error
	ResetFn         func(context.Context, string, string) (*model.User, error)
	Users           []model.User
	Err             error
}

func (s UserFacadeStub) Register(ctx context.Context, name, email, password string) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, name, email, password)
	}
	return &model.User{ID: 1, Name: name, Email: email, Role: model.RoleCustomer}, "token", s.Err
}

func (s UserFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	if s.Err != nil {
		return nil, "", s.Err
	}
	return &model.User{ID: 1, Email: email, Role: model.RoleCustomer}, "token", nil
}

func (s UserFacadeStub) ParseToken(token string) (int64, string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, string(model.RoleCustomer), nil
}

func (s UserFacadeStub) Profile(ctx context.Context, userID int64) (*model.User, error) {
	if s.ProfileFn != nil {
		return s.ProfileFn(ctx, userID)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return &model.User{ID: userID, Email: "user@example.com", Role: model.RoleCustomer}, nil
}

func (s UserFacadeStub) UpdateProfile(ctx context.Context, userID int64, name, email, password string) (*model.User, error) {
	if s.UpdateProfileFn != nil {
		return s.UpdateProfileFn(ctx, userID, name, email, password)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return &model.User{ID: userID, Name: name, Email: email}, nil
}

func (s UserFacadeStub) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.Users, s.Err
}

func (s UserFacadeStub) ListAdmins(ctx context.Context) ([]model.User, error) {
	return s.Users, s.Err
}

func (s UserFacadeStub) SetUserRole(ctx context.Context, userID int64, role model.Role) error {
	return s.Err
}

func (s UserFacadeStub) SetUserDisabled(ctx context.Context, userID int64, disabled bool) error {
	return s.Err
}

func (s UserFacadeStub) DeleteUser(ctx context.Context, userID int64) error { return s.Err }

func (s UserFacadeStub) RequestPasswordReset(ctx context.Context, email string) error {
	if s.ResetRequestFn != nil {
		return s.ResetRequestFn(ctx, email)
	}
	return s.Err
}

func (s UserFacadeStub) ResetPassword(ctx context.Context, token, password string) (*model.User, error) {
	if s.ResetFn != nil {
		return s.ResetFn(ctx, token, password)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return &model.User{ID: 1}, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CreateFn    func(context.Context, int64, usecase.CreateOrderInput) (*model.Order, error)
	GetFn       func(context.Context, int64, int64, model.Role) (*model.Order, error)
	TrackFn     func(context.Context, string) (*model.PublicOrderStatus, error)
	SetStatusFn func(context.Context, int64, model.OrderStatus) (*model.Order, error)
	Orders      []model.Order
	Err         error
}

func (s OrderFacadeStub) CreateOrder(ctx context.Context, userID int64, in usecase.CreateOrderInput) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, userID, in)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return &model.Order{ID: 1, UserID: userID, Number: "MGV000000001", Status: model.OrderStatusPending}, nil
}

func (s OrderFacadeStub) Order(ctx context.Context, orderID, requesterID int64, requesterRole model.Role) (*model.Order, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, orderID, requesterID, requesterRole)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return &model.Order{ID: orderID, UserID: requesterID}, nil
}

func (s OrderFacadeStub) TrackOrder(ctx context.Context, number string) (*model.PublicOrderStatus, error) {
	if s.TrackFn != nil {
		return s.TrackFn(ctx, number)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return &model.PublicOrderStatus{Number: number, Status: model.OrderStatusPending, CreatedAt: time.Unix(0, 0)}, nil
}

func (s OrderFacadeStub) MyOrders(ctx context.Context, userID int64) ([]model.Order, error) {
	return s.Orders, s.Err
}

func (s OrderFacadeStub) AllOrders(ctx context.Context) ([]model.Order, error) {
	return s.Orders, s.Err
}

func (s OrderFacadeStub) DeliverOrder(ctx context.Context, orderID int64) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusDelivered, IsDelivered: true}, nil
}

func (s OrderFacadeStub) SetOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error) {
	if s.SetStatusFn != nil {
		return s.SetStatusFn(ctx, orderID, status)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return &model.Order{ID: orderID, Status: status}, nil
}

func (s OrderFacadeStub) DeleteOrder(ctx context.Context, orderID int64) error { return s.Err }

// QuoteFacadeStub simulates quote endpoints.
type QuoteFacadeStub struct {
	SubmitFn        func(context.Context, string, string, string, string, string) (*model.QuoteRequest, error)
	ProfileFn       func(context.Context, int64) (*model.User, error)
	CustomerReplyFn func(context.Context, int64, string, string) (*model.QuoteReply, error)
	Quotes          []model.QuoteRequest
	Err             error
}

func (s QuoteFacadeStub) SubmitQuote(ctx context.Context, name, email, phone, service, message string) (*model.QuoteRequest, error) {
	if s.SubmitFn != nil {
		return s.SubmitFn(ctx, name, email, phone, service, message)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return &model.QuoteRequest{ID: 1, Name: name, Email: email, Service: service, Status: model.QuoteStatusWaitingForSupport}, nil
}

func (s QuoteFacadeStub) Quote(ctx context.Context, quoteID int64) (*model.QuoteRequest, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return &model.QuoteRequest{ID: quoteID}, nil
}

func (s QuoteFacadeStub) AllQuotes(ctx context.Context) ([]model.QuoteRequest, error) {
	return s.Quotes, s.Err
}

func (s QuoteFacadeStub) QuotesByEmail(ctx context.Context, email string) ([]model.QuoteRequest, error) {
	return s.Quotes, s.Err
}

func (s QuoteFacadeStub) AssignedQuotes(ctx context.Context, adminID int64) ([]model.QuoteRequest, error) {
	return s.Quotes, s.Err
}

func (s QuoteFacadeStub) AssignQuote(ctx context.Context, quoteID, adminID int64) error {
	return s.Err
}

func (s QuoteFacadeStub) AdminReplyQuote(ctx context.Context, quoteID, adminID int64, message string) (*model.QuoteReply, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return &model.QuoteReply{ID: 1, QuoteID: quoteID, Message: message, SenderType: model.QuoteSenderAdmin}, nil
}

func (s QuoteFacadeStub) CustomerReplyQuote(ctx context.Context, quoteID int64, email, message string) (*model.QuoteReply, error) {
	if s.CustomerReplyFn != nil {
		return s.CustomerReplyFn(ctx, quoteID, email, message)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return &model.QuoteReply{ID: 1, QuoteID: quoteID, Message: message, SenderType: model.QuoteSenderCustomer}, nil
}

func (s QuoteFacadeStub) SetQuoteStatus(ctx context.Context, quoteID int64, status model.QuoteStatus) error {
	return s.Err
}

func (s QuoteFacadeStub) DeleteQuote(ctx context.Context, quoteID int64) error { return s.Err }

func (s QuoteFacadeStub) Profile(ctx context.Context, userID int64) (*model.User, error) {
	if s.ProfileFn != nil {
		return s.ProfileFn(ctx, userID)
	}
	return &model.User{ID: userID, Email: "user@example.com"}, nil
}

// ProjectFacadeStub simulates portfolio endpoints.
type ProjectFacadeStub struct {
	ProjectList []model.Project
	Err         error
}

func (s ProjectFacadeStub) CreateProject(ctx context.Context, p *model.Project) (*model.Project, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	created := *p
	created.ID = 1
	return &created, nil
}

func (s ProjectFacadeStub) Project(ctx context.Context, id int64) (*model.Project, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return &model.Project{ID: id, Title: "project"}, nil
}

func (s ProjectFacadeStub) Projects(ctx context.Context) ([]model.Project, error) {
	return s.ProjectList, s.Err
}

func (s ProjectFacadeStub) UpdateProject(ctx context.Context, p *model.Project) (*model.Project, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return p, nil
}

func (s ProjectFacadeStub) DeleteProject(ctx context.Context, id int64) error { return s.Err }

// NewsletterFacadeStub simulates newsletter endpoints.
type NewsletterFacadeStub struct {
	SubscribeFn func(context.Context, string, string) (*model.Subscriber, error)
	SendFn      func(context.Context, int64) (*model.Newsletter, error)
	Subs        []model.Subscriber
	Issues      []model.Newsletter
	Err         error
}

func (s NewsletterFacadeStub) Subscribe(ctx context.Context, email, name string) (*model.Subscriber, error) {
	if s.SubscribeFn != nil {
		return s.SubscribeFn(ctx, email, name)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return &model.Subscriber{ID: 1, Email: email, Name: name, Subscribed: true}, nil
}

func (s NewsletterFacadeStub) Unsubscribe(ctx context.Context, email string) error { return s.Err }

func (s NewsletterFacadeStub) UnsubscribeByToken(ctx context.Context, token string) error {
	return s.Err
}

func (s NewsletterFacadeStub) Subscribers(ctx context.Context) ([]model.Subscriber, error) {
	return s.Subs, s.Err
}

func (s NewsletterFacadeStub) UpdateSubscriber(ctx context.Context, id int64, name string, subscribed bool) error {
	return s.Err
}

func (s NewsletterFacadeStub) DeleteSubscriber(ctx context.Context, id int64) error { return s.Err }

func (s NewsletterFacadeStub) CreateNewsletter(ctx context.Context, subject, content string) (*model.Newsletter, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return &model.Newsletter{ID: 1, Subject: subject, Content: content, Status: model.NewsletterStatusDraft}, nil
}

func (s NewsletterFacadeStub) Newsletters(ctx context.Context) ([]model.Newsletter, error) {
	return s.Issues, s.Err
}

func (s NewsletterFacadeStub) UpdateNewsletter(ctx context.Context, id int64, subject, content string) (*model.Newsletter, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return &model.Newsletter{ID: id, Subject: subject, Content: content}, nil
}

func (s NewsletterFacadeStub) SendNewsletter(ctx context.Context, id int64) (*model.Newsletter, error) {
	if s.SendFn != nil {
		return s.SendFn(ctx, id)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return &model.Newsletter{ID: id, Status: model.NewsletterStatusSent}, nil
}

func (s NewsletterFacadeStub) DeleteNewsletter(ctx context.Context, id int64) error { return s.Err }

// BackofficeFacadeStub aggregates facade pieces for HTTP layer tests.
type BackofficeFacadeStub struct {
	UserFacadeStub
	OrderFacadeStub
	QuoteFacadeStub
	ProjectFacadeStub
	NewsletterFacadeStub
}

// Profile resolves the ambiguity between the embedded user and quote stubs.
func (s BackofficeFacadeStub) Profile(ctx context.Context, userID int64) (*model.User, error) {
	return s.UserFacadeStub.Profile(ctx, userID)
}
