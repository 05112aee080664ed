package app

import (
	"context"

	"github.com/mgv-tech/backoffice/internal/domain/model"
	"github.com/mgv-tech/backoffice/internal/usecase"
)

// BackofficeFacade aggregates the business use cases behind one surface
// consumed by the HTTP layer.
type BackofficeFacade struct {
	auth        *usecase.AuthUseCase
	orders      *usecase.OrderUseCase
	quotes      *usecase.QuoteUseCase
	projects    *usecase.ProjectUseCase
	newsletters *usecase.NewsletterUseCase
}

// NewBackofficeFacade constructs the facade.
func NewBackofficeFacade(
	auth *usecase.AuthUseCase,
	orders *usecase.OrderUseCase,
	quotes *usecase.QuoteUseCase,
	projects *usecase.ProjectUseCase,
	newsletters *usecase.NewsletterUseCase,
) *BackofficeFacade {
	return &BackofficeFacade{auth: auth, orders: orders, quotes: quotes, projects: projects, newsletters: newsletters}
}

func (f *BackofficeFacade) Register(ctx context.Context, name, email, password string) (*model.User, string, error) {
	return f.auth.Register(ctx, name, email, password)
}

func (f *BackofficeFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *BackofficeFacade) ParseToken(token string) (int64, string, error) {
	return f.auth.ParseToken(token)
}

func (f *BackofficeFacade) Profile(ctx context.Context, userID int64) (*model.User, error) {
	return f.auth.GetByID(ctx, userID)
}

func (f *BackofficeFacade) UpdateProfile(ctx context.Context, userID int64, name, email, password string) (*model.User, error) {
	return f.auth.UpdateProfile(ctx, userID, name, email, password)
}

func (f *BackofficeFacade) ListUsers(ctx context.Context) ([]model.User, error) {
	return f.auth.ListUsers(ctx)
}

func (f *BackofficeFacade) ListAdmins(ctx context.Context) ([]model.User, error) {
	return f.auth.ListAdmins(ctx)
}

func (f *BackofficeFacade) SetUserRole(ctx context.Context, userID int64, role model.Role) error {
	return f.auth.SetRole(ctx, userID, role)
}

func (f *BackofficeFacade) SetUserDisabled(ctx context.Context, userID int64, disabled bool) error {
	return f.auth.SetDisabled(ctx, userID, disabled)
}

func (f *BackofficeFacade) DeleteUser(ctx context.Context, userID int64) error {
	return f.auth.DeleteUser(ctx, userID)
}

func (f *BackofficeFacade) RequestPasswordReset(ctx context.Context, email string) error {
	return f.auth.RequestPasswordReset(ctx, email)
}

func (f *BackofficeFacade) ResetPassword(ctx context.Context, token, password string) (*model.User, error) {
	return f.auth.ResetPassword(ctx, token, password)
}

func (f *BackofficeFacade) CreateOrder(ctx context.Context, userID int64, in usecase.CreateOrderInput) (*model.Order, error) {
	return f.orders.Create(ctx, userID, in)
}

func (f *BackofficeFacade) Order(ctx context.Context, orderID, requesterID int64, requesterRole model.Role) (*model.Order, error) {
	return f.orders.Get(ctx, orderID, requesterID, requesterRole)
}

func (f *BackofficeFacade) TrackOrder(ctx context.Context, number string) (*model.PublicOrderStatus, error) {
	return f.orders.TrackByNumber(ctx, number)
}

func (f *BackofficeFacade) MyOrders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.orders.ListByUser(ctx, userID)
}

func (f *BackofficeFacade) AllOrders(ctx context.Context) ([]model.Order, error) {
	return f.orders.ListAll(ctx)
}

func (f *BackofficeFacade) DeliverOrder(ctx context.Context, orderID int64) (*model.Order, error) {
	return f.orders.MarkDelivered(ctx, orderID)
}

func (f *BackofficeFacade) SetOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error) {
	return f.orders.SetStatus(ctx, orderID, status)
}

func (f *BackofficeFacade) DeleteOrder(ctx context.Context, orderID int64) error {
	return f.orders.Delete(ctx, orderID)
}

func (f *BackofficeFacade) SubmitQuote(ctx context.Context, name, email, phone, service, message string) (*model.QuoteRequest, error) {
	return f.quotes.Submit(ctx, name, email, phone, service, message)
}

func (f *BackofficeFacade) Quote(ctx context.Context, quoteID int64) (*model.QuoteRequest, error) {
	return f.quotes.Get(ctx, quoteID)
}

func (f *BackofficeFacade) AllQuotes(ctx context.Context) ([]model.QuoteRequest, error) {
	return f.quotes.ListAll(ctx)
}

func (f *BackofficeFacade) QuotesByEmail(ctx context.Context, email string) ([]model.QuoteRequest, error) {
	return f.quotes.ListByEmail(ctx, email)
}

func (f *BackofficeFacade) AssignedQuotes(ctx context.Context, adminID int64) ([]model.QuoteRequest, error) {
	return f.quotes.ListAssigned(ctx, adminID)
}

func (f *BackofficeFacade) AssignQuote(ctx context.Context, quoteID, adminID int64) error {
	return f.quotes.Assign(ctx, quoteID, adminID)
}

func (f *BackofficeFacade) AdminReplyQuote(ctx context.Context, quoteID, adminID int64, message string) (*model.QuoteReply, error) {
	return f.quotes.AdminReply(ctx, quoteID, adminID, message)
}

func (f *BackofficeFacade) CustomerReplyQuote(ctx context.Context, quoteID int64, email, message string) (*model.QuoteReply, error) {
	return f.quotes.CustomerReply(ctx, quoteID, email, message)
}

func (f *BackofficeFacade) SetQuoteStatus(ctx context.Context, quoteID int64, status model.QuoteStatus) error {
	return f.quotes.UpdateStatus(ctx, quoteID, status)
}

func (f *BackofficeFacade) DeleteQuote(ctx context.Context, quoteID int64) error {
	return f.quotes.Delete(ctx, quoteID)
}

func (f *BackofficeFacade) CreateProject(ctx context.Context, p *model.Project) (*model.Project, error) {
	return f.projects.Create(ctx, p)
}

func (f *BackofficeFacade) Project(ctx context.Context, id int64) (*model.Project, error) {
	return f.projects.Get(ctx, id)
}

func (f *BackofficeFacade) Projects(ctx context.Context) ([]model.Project, error) {
	return f.projects.List(ctx)
}

func (f *BackofficeFacade) UpdateProject(ctx context.Context, p *model.Project) (*model.Project, error) {
	return f.projects.Update(ctx, p)
}

func (f *BackofficeFacade) DeleteProject(ctx context.Context, id int64) error {
	return f.projects.Delete(ctx, id)
}

func (f *BackofficeFacade) Subscribe(ctx context.Context, email, name string) (*model.Subscriber, error) {
	return f.newsletters.Subscribe(ctx, email, name)
}

func (f *BackofficeFacade) Unsubscribe(ctx context.Context, email string) error {
	return f.newsletters.Unsubscribe(ctx, email)
}

func (f *BackofficeFacade) UnsubscribeByToken(ctx context.Context, token string) error {
	return f.newsletters.UnsubscribeByToken(ctx, token)
}

func (f *BackofficeFacade) Subscribers(ctx context.Context) ([]model.Subscriber, error) {
	return f.newsletters.ListSubscribers(ctx)
}

func (f *BackofficeFacade) UpdateSubscriber(ctx context.Context, id int64, name string, subscribed bool) error {
	return f.newsletters.UpdateSubscriber(ctx, id, name, subscribed)
}

func (f *BackofficeFacade) DeleteSubscriber(ctx context.Context, id int64) error {
	return f.newsletters.DeleteSubscriber(ctx, id)
}

func (f *BackofficeFacade) CreateNewsletter(ctx context.Context, subject, content string) (*model.Newsletter, error) {
	return f.newsletters.CreateDraft(ctx, subject, content)
}

func (f *BackofficeFacade) Newsletters(ctx context.Context) ([]model.Newsletter, error) {
	return f.newsletters.ListNewsletters(ctx)
}

func (f *BackofficeFacade) UpdateNewsletter(ctx context.Context, id int64, subject, content string) (*model.Newsletter, error) {
	return f.newsletters.UpdateDraft(ctx, id, subject, content)
}

func (f *BackofficeFacade) SendNewsletter(ctx context.Context, id int64) (*model.Newsletter, error) {
	return f.newsletters.Send(ctx, id)
}

func (f *BackofficeFacade) DeleteNewsletter(ctx context.Context, id int64) error {
	return f.newsletters.DeleteNewsletter(ctx, id)
}
