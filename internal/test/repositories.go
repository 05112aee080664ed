package test

import (
	"context"
	"sync"
	"time"

	domainErrors "github.com/mgv-tech/backoffice/internal/domain/errors"
	"github.com/mgv-tech/backoffice/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	ByEmail map[string]*model.User
	ByID    map[int64]*model.User
	Next    int64
	Err     error
}

// NewUserRepositoryStub constructs the stub with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		ByEmail: make(map[string]*model.User),
		ByID:    make(map[int64]*model.User),
		Next:    1,
	}
}

// Add seeds a user, assigning an ID when missing.
func (s *UserRepositoryStub) Add(u *model.User) *model.User {
	if u.ID == 0 {
		u.ID = s.Next
		s.Next++
	} else if u.ID >= s.Next {
		s.Next = u.ID + 1
	}
	s.ByEmail[u.Email] = u
	s.ByID[u.ID] = u
	return u
}

func (s *UserRepositoryStub) Create(ctx context.Context, name, email, passwordHash string, role model.Role) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.ByEmail[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	return s.Add(&model.User{Name: name, Email: email, PasswordHash: passwordHash, Role: role, CreatedAt: time.Now()}), nil
}

func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if u, ok := s.ByEmail[email]; ok {
		return u, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if u, ok := s.ByID[id]; ok {
		return u, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *UserRepositoryStub) List(ctx context.Context) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.User, 0, len(s.ByID))
	for _, u := range s.ByID {
		out = append(out, *u)
	}
	return out, nil
}

func (s *UserRepositoryStub) ListByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var out []model.User
	for _, u := range s.ByID {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (s *UserRepositoryStub) UpdateProfile(ctx context.Context, id int64, name, email string) (*model.User, error) {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	delete(s.ByEmail, u.Email)
	u.Name, u.Email = name, email
	s.ByEmail[email] = u
	return u, nil
}

func (s *UserRepositoryStub) UpdateRole(ctx context.Context, id int64, role model.Role) error {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	u.Role = role
	return nil
}

func (s *UserRepositoryStub) SetDisabled(ctx context.Context, id int64, disabled bool) error {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	u.Disabled = disabled
	return nil
}

func (s *UserRepositoryStub) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	u.PasswordHash = passwordHash
	u.ResetTokenHash = nil
	u.ResetExpiresAt = nil
	return nil
}

func (s *UserRepositoryStub) SetResetToken(ctx context.Context, id int64, tokenHash string, expiresAt time.Time) error {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	u.ResetTokenHash = &tokenHash
	u.ResetExpiresAt = &expiresAt
	return nil
}

func (s *UserRepositoryStub) ResetPassword(ctx context.Context, tokenHash, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, u := range s.ByID {
		if u.ResetTokenHash != nil && *u.ResetTokenHash == tokenHash {
			if u.ResetExpiresAt == nil || u.ResetExpiresAt.Before(time.Now()) {
				return nil, domainErrors.ErrInvalidResetToken
			}
			u.PasswordHash = passwordHash
			u.ResetTokenHash = nil
			u.ResetExpiresAt = nil
			return u, nil
		}
	}
	return nil, domainErrors.ErrInvalidResetToken
}

func (s *UserRepositoryStub) Delete(ctx context.Context, id int64) error {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	delete(s.ByEmail, u.Email)
	delete(s.ByID, id)
	return nil
}

// ProductRepositoryStub serves a fixed catalog.
type ProductRepositoryStub struct {
	Products []model.Product
	Err      error
}

func (s *ProductRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Products {
		if s.Products[i].ID == id {
			p := s.Products[i]
			return &p, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *ProductRepositoryStub) ListByIDs(ctx context.Context, ids []int64) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var out []model.Product
	for _, id := range ids {
		for i := range s.Products {
			if s.Products[i].ID == id {
				out = append(out, s.Products[i])
				break
			}
		}
	}
	return out, nil
}

// CounterRepositoryStub hands out sequence values, safe for concurrent use.
type CounterRepositoryStub struct {
	Err    error
	NextFn func(context.Context, string) (int64, error)

	mu     sync.Mutex
	values map[string]int64
}

func (s *CounterRepositoryStub) NextValue(ctx context.Context, name string) (int64, error) {
	if s.NextFn != nil {
		return s.NextFn(ctx, name)
	}
	if s.Err != nil {
		return 0, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.values == nil {
		s.values = make(map[string]int64)
	}
	s.values[name]++
	return s.values[name], nil
}

// OrderRepositoryStub stores orders in-memory with function overrides.
type OrderRepositoryStub struct {
	CreateFn       func(context.Context, *model.Order) (*model.Order, error)
	UpdateStatusFn func(context.Context, int64, model.OrderStatus, bool, *time.Time) error

	Orders []model.Order
	Next   int64
	Err    error
}

func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Orders {
		if s.Orders[i].Number == order.Number {
			return nil, domainErrors.ErrConflict
		}
	}
	if s.Next == 0 {
		s.Next = 1
	}
	stored := *order
	stored.ID = s.Next
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	s.Next++
	s.Orders = append(s.Orders, stored)
	result := stored
	return &result, nil
}

func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			order := s.Orders[i]
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) GetByNumber(ctx context.Context, number string) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Orders {
		if s.Orders[i].Number == number {
			order := s.Orders[i]
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var out []model.Order
	for i := range s.Orders {
		if s.Orders[i].UserID == userID {
			out = append(out, s.Orders[i])
		}
	}
	return out, nil
}

func (s *OrderRepositoryStub) ListAll(ctx context.Context) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]model.Order(nil), s.Orders...), nil
}

func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus, isDelivered bool, deliveredAt *time.Time) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, status, isDelivered, deliveredAt)
	}
	if s.Err != nil {
		return s.Err
	}
	for i := range s.Orders {
		if s.Orders[i].ID == orderID {
			s.Orders[i].Status = status
			s.Orders[i].IsDelivered = isDelivered
			s.Orders[i].DeliveredAt = deliveredAt
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) Delete(ctx context.Context, id int64) error {
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			s.Orders = append(s.Orders[:i], s.Orders[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// QuoteRepositoryStub stores quote requests in-memory.
type QuoteRepositoryStub struct {
	Quotes []model.QuoteRequest
	Next   int64
	Err    error
}

func (s *QuoteRepositoryStub) Create(ctx context.Context, q *model.QuoteRequest) (*model.QuoteRequest, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Next == 0 {
		s.Next = 1
	}
	stored := *q
	stored.ID = s.Next
	stored.CreatedAt = time.Now()
	s.Next++
	s.Quotes = append(s.Quotes, stored)
	result := stored
	return &result, nil
}

func (s *QuoteRepositoryStub) GetByID(ctx context.Context, id int64) (*model.QuoteRequest, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Quotes {
		if s.Quotes[i].ID == id {
			q := s.Quotes[i]
			return &q, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *QuoteRepositoryStub) ListAll(ctx context.Context) ([]model.QuoteRequest, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]model.QuoteRequest(nil), s.Quotes...), nil
}

func (s *QuoteRepositoryStub) ListByEmail(ctx context.Context, email string) ([]model.QuoteRequest, error) {
	var out []model.QuoteRequest
	for i := range s.Quotes {
		if s.Quotes[i].Email == email {
			out = append(out, s.Quotes[i])
		}
	}
	return out, nil
}

func (s *QuoteRepositoryStub) ListAssignedTo(ctx context.Context, adminID int64) ([]model.QuoteRequest, error) {
	var out []model.QuoteRequest
	for i := range s.Quotes {
		if s.Quotes[i].AssignedTo != nil && *s.Quotes[i].AssignedTo == adminID {
			out = append(out, s.Quotes[i])
		}
	}
	return out, nil
}

func (s *QuoteRepositoryStub) Assign(ctx context.Context, id, adminID int64) error {
	for i := range s.Quotes {
		if s.Quotes[i].ID == id {
			now := time.Now()
			s.Quotes[i].AssignedTo = &adminID
			s.Quotes[i].AssignedAt = &now
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

func (s *QuoteRepositoryStub) UpdateStatus(ctx context.Context, id int64, status model.QuoteStatus) error {
	for i := range s.Quotes {
		if s.Quotes[i].ID == id {
			s.Quotes[i].Status = status
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

func (s *QuoteRepositoryStub) AddReply(ctx context.Context, reply *model.QuoteReply, status model.QuoteStatus) (*model.QuoteReply, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Quotes {
		if s.Quotes[i].ID == reply.QuoteID {
			stored := *reply
			stored.ID = int64(len(s.Quotes[i].Replies) + 1)
			stored.RepliedAt = time.Now()
			s.Quotes[i].Replies = append(s.Quotes[i].Replies, stored)
			s.Quotes[i].Status = status
			result := stored
			return &result, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *QuoteRepositoryStub) Delete(ctx context.Context, id int64) error {
	for i := range s.Quotes {
		if s.Quotes[i].ID == id {
			s.Quotes = append(s.Quotes[:i], s.Quotes[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// ProjectRepositoryStub stores projects in-memory.
type ProjectRepositoryStub struct {
	Projects []model.Project
	Next     int64
	Err      error
}

func (s *ProjectRepositoryStub) Create(ctx context.Context, p *model.Project) (*model.Project, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Next == 0 {
		s.Next = 1
	}
	stored := *p
	stored.ID = s.Next
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	s.Next++
	s.Projects = append(s.Projects, stored)
	result := stored
	return &result, nil
}

func (s *ProjectRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Project, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Projects {
		if s.Projects[i].ID == id {
			p := s.Projects[i]
			return &p, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *ProjectRepositoryStub) List(ctx context.Context) ([]model.Project, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]model.Project(nil), s.Projects...), nil
}

func (s *ProjectRepositoryStub) Update(ctx context.Context, p *model.Project) (*model.Project, error) {
	for i := range s.Projects {
		if s.Projects[i].ID == p.ID {
			updated := *p
			updated.CreatedAt = s.Projects[i].CreatedAt
			updated.UpdatedAt = time.Now()
			s.Projects[i] = updated
			result := updated
			return &result, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *ProjectRepositoryStub) Delete(ctx context.Context, id int64) error {
	for i := range s.Projects {
		if s.Projects[i].ID == id {
			s.Projects = append(s.Projects[:i], s.Projects[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// SubscriberRepositoryStub stores newsletter recipients in-memory.
type SubscriberRepositoryStub struct {
	Subscribers []model.Subscriber
	Next        int64
	Err         error
}

func (s *SubscriberRepositoryStub) Upsert(ctx context.Context, email, name, token string) (*model.Subscriber, bool, error) {
	if s.Err != nil {
		return nil, false, s.Err
	}
	for i := range s.Subscribers {
		if s.Subscribers[i].Email == email {
			s.Subscribers[i].Subscribed = true
			if name != "" {
				s.Subscribers[i].Name = name
			}
			sub := s.Subscribers[i]
			return &sub, false, nil
		}
	}
	if s.Next == 0 {
		s.Next = 1
	}
	sub := model.Subscriber{ID: s.Next, Email: email, Name: name, UnsubscribeToken: token, Subscribed: true, CreatedAt: time.Now()}
	s.Next++
	s.Subscribers = append(s.Subscribers, sub)
	result := sub
	return &result, true, nil
}

func (s *SubscriberRepositoryStub) Unsubscribe(ctx context.Context, email string) error {
	for i := range s.Subscribers {
		if s.Subscribers[i].Email == email {
			s.Subscribers[i].Subscribed = false
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

func (s *SubscriberRepositoryStub) UnsubscribeByToken(ctx context.Context, token string) error {
	for i := range s.Subscribers {
		if s.Subscribers[i].UnsubscribeToken == token {
			s.Subscribers[i].Subscribed = false
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

func (s *SubscriberRepositoryStub) ListActive(ctx context.Context) ([]model.Subscriber, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var out []model.Subscriber
	for i := range s.Subscribers {
		if s.Subscribers[i].Subscribed {
			out = append(out, s.Subscribers[i])
		}
	}
	return out, nil
}

func (s *SubscriberRepositoryStub) ListAll(ctx context.Context) ([]model.Subscriber, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]model.Subscriber(nil), s.Subscribers...), nil
}

func (s *SubscriberRepositoryStub) Update(ctx context.Context, id int64, name string, subscribed bool) error {
	for i := range s.Subscribers {
		if s.Subscribers[i].ID == id {
			s.Subscribers[i].Name = name
			s.Subscribers[i].Subscribed = subscribed
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

func (s *SubscriberRepositoryStub) Delete(ctx context.Context, id int64) error {
	for i := range s.Subscribers {
		if s.Subscribers[i].ID == id {
			s.Subscribers = append(s.Subscribers[:i], s.Subscribers[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// NewsletterRepositoryStub stores issues in-memory.
type NewsletterRepositoryStub struct {
	Issues []model.Newsletter
	Next   int64
	Err    error
}

func (s *NewsletterRepositoryStub) Create(ctx context.Context, subject, content string, status model.NewsletterStatus, sentAt *time.Time) (*model.Newsletter, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Next == 0 {
		s.Next = 1
	}
	issue := model.Newsletter{ID: s.Next, Subject: subject, Content: content, Status: status, SentAt: sentAt, CreatedAt: time.Now()}
	s.Next++
	s.Issues = append(s.Issues, issue)
	result := issue
	return &result, nil
}

func (s *NewsletterRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Newsletter, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Issues {
		if s.Issues[i].ID == id {
			issue := s.Issues[i]
			return &issue, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *NewsletterRepositoryStub) List(ctx context.Context) ([]model.Newsletter, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]model.Newsletter(nil), s.Issues...), nil
}

func (s *NewsletterRepositoryStub) Update(ctx context.Context, id int64, subject, content string) (*model.Newsletter, error) {
	for i := range s.Issues {
		if s.Issues[i].ID == id {
			s.Issues[i].Subject = subject
			s.Issues[i].Content = content
			issue := s.Issues[i]
			return &issue, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *NewsletterRepositoryStub) MarkSent(ctx context.Context, id int64, sentAt time.Time) error {
	for i := range s.Issues {
		if s.Issues[i].ID == id {
			s.Issues[i].Status = model.NewsletterStatusSent
			s.Issues[i].SentAt = &sentAt
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

func (s *NewsletterRepositoryStub) Delete(ctx context.Context, id int64) error {
	for i := range s.Issues {
		if s.Issues[i].ID == id {
			s.Issues = append(s.Issues[:i], s.Issues[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}
