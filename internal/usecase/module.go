package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/mgv-tech/backoffice/internal/adapter/imagestore"
	"github.com/mgv-tech/backoffice/internal/domain/repository"
	"github.com/mgv-tech/backoffice/internal/notify"
	pkgAuth "github.com/mgv-tech/backoffice/internal/pkg/auth"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	newAuthUseCase,
	newOrderUseCase,
	newQuoteUseCase,
	newProjectUseCase,
	newNewsletterUseCase,
)

type authParams struct {
	fx.In

	Users    repository.UserRepository
	Hasher   pkgAuth.PasswordHasher
	Strategy pkgAuth.Strategy
	Notifier *notify.Notifier
}

func newAuthUseCase(p authParams) *AuthUseCase {
	return NewAuthUseCase(p.Users, p.Hasher, p.Strategy, p.Notifier)
}

type orderParams struct {
	fx.In

	Orders   repository.OrderRepository
	Products repository.ProductRepository
	Counters repository.CounterRepository
	Users    repository.UserRepository
	Notifier *notify.Notifier
}

func newOrderUseCase(p orderParams) *OrderUseCase {
	return NewOrderUseCase(p.Orders, p.Products, p.Counters, p.Users, p.Notifier)
}

type quoteParams struct {
	fx.In

	Quotes   repository.QuoteRepository
	Users    repository.UserRepository
	Notifier *notify.Notifier
}

func newQuoteUseCase(p quoteParams) *QuoteUseCase {
	return NewQuoteUseCase(p.Quotes, p.Users, p.Notifier)
}

type projectParams struct {
	fx.In

	Projects repository.ProjectRepository
	Images   imagestore.Client
	Logger   *slog.Logger
}

func newProjectUseCase(p projectParams) *ProjectUseCase {
	return NewProjectUseCase(p.Projects, p.Images, p.Logger)
}

type newsletterParams struct {
	fx.In

	Subscribers repository.SubscriberRepository
	Newsletters repository.NewsletterRepository
	Notifier    *notify.Notifier
}

func newNewsletterUseCase(p newsletterParams) *NewsletterUseCase {
	return NewNewsletterUseCase(p.Subscribers, p.Newsletters, p.Notifier)
}
