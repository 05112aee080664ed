package notify

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/mgv-tech/backoffice/internal/config"
)

// Module wires the mailer, dispatcher, and notifier.
var Module = fx.Options(
	fx.Provide(newMailer),
	fx.Provide(newDispatcher),
	fx.Provide(newNotifier),
)

type mailerParams struct {
	fx.In

	Config *config.Config
}

func newMailer(p mailerParams) Mailer {
	return NewSMTPMailer(p.Config.SMTPHost, p.Config.SMTPPort, p.Config.SMTPUser,
		p.Config.SMTPPassword, p.Config.MailFrom)
}

type dispatcherParams struct {
	fx.In

	Mailer Mailer
	Config *config.Config
	Logger *slog.Logger
}

func newDispatcher(p dispatcherParams) *Dispatcher {
	return NewDispatcher(p.Mailer, p.Config.MailWorkers, p.Config.MailQueueSize, p.Logger)
}

type notifierParams struct {
	fx.In

	Dispatcher *Dispatcher
	Config     *config.Config
	Logger     *slog.Logger
}

func newNotifier(p notifierParams) *Notifier {
	return NewNotifier(p.Dispatcher, p.Config.AdminEmails, p.Config.FrontendURL, p.Logger)
}
