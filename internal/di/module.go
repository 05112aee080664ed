package di

import (
	"go.uber.org/fx"

	"github.com/mgv-tech/backoffice/internal/adapter/imagestore"
	"github.com/mgv-tech/backoffice/internal/app"
	"github.com/mgv-tech/backoffice/internal/config"
	"github.com/mgv-tech/backoffice/internal/logger"
	"github.com/mgv-tech/backoffice/internal/notify"
	"github.com/mgv-tech/backoffice/internal/pkg/auth"
	"github.com/mgv-tech/backoffice/internal/server/http/handlers"
	"github.com/mgv-tech/backoffice/internal/server/http/router"
	"github.com/mgv-tech/backoffice/internal/storage/postgres"
	"github.com/mgv-tech/backoffice/internal/usecase"
)

// Module assembles the full application graph. Extra options allow
// tests to replace pieces of it.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		imagestore.Module,
		notify.Module,
		usecase.Module,
		fx.Provide(func(f *app.BackofficeFacade) handlers.BackofficeFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
