package imagestore

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/mgv-tech/backoffice/internal/config"
)

// Module exposes the image store client to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.ImageStoreURL, p.Logger)
}
