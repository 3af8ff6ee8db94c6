package esrespfx

import (
	"github.com/gostratum/esresp"
	"go.uber.org/fx"
)

// Module exposes the esresp parser configuration via an Fx module.
func Module() fx.Option {
	return fx.Module("esresp",
		fx.Provide(
			esresp.NewConfigFx,
			esresp.NewFx,
		),
	)
}
