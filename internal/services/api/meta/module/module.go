// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"mishkal/internal/core/engine"
	modkit "mishkal/internal/modkit"
	"mishkal/internal/modkit/httpkit"
	str "mishkal/internal/platform/strings"

	metahttp "mishkal/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	deps  modkit.Deps
	built modkit.Built
}

// New constructs a meta module; routes sit at the root unless a prefix is given
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
	}, opts...)...)

	return &Module{deps: deps, built: b}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) {
		metahttp.Register(rr, metahttp.Deps{
			Engine:   m.deps.Engine,
			Describe: engine.Describe,
		})
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.built.Name, "meta") }
