// Package module wires diacritize into the API using modkit
package module

import (
	modkit "mishkal/internal/modkit"
	"mishkal/internal/modkit/httpkit"
	str "mishkal/internal/platform/strings"
	dhttp "mishkal/internal/services/api/diacritize/http"
	dsvc "mishkal/internal/services/api/diacritize/service"
)

// Module implements the modkit.Module interface
type Module struct {
	built modkit.Built
	svc   dsvc.Service
}

// New constructs a diacritize module around deps.Engine
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("diacritize")}, opts...)...)
	return &Module{
		built: b,
		svc:   dsvc.New(deps.Engine, deps.Logger("diacritize"), deps.Metrics),
	}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) { dhttp.Register(rr, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.built.Name, "module name") }
