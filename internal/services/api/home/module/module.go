// Package module wires the documentation page into the API
package module

import (
	modkit "mishkal/internal/modkit"
	"mishkal/internal/modkit/httpkit"
	str "mishkal/internal/platform/strings"

	homehttp "mishkal/internal/services/api/home/http"
)

// Module implements the modkit.Module interface
type Module struct {
	built modkit.Built
}

// New constructs the home module
func New(_ modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("home")}, opts...)...)
	return &Module{built: b}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, homehttp.Register)
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.built.Name, "home") }
