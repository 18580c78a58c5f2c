// Package modkit provides module wiring and core deps
package modkit

import (
	"mishkal/internal/core/engine"
	"mishkal/internal/platform/config"
	"mishkal/internal/platform/logger"
	"mishkal/internal/platform/metrics"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log     *logger.Logger
	Cfg     config.Conf
	Engine  engine.Engine
	Metrics *metrics.Registry
}

// Logger returns Log, or a component child of the root logger when unset
func (d Deps) Logger(component string) *logger.Logger {
	if d.Log != nil {
		return d.Log
	}
	return logger.Named(component)
}
