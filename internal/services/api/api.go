// Package api provides the HTTP API for the application
package api

import (
	"net/http"
	"time"

	"mishkal/internal/core/engine"
	"mishkal/internal/core/version"
	"mishkal/internal/platform/config"
	perr "mishkal/internal/platform/errors"
	"mishkal/internal/platform/logger"
	"mishkal/internal/platform/metrics"
	phttp "mishkal/internal/platform/net/http"
	"mishkal/internal/platform/net/middleware"

	"mishkal/internal/modkit"
	"mishkal/internal/modkit/httpkit"
	"mishkal/internal/modkit/swaggerkit"

	diacritizemod "mishkal/internal/services/api/diacritize/module"
	homemod "mishkal/internal/services/api/home/module"
	metamod "mishkal/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Config  config.Conf
	Engine  engine.Engine
	Logger  *logger.Logger
	Metrics *metrics.Registry

	EnableSwagger  bool
	EnableMetrics  bool
	EnableProfiler bool
	Slow           time.Duration
	CORSOrigins    []string
}

// FromConfig reads the API toggles; cfg is usually already prefixed with API_
func FromConfig(cfg config.Conf) Options {
	return Options{
		Config:         cfg,
		EnableSwagger:  cfg.MayBool("SWAGGER", true),
		EnableMetrics:  cfg.MayBool("METRICS", true),
		EnableProfiler: cfg.MayBool("PROFILER", false),
		Slow:           time.Duration(cfg.MayInt("SLOW_MS", 500)) * time.Millisecond,
		CORSOrigins:    cfg.MayCSV("CORS_ORIGINS", []string{"*"}),
	}
}

// Mount mounts the API service onto the given router
// it must run before anything else registers routes on r
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Log:     opt.Logger,
		Cfg:     opt.Config,
		Engine:  opt.Engine,
		Metrics: opt.Metrics,
	}

	r.Use(httpkit.CommonStack(httpkit.StackOptions{
		Service: version.Service,
		Slow:    opt.Slow,
		Metrics: opt.Metrics,
		CORS:    middleware.CORSOptions{AllowedOrigins: opt.CORSOrigins},
	})...)

	// unmatched paths and methods answer with the same flat failure as everything else
	r.NotFound(httpkit.Handle(version.Service, func(*http.Request) httpkit.Response {
		return httpkit.Error(perr.NotFoundf("not found"))
	}))
	r.MethodNotAllowed(httpkit.Handle(version.Service, func(*http.Request) httpkit.Response {
		return httpkit.Error(perr.MethodNotAllowedf("method not allowed"))
	}))

	mods := []modkit.Module{
		homemod.New(deps),
		metamod.New(deps),
		diacritizemod.New(deps),
	}
	log := deps.Logger("api")
	for _, m := range mods {
		m.MountRoutes(r)
		log.Debug().Str("module", m.Name()).Msg("module mounted")
	}

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
	if opt.EnableMetrics && opt.Metrics != nil {
		r.Handle("/metrics", opt.Metrics.Handler())
	}
}
