// @title         Mishkal API
// @version       1.0.0
// @description   Arabic text diacritization over HTTP

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"mishkal/internal/core/engine"
	"mishkal/internal/platform/config"
	"mishkal/internal/platform/logger"
	"mishkal/internal/platform/metrics"
	phttp "mishkal/internal/platform/net/http"

	"mishkal/internal/services/api"
)

func main() {
	// bring up logging early (LOG_*)
	logger.Init(logger.FromEnv())
	l := logger.Get()

	root := config.New().Prefix("MISHKAL_")
	apiCfg := root.Prefix("API_")       // MISHKAL_API_*
	engineCfg := root.Prefix("ENGINE_") // MISHKAL_ENGINE_*

	// the engine loads before anything listens; a failure here ends the process
	eng, err := engine.Open(engine.ConfigFromEnv(engineCfg))
	if err != nil {
		l.Panic().Err(err).Msg("engine.Open failed")
	}
	l.Info().Str("engine", engine.Describe(eng)).Msg("engine ready")

	// http server (reads MISHKAL_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	opt := api.FromConfig(apiCfg)
	opt.Engine = eng
	opt.Logger = l
	opt.Metrics = metrics.New()
	api.Mount(srv.Router(), opt)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	l.Info().
		Str("addr", srv.Addr()).
		Bool("swagger", opt.EnableSwagger).
		Bool("metrics", opt.EnableMetrics).
		Bool("profiler", opt.EnableProfiler).
		Msg("mishkal api starting")

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
	l.Info().Msg("mishkal api stopped")
}
