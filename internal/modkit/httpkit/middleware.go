package httpkit

import (
	"net/http"
	"time"

	"mishkal/internal/platform/metrics"
	"mishkal/internal/platform/net/middleware"
)

// StackOptions configures CommonStack
type StackOptions struct {
	// Service stamps recovered panics
	Service string
	// Slow is the access log warn threshold
	Slow time.Duration
	// Metrics receives request observations when set
	Metrics *metrics.Registry
	// CORS overrides the any-origin default
	CORS middleware.CORSOptions
}

// CommonStack returns the root middleware slice for the api
// no request timeout is part of it; a diacritize call runs while the client waits
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	stack := middleware.Defaults()
	return append(stack,
		// observability
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.Slow, Metrics: o.Metrics}),

		// safety, inside the access log so recovered 500s are counted
		middleware.RecoverJSON(o.Service),

		// cross-origin
		middleware.CORS(o.CORS),
	)
}
