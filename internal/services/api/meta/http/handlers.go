// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"mishkal/internal/core/engine"
	"mishkal/internal/core/version"
	"mishkal/internal/modkit/httpkit"
)

// ReadyTimeout bounds the engine ping
const ReadyTimeout = 2 * time.Second

// Deps are the handler dependencies
type Deps struct {
	Engine engine.Engine
	// Describe names the engine in readiness replies
	Describe func(engine.Engine) string
}

type handlers struct {
	deps Deps
	now  func() time.Time
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d, now: time.Now}

	httpkit.Get(r, version.Service, "/health", h.health)
	httpkit.GetResponse(r, version.Service, "/ready", h.ready)
	httpkit.Get(r, version.Service, "/version", h.version)
}

// HealthResponse is the liveness payload
type HealthResponse struct {
	Status  string `json:"status"  example:"healthy"`
	Service string `json:"service" example:"Mishkal"`
	Version string `json:"version" example:"1.0.0"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"engine"`
	Status string `json:"status" example:"ok"` // ok fail skipped
	Error  string `json:"error,omitempty" example:"upstream health returned status 502"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok fail
	Engine string       `json:"engine,omitempty" example:"lexicon(mishkal-default, 40 words)"`
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-10-14T13:05:00Z"`
}

// @Summary Liveness
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	// liveness never touches the engine
	return HealthResponse{
		Status:  "healthy",
		Service: version.Service,
		Version: version.Version(),
	}, nil
}

// @Summary Readiness probe with engine check
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Failure 503 {object} ReadyResponse "engine check failed"
// @Router /ready [get]
func (h *handlers) ready(r *http.Request) httpkit.Response {
	ctx, cancel := stdctx.WithTimeout(r.Context(), ReadyTimeout)
	defer cancel()

	check := ReadyCheck{Name: "engine", Status: "skipped"}
	switch p := h.deps.Engine.(type) {
	case nil:
		check.Status = "fail"
		check.Error = "no engine configured"
	case engine.Pinger:
		if err := p.Ping(ctx); err != nil {
			check.Status = "fail"
			check.Error = err.Error()
		} else {
			check.Status = "ok"
		}
	}

	out := ReadyResponse{
		Status: "ok",
		Checks: []ReadyCheck{check},
		Now:    h.now().UTC().Format(time.RFC3339),
	}
	if h.deps.Describe != nil && h.deps.Engine != nil {
		out.Engine = h.deps.Describe(h.deps.Engine)
	}
	if check.Status == "fail" {
		out.Status = "fail"
		return httpkit.Status(http.StatusServiceUnavailable, out)
	}
	return httpkit.OK(out)
}

// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}
