// Package http serves the static documentation page
package http

import (
	_ "embed"
	stdhttp "net/http"

	"mishkal/internal/modkit/httpkit"
	phttp "mishkal/internal/platform/net/http"
)

//go:embed index.html
var indexHTML []byte

// Index returns the embedded page
func Index() []byte { return indexHTML }

// Register mounts GET /
func Register(r httpkit.Router) {
	r.Get("/", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
		phttp.HTML(w, stdhttp.StatusOK, indexHTML)
	})
}
