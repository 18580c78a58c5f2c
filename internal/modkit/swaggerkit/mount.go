// Package swaggerkit mounts Swagger UI over the embedded OpenAPI document
package swaggerkit

import (
	"net/http"

	phttp "mishkal/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// DocPath is where the JSON document is served
const DocPath = "/docs/doc.json"

// Mount the Swagger UI and JSON doc if enabled
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	r.Get("/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/docs/", http.StatusPermanentRedirect)
	})
	r.Get(DocPath, serveDocJSON())
	r.Handle("/docs/*", httpSwagger.Handler(
		httpSwagger.URL(DocPath),
	))
}
