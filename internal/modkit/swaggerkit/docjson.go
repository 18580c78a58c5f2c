package swaggerkit

import (
	_ "embed"
	"encoding/json"
	"net/http"
	"sync"

	"mishkal/internal/core/version"
)

//go:embed openapi.json
var openapiDoc string

// DocMutator lets modules tweak the parsed document before it is served
type DocMutator func(map[string]any)

var (
	mutMu    sync.RWMutex
	mutators []DocMutator
)

// docReader is a seam so tests can inject invalid JSON
var docReader = func() string { return openapiDoc }

// Register adds a doc mutator for the served document
func Register(m DocMutator) {
	if m == nil {
		return
	}
	mutMu.Lock()
	mutators = append(mutators, m)
	mutMu.Unlock()
}

// serveDocJSON serves the OpenAPI JSON with runtime details filled in
func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var doc map[string]any
		if err := json.Unmarshal([]byte(docReader()), &doc); err != nil {
			http.Error(w, "doc parse error", http.StatusInternalServerError)
			return
		}

		ensureServers(doc, "/")
		stampVersion(doc, version.Version())
		ensureFailureDefinition(doc)
		addDefaultError(doc)

		mutMu.RLock()
		for _, m := range mutators {
			m(doc)
		}
		mutMu.RUnlock()

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		_ = enc.Encode(doc)
	}
}

// ensureServers pins the document to OAS 3.0.3 and adds a servers entry when missing
// swagger http ui can't render 3.1
func ensureServers(doc map[string]any, url string) {
	doc["openapi"] = "3.0.3"
	if _, ok := doc["servers"]; !ok {
		doc["servers"] = []any{
			map[string]any{"url": url},
		}
	}
}

// stampVersion reports the running build instead of the version the file was written for
func stampVersion(doc map[string]any, v string) {
	info, ok := doc["info"].(map[string]any)
	if !ok {
		info = map[string]any{}
		doc["info"] = info
	}
	info["version"] = v
}

// ensureFailureDefinition adds the flat failure model shared by every endpoint
func ensureFailureDefinition(doc map[string]any) {
	comps, ok := doc["components"].(map[string]any)
	if !ok {
		comps = map[string]any{}
		doc["components"] = comps
	}
	schemas, ok := comps["schemas"].(map[string]any)
	if !ok {
		schemas = map[string]any{}
		comps["schemas"] = schemas
	}
	if _, ok := schemas["Failure"]; ok {
		return
	}
	schemas["Failure"] = map[string]any{
		"type":        "object",
		"description": "Failure reply",
		"properties": map[string]any{
			"success": map[string]any{"type": "boolean"},
			"error":   map[string]any{"type": "string"},
			"service": map[string]any{"type": "string"},
		},
		"required": []any{"success", "error", "service"},
	}
}

// addDefaultError walks every operation and injects a 500 response if absent
func addDefaultError(doc map[string]any) {
	paths, ok := doc["paths"].(map[string]any)
	if !ok {
		return
	}
	errResp := map[string]any{
		"description": "Internal Server Error",
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": "#/components/schemas/Failure"},
				"example": map[string]any{
					"success": false,
					"error":   "internal server error",
					"service": version.Service,
				},
			},
		},
	}
	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range node {
			op, ok := opAny.(map[string]any)
			if !ok {
				continue
			}
			responses, ok := op["responses"].(map[string]any)
			if !ok {
				responses = map[string]any{}
				op["responses"] = responses
			}
			if _, exists := responses["500"]; !exists {
				responses["500"] = errResp
			}
		}
	}
}
