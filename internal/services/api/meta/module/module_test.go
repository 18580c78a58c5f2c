package module

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"mishkal/internal/core/engine"
	"mishkal/internal/core/lexicon"
	modkit "mishkal/internal/modkit"
	phttp "mishkal/internal/platform/net/http"
	kit "mishkal/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func TestModule_ReadyDescribesEngine(t *testing.T) {
	p, err := lexicon.Default()
	if err != nil {
		t.Fatalf("lexicon: %v", err)
	}
	m := New(modkit.Deps{Engine: engine.Guard(engine.NewLexicon(p))})
	if m.Name() != "meta" {
		t.Fatalf("name = %q", m.Name())
	}

	r := phttp.AdaptChi(chi.NewRouter())
	m.MountRoutes(r)

	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("code = %d", rr.Code)
	}
	kit.MustContain(t, rr.Body.String(), `"engine":"lexicon(mishkal-default`)
}

func TestModule_Prefix(t *testing.T) {
	m := New(modkit.Deps{Engine: engine.Func(func(_ context.Context, s string) (string, error) { return s, nil })},
		modkit.WithPrefix("/meta"))
	r := phttp.AdaptChi(chi.NewRouter())
	m.MountRoutes(r)

	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/meta/health", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("code = %d", rr.Code)
	}
}
