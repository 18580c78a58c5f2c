package module

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mishkal/internal/core/engine"
	modkit "mishkal/internal/modkit"
	phttp "mishkal/internal/platform/net/http"
	kit "mishkal/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func TestModule_MountsAtRoot(t *testing.T) {
	m := New(modkit.Deps{Engine: engine.Func(func(_ context.Context, s string) (string, error) { return s + "!", nil })})
	if m.Name() != "diacritize" {
		t.Fatalf("name = %q", m.Name())
	}

	r := phttp.AdaptChi(chi.NewRouter())
	m.MountRoutes(r)

	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/diacritize", strings.NewReader(`{"text":"نص"}`)))
	if rr.Code != http.StatusOK {
		t.Fatalf("code = %d", rr.Code)
	}
	kit.MustContain(t, rr.Body.String(), `"text":"نص!"`)
}

func TestModule_PrefixOption(t *testing.T) {
	m := New(modkit.Deps{Engine: engine.Func(func(_ context.Context, s string) (string, error) { return s, nil })},
		modkit.WithPrefix("/v1"))

	r := phttp.AdaptChi(chi.NewRouter())
	m.MountRoutes(r)

	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/v1/diacritize", strings.NewReader(`{"text":""}`)))
	if rr.Code != http.StatusOK {
		t.Fatalf("code = %d", rr.Code)
	}
}

func TestModule_RequiresEngine(t *testing.T) {
	kit.MustPanic(t, func() { New(modkit.Deps{}) })
}
