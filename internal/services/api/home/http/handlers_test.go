package http

import (
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	phttp "mishkal/internal/platform/net/http"
	kit "mishkal/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func TestIndex_ServesArabicRTLPage(t *testing.T) {
	r := phttp.AdaptChi(chi.NewRouter())
	Register(r)

	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodGet, "/", nil))

	if rr.Code != stdhttp.StatusOK {
		t.Fatalf("code = %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Fatalf("content type = %q", ct)
	}
	body := rr.Body.String()
	kit.MustContain(t, body, `<html lang="ar" dir="rtl">`)
	kit.MustContain(t, body, "/diacritize")
	kit.MustContain(t, body, "/health")
	kit.MustContain(t, body, "مَرْحَباً كَيْفَ حَالُكَ")
	if len(Index()) != rr.Body.Len() {
		t.Fatalf("body differs from embedded page")
	}
}
