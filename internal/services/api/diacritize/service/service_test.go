package service

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mishkal/internal/core/engine"
	"mishkal/internal/platform/metrics"
	pnet "mishkal/internal/platform/net"
	kit "mishkal/internal/platform/testkit"
	"mishkal/internal/services/api/diacritize/domain"

	"github.com/rs/zerolog"
)

func newSvc(t *testing.T, e engine.Engine) (*Svc, *bytes.Buffer, *metrics.Registry) {
	t.Helper()
	var buf bytes.Buffer
	l := zerolog.New(&buf)
	reg := metrics.New()
	return New(e, &l, reg), &buf, reg
}

func scrape(t *testing.T, reg *metrics.Registry) string {
	t.Helper()
	rr := httptest.NewRecorder()
	reg.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	return rr.Body.String()
}

func TestNew_NilEnginePanics(t *testing.T) {
	kit.MustPanic(t, func() { New(nil, nil, nil) })
}

func TestDiacritize_ReturnsEngineOutputVerbatim(t *testing.T) {
	out := "  مَرْحَباً\n"
	s, _, reg := newSvc(t, engine.Func(func(context.Context, string) (string, error) { return out, nil }))

	res, err := s.Diacritize(context.Background(), "مرحبا")
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if res.Text != out || res.Confidence != domain.NominalConfidence {
		t.Fatalf("result = %+v", res)
	}
	kit.MustContain(t, scrape(t, reg), `mishkal_diacritize_total{outcome="ok"} 1`)
}

func TestDiacritize_PassesRawTextIncludingEmpty(t *testing.T) {
	var seen []string
	s, _, _ := newSvc(t, engine.Func(func(_ context.Context, text string) (string, error) {
		seen = append(seen, text)
		return text, nil
	}))
	for _, in := range []string{"", "  مرحبا  ", "hello"} {
		if _, err := s.Diacritize(context.Background(), in); err != nil {
			t.Fatalf("unexpected: %v", err)
		}
	}
	if len(seen) != 3 || seen[0] != "" || seen[1] != "  مرحبا  " {
		t.Fatalf("engine saw %q", seen)
	}
}

func TestDiacritize_EngineErrorKeepsMessage(t *testing.T) {
	s, buf, reg := newSvc(t, engine.Func(func(context.Context, string) (string, error) {
		return "", errors.New("model not loaded")
	}))

	_, err := s.Diacritize(context.Background(), "مرحبا")
	if !engine.IsEngineError(err) {
		t.Fatalf("expected engine error, got %v", err)
	}
	if err.Error() == "" || !strings.Contains(err.Error(), "model not loaded") {
		t.Fatalf("message lost: %v", err)
	}
	kit.MustContain(t, buf.String(), `"level":"error"`)
	kit.MustContain(t, buf.String(), "diacritize failed")
	kit.MustContain(t, scrape(t, reg), `mishkal_diacritize_total{outcome="engine_error"} 1`)
}

func TestDiacritize_LogsTruncatedPreviews(t *testing.T) {
	head := strings.Repeat("ب", PreviewRunes)
	in := head + "تتتت"
	s, buf, _ := newSvc(t, engine.Func(func(_ context.Context, text string) (string, error) { return text, nil }))

	ctx := pnet.WithRequest(context.Background(), "rid-7")
	if _, err := s.Diacritize(ctx, in); err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	logs := buf.String()
	kit.MustContain(t, logs, `"input":"`+head+`"`)
	kit.MustContain(t, logs, `"output":"`+head+`"`)
	kit.MustNotContain(t, logs, "ت")
	kit.MustContain(t, logs, `"request_id":"rid-7"`)
	kit.MustContain(t, logs, `"script":"arabic"`)
}

func TestRejected_CountsInvalid(t *testing.T) {
	s, buf, reg := newSvc(t, engine.Func(func(context.Context, string) (string, error) {
		t.Fatal("engine must not be called")
		return "", nil
	}))
	s.Rejected(context.Background(), errors.New("empty body"))
	s.Rejected(context.Background(), nil)

	kit.MustContain(t, scrape(t, reg), `mishkal_diacritize_total{outcome="invalid"} 2`)
	kit.MustNotContain(t, buf.String(), `"level":"error"`)
}

func TestNilLoggerAndMetricsAreFine(t *testing.T) {
	s := New(engine.Func(func(_ context.Context, text string) (string, error) { return text, nil }), nil, nil)
	kit.MustNotPanic(t, func() {
		_, _ = s.Diacritize(context.Background(), "نص")
		s.Rejected(context.Background(), nil)
	})
}
