package engine

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	pnet "mishkal/internal/platform/net"
)

func newUpstream(t *testing.T, h http.HandlerFunc) *Remote {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	u, _ := url.Parse(srv.URL + "/")
	r, err := NewRemote(RemoteOptions{Upstream: u, Timeout: 2 * time.Second})
	if err != nil {
		t.Fatalf("NewRemote: %v", err)
	}
	return r
}

func TestRemote_Success(t *testing.T) {
	var gotID, gotPath string
	var gotBody upstreamRequest
	r := newUpstream(t, func(w http.ResponseWriter, req *http.Request) {
		gotPath = req.URL.Path
		gotID = req.Header.Get("X-Request-ID")
		_ = json.NewDecoder(req.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true, "text": "مَرْحَباً", "confidence": 0.9, "service": "Mishkal",
		})
	})

	ctx := pnet.WithRequest(context.Background(), "rid-7")
	got, err := r.Diacritize(ctx, "مرحبا")
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if got != "مَرْحَباً" {
		t.Fatalf("text = %q", got)
	}
	if gotPath != "/diacritize" || gotID != "rid-7" || gotBody.Text != "مرحبا" {
		t.Fatalf("upstream saw path=%q id=%q body=%+v", gotPath, gotID, gotBody)
	}
}

func TestRemote_MintsRequestID(t *testing.T) {
	var gotID string
	r := newUpstream(t, func(w http.ResponseWriter, req *http.Request) {
		gotID = req.Header.Get("X-Request-ID")
		_, _ = w.Write([]byte(`{"success":true,"text":""}`))
	})
	if _, err := r.Diacritize(context.Background(), ""); err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if len(gotID) != 36 {
		t.Fatalf("expected a uuid request id, got %q", gotID)
	}
}

func TestRemote_UpstreamFailureMessageVerbatim(t *testing.T) {
	r := newUpstream(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"error":"'NoneType' object has no attribute 'split'","service":"Mishkal"}`))
	})
	_, err := r.Diacritize(context.Background(), "x")
	if !IsEngineError(err) || err.Error() != "'NoneType' object has no attribute 'split'" {
		t.Fatalf("unexpected err %v", err)
	}
}

func TestRemote_NonJSONAndEmptyError(t *testing.T) {
	r := newUpstream(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	})
	_, err := r.Diacritize(context.Background(), "x")
	if !IsEngineError(err) || err.Error() != "upstream returned status 502 with a non JSON body" {
		t.Fatalf("unexpected err %v", err)
	}

	r2 := newUpstream(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte(`{"success":false}`))
	})
	_, err = r2.Diacritize(context.Background(), "x")
	if err == nil || err.Error() != "upstream returned status 418" {
		t.Fatalf("unexpected err %v", err)
	}
}

func TestRemote_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	u, _ := url.Parse(srv.URL)
	srv.Close()

	r, err := NewRemote(RemoteOptions{Upstream: u})
	if err != nil {
		t.Fatalf("NewRemote: %v", err)
	}
	if _, err := r.Diacritize(context.Background(), "x"); !IsEngineError(err) {
		t.Fatalf("expected engine error, got %v", err)
	}
	if err := r.Ping(context.Background()); !IsEngineError(err) {
		t.Fatalf("expected engine error from ping, got %v", err)
	}
}

func TestRemote_Ping(t *testing.T) {
	r := newUpstream(t, func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path != "/health" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"status":"healthy"}`))
	})
	if err := r.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}

	down := newUpstream(t, func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusServiceUnavailable) })
	if err := down.Ping(context.Background()); err == nil || err.Error() != "upstream health returned status 503" {
		t.Fatalf("unexpected ping err %v", err)
	}
}

func TestNewRemote_RequiresAbsoluteURL(t *testing.T) {
	if _, err := NewRemote(RemoteOptions{}); err == nil {
		t.Fatalf("expected error for missing upstream")
	}
	rel, _ := url.Parse("/relative")
	if _, err := NewRemote(RemoteOptions{Upstream: rel}); err == nil {
		t.Fatalf("expected error for relative upstream")
	}
}

func TestRemote_LongTextRoundTrips(t *testing.T) {
	long := strings.Repeat("م", 3<<20)
	r := newUpstream(t, func(w http.ResponseWriter, req *http.Request) {
		var in upstreamRequest
		_ = json.NewDecoder(req.Body).Decode(&in)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "text": in.Text})
	})
	got, err := r.Diacritize(context.Background(), long)
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if got != long {
		t.Fatalf("text length = %d, want %d", len(got), len(long))
	}
}
