package http_test

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"mishkal/internal/platform/config"
	phttp "mishkal/internal/platform/net/http"
	kit "mishkal/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func TestNewServer_DefaultAddr(t *testing.T) {
	srv := phttp.NewServer(config.New().Prefix("NOPE_"))
	if srv.Addr() != "0.0.0.0:8000" {
		t.Fatalf("addr = %q", srv.Addr())
	}
}

func TestNewServer_BadAddrPanics(t *testing.T) {
	t.Setenv("BAD_ADDR", "nope")
	kit.MustPanic(t, func() { _ = phttp.NewServer(config.New().Prefix("BAD_")) })
}

func TestServer_RunServesAndStopsOnCancel(t *testing.T) {
	t.Setenv("RUN_ADDR", "127.0.0.1:0")

	optCalled := false
	srv := phttp.NewServer(config.New().Prefix("RUN_"), func(*chi.Mux) { optCalled = true })
	if !optCalled {
		t.Fatalf("expected NewServer option to be called")
	}
	srv.Router().Get("/ping", func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, "pong") })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	var resp *http.Response
	var err error
	for i := 0; i < 50; i++ {
		if addr := srv.Addr(); addr != "127.0.0.1:0" {
			resp, err = http.Get("http://" + addr + "/ping")
			if err == nil {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
	}
	if err != nil || resp == nil {
		cancel()
		t.Fatalf("server never answered: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if string(body) != "pong" {
		t.Fatalf("body = %q", body)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}
}

func TestServer_ShutdownMapsClosedToNil(t *testing.T) {
	t.Setenv("SD_ADDR", "127.0.0.1:0")
	srv := phttp.NewServer(config.New().Prefix("SD_"))

	done := make(chan error, 1)
	go func() { done <- srv.Run(context.Background()) }()
	for i := 0; i < 50 && srv.Addr() == "127.0.0.1:0"; i++ {
		time.Sleep(10 * time.Millisecond)
	}
	if err := srv.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	if err := <-done; err != nil {
		t.Fatalf("Run returned %v", err)
	}
}
