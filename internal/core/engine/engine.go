// Package engine defines the diacritization engine contract and its concrete engines
package engine

import (
	"context"
	"sync"
)

// Engine turns undiacritized Arabic text into vocalized text
// it is built once at startup and shared by every request
type Engine interface {
	Diacritize(ctx context.Context, text string) (string, error)
}

// Pinger is implemented by engines that can report readiness
type Pinger interface {
	Ping(ctx context.Context) error
}

// Concurrenter is implemented by engines that declare whether concurrent calls are safe
// engines without it are treated as not safe
type Concurrenter interface {
	Concurrent() bool
}

// IsConcurrent reports whether e declares itself safe for concurrent calls
func IsConcurrent(e Engine) bool {
	c, ok := e.(Concurrenter)
	return ok && c.Concurrent()
}

// Guard returns e unchanged when it is safe for concurrent use, otherwise a Serial wrapper
func Guard(e Engine) Engine {
	if IsConcurrent(e) {
		return e
	}
	return NewSerial(e)
}

// Serial runs at most one call on the wrapped engine at a time
type Serial struct {
	mu    sync.Mutex
	inner Engine
}

// NewSerial wraps e; wrapping a Serial again returns it as is
func NewSerial(e Engine) *Serial {
	if s, ok := e.(*Serial); ok {
		return s
	}
	return &Serial{inner: e}
}

// Diacritize holds the lock for the whole engine call
func (s *Serial) Diacritize(ctx context.Context, text string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Diacritize(ctx, text)
}

// Ping forwards to the wrapped engine when it is a Pinger
func (s *Serial) Ping(ctx context.Context) error {
	if p, ok := s.inner.(Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

// Concurrent is true, the wrapper itself serializes
func (s *Serial) Concurrent() bool { return true }

// Unwrap returns the wrapped engine
func (s *Serial) Unwrap() Engine { return s.inner }

// Func adapts a plain function to Engine; it is not declared concurrent
type Func func(ctx context.Context, text string) (string, error)

// Diacritize calls f
func (f Func) Diacritize(ctx context.Context, text string) (string, error) { return f(ctx, text) }
