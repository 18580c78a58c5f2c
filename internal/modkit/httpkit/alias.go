// Package httpkit provides handler and routing helpers that alias the platform http package
// use these from modules so they do not import internal/platform/net/http directly
package httpkit

import (
	"net/http"

	phttp "mishkal/internal/platform/net/http"
	"mishkal/internal/platform/net/http/bind"
)

type (
	// Response is the HTTP response type
	Response = phttp.Response

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is a re-export of the platform router seam
	Router = phttp.Router

	// JSONOptions controls request body binding
	JSONOptions = bind.JSONOptions

	// BindErrorFunc maps a bind failure to the error clients see
	BindErrorFunc = phttp.BindErrorFunc
)

// OK returns a 200 response
func OK(data any) Response { return phttp.OK(data) }

// Status returns a response with an explicit status
func Status(code int, data any) Response { return phttp.Status(code, data) }

// Error returns a response that maps an error to status and the failure body
func Error(err error) Response { return phttp.Error(err) }

// JSON binds T with opts and wraps fn; a returned Response is written as is
func JSON[T any](service string, opts JSONOptions, fn func(*http.Request, T) (any, error), onBind ...BindErrorFunc) Handler {
	return phttp.JSONHandler(service, opts, fn, onBind...)
}

// Call adapts a handler that takes no JSON body
func Call(service string, fn func(*http.Request) (any, error)) Handler {
	return phttp.JSONHandlerNoBody(service, fn)
}

// Handle lets you directly adapt a Response-returning function if you prefer
func Handle(service string, fn func(*http.Request) Response) Handler {
	return phttp.Handle(service, fn)
}
