package http

import (
	"net/http"

	"mishkal/internal/platform/net/http/bind"
)

// BindErrorFunc turns a bind failure into the error written to the client
type BindErrorFunc func(r *http.Request, err error) error

// JSONHandler binds T with opts, calls fn and replies with its result
// bind and fn errors share the failure body for service; a returned Response is written as is
// onBind, when given, replaces the bind error before it is written
func JSONHandler[T any](service string, opts bind.JSONOptions, fn func(*http.Request, T) (any, error), onBind ...BindErrorFunc) Handler {
	return Handle(service, func(r *http.Request) Response {
		in, err := bind.ParseJSON[T](r, opts)
		if err != nil {
			for _, f := range onBind {
				err = f(r, err)
			}
			return Error(err)
		}
		return result(fn(r, in))
	})
}

// JSONHandlerNoBody calls fn without parsing a request body and wraps the result
func JSONHandlerNoBody(service string, fn func(*http.Request) (any, error)) Handler {
	return Handle(service, func(r *http.Request) Response {
		return result(fn(r))
	})
}

func result(out any, err error) Response {
	if err != nil {
		return Error(err)
	}
	if resp, ok := out.(Response); ok {
		return resp
	}
	return OK(out)
}
