package httpkit

import (
	"net/http"
)

// PostJSON mounts a JSON bound handler under POST
func PostJSON[T any](r Router, service, path string, opts JSONOptions, h func(*http.Request, T) (any, error), onBind ...BindErrorFunc) {
	r.Post(path, JSON(service, opts, h, onBind...))
}

// Get registers a no-body handler
func Get(r Router, service, path string, h func(*http.Request) (any, error)) {
	r.Get(path, Call(service, h))
}

// GetResponse registers a Response-returning handler under GET
func GetResponse(r Router, service, path string, h func(*http.Request) Response) {
	r.Get(path, Handle(service, h))
}
