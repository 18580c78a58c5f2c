// Package http provides the chi backed server, router seam and flat JSON reply helpers
package http

import (
	"encoding/json"
	stdhttp "net/http"

	pnet "mishkal/internal/platform/net"
)

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

// HTML writes a text/html document with the given status
func HTML(w stdhttp.ResponseWriter, status int, doc []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(doc)
}

// RespondError writes the flat failure body for err, stamped with service
func RespondError(w stdhttp.ResponseWriter, service string, err error) {
	status, body := pnet.Error(err, service)
	JSON(w, status, body)
}

//
// Return-style helpers for early returns in handlers
//

// Response is a functional response object for return-style handlers
type Response struct {
	Status int
	Body   any
	// optional headers if a handler wants to add any
	Header stdhttp.Header
}

// Handle adapts a Response-returning handler to net/http
// an error Body becomes the failure body for service, anything else is encoded as is
func Handle(service string, h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, service)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, service string) {
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}
	if err, ok := resp.Body.(error); ok && err != nil {
		status, body := pnet.Error(err, service)
		if resp.Status != 0 {
			status = resp.Status
		}
		JSON(w, status, body)
		return
	}
	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	if status == stdhttp.StatusNoContent {
		w.WriteHeader(status)
		return
	}
	JSON(w, status, resp.Body)
}

// OK returns a 200 response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Status returns a response with an explicit status
func Status(code int, data any) Response { return Response{Status: code, Body: data} }

// Error returns a response whose status and body derive from err
func Error(err error) Response { return Response{Body: err} }
