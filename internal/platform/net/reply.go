package net

import (
	"net/http"

	perr "mishkal/internal/platform/errors"
)

// Failure is the flat failure body shared by every endpoint
// success is always false and service names the answering service
type Failure struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Service string `json:"service"`
}

// HTTPStatus maps a project error to an http status, nil is 200
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	return perr.HTTPStatus(err)
}

// Error builds the status and failure body for err
// the message is the error's own message, never the cause chain
func Error(err error, service string) (int, Failure) {
	if err == nil {
		err = perr.Newf(perr.ErrorCodeUnknown, "%s", http.StatusText(http.StatusInternalServerError))
	}
	return HTTPStatus(err), Failure{
		Success: false,
		Error:   perr.WireFrom(err).Message,
		Service: service,
	}
}
