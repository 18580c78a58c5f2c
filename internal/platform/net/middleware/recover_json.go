package middleware

import (
	stdhttp "net/http"
	"runtime/debug"

	perr "mishkal/internal/platform/errors"
	"mishkal/internal/platform/logger"
	pnet "mishkal/internal/platform/net"
	phttp "mishkal/internal/platform/net/http"
)

// RecoverJSON converts panics into the flat JSON 500 for service and logs the stack
// http.ErrAbortHandler is re-panicked so net/http can abort the connection
func RecoverJSON(service string) func(stdhttp.Handler) stdhttp.Handler {
	return func(next stdhttp.Handler) stdhttp.Handler {
		return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == stdhttp.ErrAbortHandler {
					panic(v)
				}
				logger.C(r.Context()).Error().
					Str("request_id", pnet.RequestID(r.Context())).
					Interface("panic", v).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				phttp.RespondError(w, service, perr.PanicErrf("internal server error"))
			}()
			next.ServeHTTP(w, r)
		})
	}
}
