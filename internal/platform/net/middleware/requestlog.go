package middleware

import (
	"net/http"

	"mishkal/internal/platform/logger"
	pnet "mishkal/internal/platform/net"
)

// RequestLogger hands the chi request id to the logger and echoes it back as X-Request-ID
// mount it after RequestID
func RequestLogger() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := pnet.RequestID(r.Context())
			if id != "" {
				w.Header().Set("X-Request-ID", id)
				r = r.WithContext(logger.WithRequest(r.Context(), id))
			}
			next.ServeHTTP(w, r)
		})
	}
}
