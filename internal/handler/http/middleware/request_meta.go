package middleware

import (
	"net"
	"net/http"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/bayanihr/hr201-backend-go/internal/domain/audit"
)

// RequestMeta captures client details for the activity log before the
// handlers run.
func RequestMeta(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		meta := audit.RequestMeta{
			IP:        clientIP(r),
			UserAgent: r.UserAgent(),
			RequestID: chiMiddleware.GetReqID(r.Context()),
		}
		ctx := audit.WithRequestMeta(r.Context(), meta)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
