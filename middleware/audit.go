package middleware

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/blogem/emma-oauth/instrumentation"
	"github.com/blogem/emma-oauth/reqctx"
	"github.com/blogem/emma-oauth/security"
)

// RequestContext puts the client IP and a request scoped logger into the
// request context and counts every served request. The IP comes from
// forwarding headers only when proxy trusts them.
func RequestContext(logger *slog.Logger, metrics *instrumentation.Metrics, proxy security.ProxyConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := proxy.ClientIP(r)
			reqLogger := logger.With(
				"request_id", chimiddleware.GetReqID(r.Context()),
				"client_ip", ip,
				"method", r.Method,
				"path", r.URL.Path,
			)

			ctx := reqctx.WithClientIP(r.Context(), ip)
			ctx = reqctx.WithLogger(ctx, reqLogger)

			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			metrics.RecordHTTPRequest(ctx, r.Method, routePattern(r), status)
		})
	}
}

// routePattern returns the matched chi route, falling back to the raw path
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}
