package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/blogem/emma-oauth/instrumentation"
	"github.com/blogem/emma-oauth/models"
	"github.com/blogem/emma-oauth/reqctx"
	"github.com/blogem/emma-oauth/security"
)

// SecurityHeaders sets conservative headers on every response. Token
// responses must never be cached.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Cache-Control", "no-store")
		h.Set("Pragma", "no-cache")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		h.Set("Referrer-Policy", "no-referrer")
		next.ServeHTTP(w, r)
	})
}

// RateLimit rejects clients that exceed their per-IP token bucket
func RateLimit(limiter *security.RateLimiter, auditor *security.Auditor, metrics *instrumentation.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := reqctx.ClientIP(r.Context())
			if ip == "" {
				ip = security.GetClientIP(r, false, 0)
			}

			if !limiter.Allow(ip) {
				auditor.LogRateLimitExceeded(chimiddleware.GetReqID(r.Context()), ip)
				metrics.RecordRateLimitExceeded(r.Context())
				w.Header().Set("Retry-After", "1")
				writeError(w, r, http.StatusTooManyRequests, "rate_limit_exceeded", "too many requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeError(w http.ResponseWriter, r *http.Request, statusCode int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	err := json.NewEncoder(w).Encode(models.ErrorResponse{
		Error:     code,
		Message:   message,
		RequestID: chimiddleware.GetReqID(r.Context()),
	})
	if err != nil {
		slog.Error("Failed to encode error response", "error", err)
	}
}
