package controllers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/blogem/emma-oauth/models"
	"github.com/blogem/emma-oauth/services"
)

// Controllers holds all controller instances
type Controllers struct {
	Auth      *AuthController
	Health    *HealthController
	Exchanges *ExchangeController
	Metrics   *MetricsController
}

// Options configures the controllers
type Options struct {
	// SecureCookies marks the state cookie Secure (HTTPS deployments).
	SecureCookies bool

	// StateTTL bounds the lifetime of the state cookie.
	StateTTL time.Duration
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services, metrics MetricsSource, opts Options) *Controllers {
	return &Controllers{
		Auth:      NewAuthController(services.Login, opts),
		Health:    NewHealthController(),
		Exchanges: NewExchangeController(services.Login),
		Metrics:   NewMetricsController(metrics),
	}
}

// writeJSON writes v as a JSON response with the given status code
func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// writeError writes a sanitized error body. Internal detail never goes to the client.
func writeError(w http.ResponseWriter, r *http.Request, statusCode int, code, message string) {
	writeJSON(w, statusCode, models.ErrorResponse{
		Error:     code,
		Message:   message,
		RequestID: middleware.GetReqID(r.Context()),
	})
}
