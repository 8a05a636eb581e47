package controllers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/blogem/emma-oauth/authenticator"
	"github.com/blogem/emma-oauth/reqctx"
	"github.com/blogem/emma-oauth/services"
)

// StateCookieName holds the state between the redirect and the callback.
const StateCookieName = "emma_oauth_state"

type AuthController struct {
	loginService services.LoginService
	opts         Options
}

func NewAuthController(loginService services.LoginService, opts Options) *AuthController {
	return &AuthController{loginService: loginService, opts: opts}
}

// Login redirects the browser to the Emma authorization page
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	start, err := ac.loginService.BeginLogin(ctx, services.LoginRequest{
		RequestID: middleware.GetReqID(ctx),
		ClientIP:  reqctx.ClientIP(ctx),
	})
	if err != nil {
		reqctx.Logger(ctx).Error("Failed to start login", "error", err)
		writeError(w, r, http.StatusInternalServerError, "internal_error", "failed to start login")
		return
	}

	// Save the state in a cookie to validate in callback
	http.SetCookie(w, &http.Cookie{
		Name:     StateCookieName,
		Value:    start.State,
		Path:     "/callback",
		MaxAge:   int(ac.opts.StateTTL.Seconds()),
		HttpOnly: true,
		Secure:   ac.opts.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, start.URL, http.StatusFound)
}

// Callback handles the redirect back from Emma and exchanges the code
func (ac *AuthController) Callback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := reqctx.Logger(ctx)
	query := r.URL.Query()

	// The state is single use whatever the outcome
	ac.clearStateCookie(w)

	if providerErr := query.Get("error"); providerErr != "" {
		logger.Warn("Authorization denied by provider",
			"provider_error", providerErr,
			"description", query.Get("error_description"),
		)
		writeError(w, r, http.StatusBadRequest, "access_denied", "authorization was not granted")
		return
	}

	expectedState := ""
	if cookie, err := r.Cookie(StateCookieName); err == nil {
		expectedState = cookie.Value
	}

	result, err := ac.loginService.CompleteLogin(ctx, services.LoginCallback{
		Code:          query.Get("code"),
		State:         query.Get("state"),
		ExpectedState: expectedState,
		RequestID:     middleware.GetReqID(ctx),
		ClientIP:      reqctx.ClientIP(ctx),
	})
	if err != nil {
		ac.writeCallbackError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// writeCallbackError logs the full error and returns its sanitized form
func (ac *AuthController) writeCallbackError(w http.ResponseWriter, r *http.Request, err error) {
	logger := reqctx.Logger(r.Context())

	switch {
	case errors.Is(err, services.ErrMissingCode):
		logger.Warn("Callback without authorization code")
		writeError(w, r, http.StatusBadRequest, "invalid_request", "authorization code is missing")
	case errors.Is(err, services.ErrStateMismatch):
		logger.Warn("Callback state rejected", "error", err)
		writeError(w, r, http.StatusBadRequest, "invalid_state", "state parameter is invalid or expired")
	case errors.Is(err, services.ErrStateStore):
		logger.Error("Callback state lookup failed", "error", err)
		writeError(w, r, http.StatusInternalServerError, "internal_error", "failed to verify the login request")
	case errors.Is(err, authenticator.ErrTimeout):
		logger.Error("Token exchange timed out", "error", err)
		writeError(w, r, http.StatusInternalServerError, "timeout", "the identity provider did not respond in time")
	default:
		attrs := []any{"error", err}
		var exErr *authenticator.TokenExchangeError
		if errors.As(err, &exErr) {
			attrs = append(attrs, "kind", exErr.Kind, "status_code", exErr.StatusCode, "body", exErr.Body)
		}
		logger.Error("Token exchange failed", attrs...)
		writeError(w, r, http.StatusInternalServerError, "exchange_failed", "failed to exchange authorization code")
	}
}

func (ac *AuthController) clearStateCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     StateCookieName,
		Value:    "",
		Path:     "/callback",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   ac.opts.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
