package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/blogem/emma-oauth/reqctx"
	"github.com/blogem/emma-oauth/services"
)

type ExchangeController struct {
	loginService services.LoginService
}

func NewExchangeController(loginService services.LoginService) *ExchangeController {
	return &ExchangeController{loginService: loginService}
}

// List returns recent exchange metadata and totals per outcome
func (ec *ExchangeController) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid_request", "limit must be an integer")
			return
		}
		limit = n
	}

	summary, err := ec.loginService.RecentExchanges(r.Context(), limit)
	if err != nil {
		reqctx.Logger(r.Context()).Error("Failed to list exchanges", "error", err)
		writeError(w, r, http.StatusInternalServerError, "internal_error", "failed to list exchanges")
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// Get returns a single exchange record
func (ec *ExchangeController) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, r, http.StatusBadRequest, "invalid_request", "exchange id is required")
		return
	}

	record, err := ec.loginService.GetExchange(r.Context(), id)
	if errors.Is(err, services.ErrExchangeNotFound) {
		writeError(w, r, http.StatusNotFound, "not_found", "exchange not found")
		return
	}
	if err != nil {
		reqctx.Logger(r.Context()).Error("Failed to get exchange", "id", id, "error", err)
		writeError(w, r, http.StatusInternalServerError, "internal_error", "failed to get exchange")
		return
	}

	writeJSON(w, http.StatusOK, record)
}
