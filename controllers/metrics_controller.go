package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/blogem/emma-oauth/instrumentation"
	"github.com/blogem/emma-oauth/reqctx"
)

// MetricsSource provides the current metric values
type MetricsSource interface {
	Snapshot(ctx context.Context) ([]instrumentation.MetricPoint, error)
}

type MetricsController struct {
	source MetricsSource
}

func NewMetricsController(source MetricsSource) *MetricsController {
	return &MetricsController{source: source}
}

// Show returns the collected metrics as JSON
func (mc *MetricsController) Show(w http.ResponseWriter, r *http.Request) {
	points, err := mc.source.Snapshot(r.Context())
	if errors.Is(err, instrumentation.ErrDisabled) {
		writeError(w, r, http.StatusNotFound, "metrics_disabled", "metrics are disabled")
		return
	}
	if err != nil {
		reqctx.Logger(r.Context()).Error("Failed to collect metrics", "error", err)
		writeError(w, r, http.StatusInternalServerError, "internal_error", "failed to collect metrics")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"metrics": points})
}
