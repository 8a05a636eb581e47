package controllers

import (
	"net/http"

	"github.com/blogem/emma-oauth/models"
)

// ServiceName is reported by the health endpoint.
const ServiceName = "emma-oauth"

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

// Health reports that the process is serving
func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthStatus{Status: "healthy", Service: ServiceName})
}
