package handlers

import (
	"net/http"
)

// GetDashboardMetricsHandler godoc
// @Summary Active and inactive record counts per entity
// @Tags metrics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} repo.Metrics
// @Failure 500 {string} string "Internal error"
// @Router /metrics/dashboard [get]
func (h *Handlers) GetDashboardMetricsHandler(w http.ResponseWriter, r *http.Request) {
	m, err := h.Stores.DashboardMetrics(r.Context())
	if err != nil {
		h.serverError(w, r, "failed to fetch metrics", err)
		return
	}
	_ = writeJSON(w, http.StatusOK, m)
}
