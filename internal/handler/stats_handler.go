package handler

import (
	"net/http"
	"strconv"

	"github.com/bagdasarian/member-search/internal/domain"
)

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	var minAvgAge *float64
	if raw := r.URL.Query().Get("min_avg_age"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			h.handleError(w, r, domain.NewBadRequestError("min_avg_age must be a number"))
			return
		}
		minAvgAge = &v
	}

	stats, err := h.statsService.GetStats(r.Context(), minAvgAge)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainStatsToHTTP(stats))
}
