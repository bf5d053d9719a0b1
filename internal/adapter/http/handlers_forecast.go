package adapthttp

import (
	"errors"
	"net/http"

	"bodycomp/internal/domain"
)

// handleForecast returns the full forecast overview: history, trend line,
// both projections, and milestones, with weights in the requested unit.
// Optional query parameters days, alpha and beta override the defaults.
func (s *Server) handleForecast(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	unit := r.URL.Query().Get("unit")
	if unit == "" {
		unit = domain.UnitLb
	}
	if !domain.ValidUnit(unit) {
		writeError(w, http.StatusBadRequest, errors.New("unit must be \"kg\" or \"lb\""))
		return
	}

	cfg := s.forecast.Defaults()
	cfg.PredictionDays = intQuery(r, "days", cfg.PredictionDays)
	cfg.Alpha = floatQuery(r, "alpha", cfg.Alpha)
	cfg.Beta = floatQuery(r, "beta", cfg.Beta)
	if cfg.Alpha < 0 || cfg.Alpha > 1 || cfg.Beta < 0 || cfg.Beta > 1 {
		writeError(w, http.StatusBadRequest, errors.New("alpha and beta must be within [0, 1]"))
		return
	}

	overview, err := s.forecast.Overview(r.Context(), s.userID(r), unit, cfg)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, overview)
}
