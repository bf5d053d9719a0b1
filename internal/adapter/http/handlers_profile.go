package adapthttp

import (
	"net/http"

	"bodycomp/internal/domain"
)

type profileBody struct {
	Sex           string  `json:"sex"`
	DateOfBirth   string  `json:"dateOfBirth"`
	HeightIn      float64 `json:"heightIn"`
	ActivityLevel string  `json:"activityLevel"`
	Goal          string  `json:"goal"`
	TargetWeight  float64 `json:"targetWeight"`
	TargetRate    float64 `json:"targetRate"`
	Unit          string  `json:"unit"`
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := s.userID(r)

	switch r.Method {
	case http.MethodGet:
		p, err := s.profile.Get(ctx, userID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"profile": p})

	case http.MethodPut:
		var body profileBody
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		dob, err := parseDay(body.DateOfBirth)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		p := domain.UserProfile{
			UserID:        userID,
			Sex:           body.Sex,
			DateOfBirth:   dob,
			HeightIn:      body.HeightIn,
			ActivityLevel: body.ActivityLevel,
			Goal:          body.Goal,
			TargetWeight:  body.TargetWeight,
			TargetRate:    body.TargetRate,
			Unit:          body.Unit,
		}
		if err := s.profile.Put(ctx, p); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		s.forecast.Invalidate(userID)
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
