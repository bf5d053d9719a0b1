package adapthttp

import (
	"errors"
	"net/http"
	"time"
)

type recordBody struct {
	ID      int64   `json:"id,omitempty"`
	Day     string  `json:"day"`
	Weight  float64 `json:"weight"`
	BodyFat float64 `json:"bodyFat"`
	Unit    string  `json:"unit"`
}

func parseDay(s string) (time.Time, error) {
	day, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, errors.New("day must be formatted as YYYY-MM-DD")
	}
	return day, nil
}

func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := s.userID(r)

	switch r.Method {
	case http.MethodGet:
		if limit := intQuery(r, "limit", 0); limit > 0 {
			items, err := s.records.ListRecent(ctx, userID, limit)
			if err != nil {
				writeError(w, http.StatusInternalServerError, err)
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{"items": items})
			return
		}
		items, err := s.records.History(ctx, userID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": items})

	case http.MethodPost:
		var body recordBody
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		day, err := parseDay(body.Day)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		id, err := s.records.Record(ctx, userID, day, body.Weight, body.BodyFat, body.Unit)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		s.forecast.Invalidate(userID)
		writeJSON(w, http.StatusOK, map[string]any{"id": id})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleRecordUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	userID := s.userID(r)

	var body recordBody
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	day, err := parseDay(body.Day)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.records.Update(r.Context(), userID, body.ID, day, body.Weight, body.BodyFat, body.Unit); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.forecast.Invalidate(userID)
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Server) handleRecordDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	userID := s.userID(r)

	var body struct {
		ID int64 `json:"id"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.records.Delete(r.Context(), userID, body.ID); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.forecast.Invalidate(userID)
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// handleRecordImport ingests a CSV body of date,weight,bodyFat[,unit] rows.
func (s *Server) handleRecordImport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	userID := s.userID(r)

	unit := r.URL.Query().Get("unit")
	if unit == "" {
		unit = "lb"
	}

	imported, skipped, err := s.importer.ImportCSV(r.Context(), userID, r.Body, unit)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if imported > 0 {
		s.forecast.Invalidate(userID)
	}
	writeJSON(w, http.StatusOK, map[string]any{"imported": imported, "skipped": skipped})
}
