package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/claude/fittracker/internal/ingest/sensor"
	"github.com/claude/fittracker/internal/models"
	"github.com/claude/fittracker/internal/training"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleWorkoutTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, sensor.WorkoutTypes())
}

func (s *Server) handlePackage(w http.ResponseWriter, r *http.Request) {
	var pkg models.Package
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&pkg); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	row, err := s.sensor.ReportRow(pkg)
	if err != nil {
		s.log.Warn("package rejected", "workout_type", pkg.WorkoutType, "error", err, "request_id", requestIDFromContext(r))
		writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, row)
}

func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	failFast := false
	if v := r.URL.Query().Get("fail_fast"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid fail_fast: " + v})
			return
		}
		failFast = b
	}

	result, err := s.sensor.WithFailFast(failFast).ProcessReader(r.Context(), http.MaxBytesReader(w, r.Body, maxBodyBytes), nil)
	if err != nil {
		s.log.Error("batch error", "error", err, "request_id", requestIDFromContext(r))
		if result == nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		result.Message = err.Error()
		writeJSON(w, statusFor(err), result)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// statusFor maps calculation errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, training.ErrUnknownWorkoutType), errors.Is(err, training.ErrArgumentMismatch):
		return http.StatusBadRequest
	case errors.Is(err, training.ErrDomain):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
