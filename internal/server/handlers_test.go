package server

import (
	"encoding/json"
	"io"
	"math"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/claude/fittracker/internal/ingest"
	"github.com/claude/fittracker/internal/ingest/sensor"
	"github.com/claude/fittracker/internal/models"
	"github.com/google/uuid"
)

func newTestServer(apiKey string) *Server {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(sensor.NewProvider(log, false), apiKey, log)
}

func do(t *testing.T, s *Server, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

// TestHandlePackage verifies a single package is reported with an ID and the
// rendered message.
func TestHandlePackage(t *testing.T) {
	s := newTestServer("")
	rec := do(t, s, http.MethodPost, "/api/v1/packages", `{"workout_type":"SWM","data":[720,1,80,25,40]}`, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body)
	}
	var row models.ReportRow
	if err := json.NewDecoder(rec.Body).Decode(&row); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if _, err := uuid.Parse(row.ID); err != nil {
		t.Errorf("id %q is not a UUID", row.ID)
	}
	if row.TrainingType != "Swimming" {
		t.Errorf("training_type = %q, want Swimming", row.TrainingType)
	}
	if math.Abs(row.Calories-336) > 1e-9 {
		t.Errorf("calories = %v, want 336", row.Calories)
	}
	want := "Workout type: Swimming; Duration: 1.000 h; Distance: 0.994 km; Mean speed: 1.000 km/h; Calories burned: 336.000."
	if row.Message != want {
		t.Errorf("message = %q, want %q", row.Message, want)
	}
}

// TestHandlePackageErrors verifies how calculation errors map to status codes.
func TestHandlePackageErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"unknown type", `{"workout_type":"XYZ","data":[1,2,3]}`, http.StatusBadRequest},
		{"empty data", `{"workout_type":"RUN","data":[]}`, http.StatusBadRequest},
		{"argument mismatch", `{"workout_type":"RUN","data":[1,2]}`, http.StatusBadRequest},
		{"zero duration", `{"workout_type":"RUN","data":[1000,0,75]}`, http.StatusUnprocessableEntity},
		{"step count out of range", `{"workout_type":"RUN","data":[1e19,1,75]}`, http.StatusBadRequest},
		{"invalid json", `{"workout_type":`, http.StatusBadRequest},
	}
	s := newTestServer("")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, "/api/v1/packages", tt.body, nil)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.want, rec.Body)
			}
		})
	}
}

// TestHandleBatch verifies batch processing with one bad package skipped.
func TestHandleBatch(t *testing.T) {
	s := newTestServer("")
	body := "SWM;720;1;80;25;40\nXYZ;1;2;3\nWLK;9000;1;75;180\n"
	rec := do(t, s, http.MethodPost, "/api/v1/batch", body, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body)
	}
	var result ingest.Result
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if result.PackagesReported != 2 || result.PackagesRejected != 1 {
		t.Errorf("reported/rejected = %d/%d, want 2/1", result.PackagesReported, result.PackagesRejected)
	}
	if len(result.Errors) != 1 || result.Errors[0].Line != 2 {
		t.Errorf("errors = %+v, want one on line 2", result.Errors)
	}
	if result.Summary == nil || result.Summary.Sessions != 2 {
		t.Errorf("summary = %+v, want 2 sessions", result.Summary)
	}
}

// TestHandleBatchFailFast verifies that fail_fast=true stops the batch and
// reports the error status.
func TestHandleBatchFailFast(t *testing.T) {
	s := newTestServer("")
	rec := do(t, s, http.MethodPost, "/api/v1/batch?fail_fast=true", "RUN;1;2\nSWM;720;1;80;25;40\n", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	rec = do(t, s, http.MethodPost, "/api/v1/batch?fail_fast=maybe", "", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for bad flag", rec.Code)
	}

	rec = do(t, s, http.MethodPost, "/api/v1/batch", "RUN 1 2 3", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for unparseable body", rec.Code)
	}
}

// TestAPIKeyProtectsCalculations verifies the API key guards POST routes only.
func TestAPIKeyProtectsCalculations(t *testing.T) {
	s := newTestServer("secret")
	body := `{"workout_type":"RUN","data":[15000,1,75]}`

	if rec := do(t, s, http.MethodPost, "/api/v1/packages", body, nil); rec.Code != http.StatusUnauthorized {
		t.Errorf("no key: status = %d, want 401", rec.Code)
	}
	if rec := do(t, s, http.MethodPost, "/api/v1/packages", body, map[string]string{"X-API-Key": "secret"}); rec.Code != http.StatusOK {
		t.Errorf("valid key: status = %d, want 200", rec.Code)
	}
	if rec := do(t, s, http.MethodGet, "/api/v1/workout-types", "", nil); rec.Code != http.StatusOK {
		t.Errorf("workout-types: status = %d, want 200", rec.Code)
	}
}

// TestHandleWorkoutTypes verifies the catalogue of supported codes.
func TestHandleWorkoutTypes(t *testing.T) {
	s := newTestServer("")
	rec := do(t, s, http.MethodGet, "/api/v1/workout-types", "", nil)

	var types []models.WorkoutType
	if err := json.NewDecoder(rec.Body).Decode(&types); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(types) != 3 {
		t.Fatalf("types = %d, want 3", len(types))
	}
	arity := map[string]int{}
	for _, wt := range types {
		arity[wt.Code] = wt.Arity
	}
	if arity["SWM"] != 5 || arity["RUN"] != 3 || arity["WLK"] != 4 {
		t.Errorf("arity = %v", arity)
	}
}

// TestHealthz verifies the liveness endpoint and the request ID header.
func TestHealthz(t *testing.T) {
	s := newTestServer("")
	rec := do(t, s, http.MethodGet, "/healthz", "", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}
}
