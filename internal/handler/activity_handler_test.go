package handler

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/areum/activity-backend-go/internal/activity"
	"github.com/areum/activity-backend-go/internal/models"
	"github.com/areum/activity-backend-go/internal/service"
	"github.com/gin-gonic/gin"
)

const testRateHz = 50

var testBase = time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := service.NewRecognitionService(activity.NewCalculator(0.3), nil)
	h := NewActivityHandler(svc)

	r := gin.New()
	act := r.Group("/api/v1/activity")
	{
		act.POST("/recognize", h.RecognizeActivity)
		act.POST("/metrics", h.CalculateMetrics)
		act.GET("/types", h.GetActivityTypes)
		act.GET("/history", h.GetRecognitionHistory)
	}
	return r
}

func gaitBatch(seconds int) models.AccelerationBatch {
	n := seconds * testRateHz
	samples := make([]models.AccelerationSample, n)
	for i := 0; i < n; i++ {
		phase := 2 * math.Pi * float64(i) / 20
		samples[i] = models.AccelerationSample{
			Timestamp: testBase.Add(time.Duration(i) * (time.Second / testRateHz)),
			X:         0.25 * math.Sin(phase),
			Y:         0.25 * math.Cos(phase),
			Z:         1.2,
		}
	}
	return models.AccelerationBatch{
		DataType:       "acceleration",
		DeviceInfo:     map[string]interface{}{"device_type": "test"},
		SamplingRateHz: testRateHz,
		StartTime:      testBase,
		Samples:        samples,
	}
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request body: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var envelope map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return envelope
}

func TestRecognizeActivityEndpoint(t *testing.T) {
	r := newTestRouter()

	w := postJSON(t, r, "/api/v1/activity/recognize", models.ActivityRequest{
		AccelerationData: gaitBatch(30),
		IncludeMetrics:   true,
		IncludePatterns:  true,
		UserID:           "test-user-1",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	envelope := decodeEnvelope(t, w)
	data, ok := envelope["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("missing data in envelope: %v", envelope)
	}
	if data["status"] != "success" {
		t.Errorf("status = %v, want success", data["status"])
	}
	if data["dominant_activity"] != "walking" {
		t.Errorf("dominant_activity = %v, want walking", data["dominant_activity"])
	}
	segments, ok := data["activity_segments"].([]interface{})
	if !ok || len(segments) == 0 {
		t.Error("expected at least one activity segment")
	}
}

func TestRecognizeActivityRejectsMalformedBody(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		name string
		body interface{}
	}{
		{"missing user id", map[string]interface{}{
			"acceleration_data": gaitBatch(1),
		}},
		{"missing acceleration data", map[string]interface{}{
			"user_id": "u1",
		}},
		{"wrong types", map[string]interface{}{
			"acceleration_data": "not-an-object",
			"user_id":           "u1",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := postJSON(t, r, "/api/v1/activity/recognize", tt.body); w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestRecognizeActivityEmptySamples(t *testing.T) {
	r := newTestRouter()

	batch := gaitBatch(0)
	w := postJSON(t, r, "/api/v1/activity/recognize", models.ActivityRequest{
		AccelerationData: batch,
		UserID:           "u1",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	data := decodeEnvelope(t, w)["data"].(map[string]interface{})
	if data["dominant_activity"] != "unknown" {
		t.Errorf("dominant_activity = %v, want unknown", data["dominant_activity"])
	}
	if segments, ok := data["activity_segments"].([]interface{}); !ok || len(segments) != 0 {
		t.Errorf("activity_segments = %v, want an empty list", data["activity_segments"])
	}
}

func TestCalculateMetricsEndpoint(t *testing.T) {
	r := newTestRouter()

	w := postJSON(t, r, "/api/v1/activity/metrics", gaitBatch(20))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	data := decodeEnvelope(t, w)["data"].(map[string]interface{})
	for _, field := range []string{"avg_intensity", "peak_intensity", "movement_consistency", "active_minutes", "total_duration"} {
		v, ok := data[field].(float64)
		if !ok {
			t.Fatalf("missing metric %s in %v", field, data)
		}
		if v < 0 {
			t.Errorf("%s = %v, want >= 0", field, v)
		}
	}
	if data["total_duration"].(float64) <= 0 {
		t.Error("total_duration should be positive for a 20s batch")
	}
}

func TestGetActivityTypesEndpoint(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/activity/types", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	data, ok := decodeEnvelope(t, w)["data"].([]interface{})
	if !ok {
		t.Fatal("expected a list of activity types")
	}

	want := []string{"walking", "running", "standing", "sitting", "lying", "cycling", "unknown"}
	if len(data) != len(want) {
		t.Fatalf("got %d types, want %d", len(data), len(want))
	}
	for i, typ := range want {
		if data[i] != typ {
			t.Errorf("types[%d] = %v, want %s", i, data[i], typ)
		}
	}
}

func TestGetHistoryWithoutStore(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/activity/history", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500 when history is not wired", w.Code)
	}
}
