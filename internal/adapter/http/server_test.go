package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	httpadapter "github.com/couchcryptid/pothole-dashboard/internal/adapter/http"
	"github.com/couchcryptid/pothole-dashboard/internal/analytics"
	"github.com/couchcryptid/pothole-dashboard/internal/domain"
	"github.com/couchcryptid/pothole-dashboard/internal/observability"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockService struct {
	records  []domain.DisplayRecord
	listErr  error
	detail   domain.DetectionDetail
	detErr   error
	readyErr error
}

func (m *mockService) Detections(_ context.Context) ([]domain.DisplayRecord, error) {
	return m.records, m.listErr
}

func (m *mockService) Detail(_ context.Context, id string) (domain.DetectionDetail, error) {
	if m.detErr != nil {
		return domain.DetectionDetail{}, m.detErr
	}
	if m.detail.Record.ID != id {
		return domain.DetectionDetail{}, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	return m.detail, nil
}

func (m *mockService) CheckReadiness(_ context.Context) error { return m.readyErr }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer(svc *mockService) (*httpadapter.Server, *observability.Metrics) {
	metrics := observability.NewMetricsForTesting()
	return httpadapter.NewServer(":0", svc, metrics, discardLogger()), metrics
}

func get(t *testing.T, srv http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func sampleRecords() []domain.DisplayRecord {
	return []domain.DisplayRecord{
		domain.ToDisplayRecord(domain.Detection{
			ID: "DATA2", ImageName: "b.png", HazardDetected: true, Category: domain.CategoryMedium,
			Confidence: domain.Confidence{A: 0.0122, B: 0.8589, C: 0.1288},
			CapturedAt: "2026-02-17 07:12:15", Latitude: 22.630922, Longitude: 88.4271,
		}),
		domain.ToDisplayRecord(domain.Detection{
			ID: "DATA1", ImageName: "a.png", HazardDetected: true, Category: domain.CategoryLarge,
			Confidence: domain.Confidence{A: 0.0002, B: 0.0089, C: 0.9908},
			CapturedAt: "2026-02-17 07:08:39", Latitude: 22.620917, Longitude: 88.427489,
		}),
		domain.ToDisplayRecord(domain.Detection{
			ID: "DATA3", ImageName: "c.png", HazardDetected: false, Category: domain.CategorySmall,
			Confidence: domain.Confidence{A: 0.9502, B: 0.0389, C: 0.0108},
			CapturedAt: "2026-02-17 07:05:00", Latitude: -1, Longitude: -2,
		}),
	}
}

func TestHealthzReturns200(t *testing.T) {
	srv, _ := newTestServer(&mockService{})
	rec := get(t, srv, "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestReadyzReturns200WhenReady(t *testing.T) {
	srv, _ := newTestServer(&mockService{})
	rec := get(t, srv, "/readyz")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ready", body["status"])
}

func TestReadyzReturns503WhenStoreDown(t *testing.T) {
	srv, _ := newTestServer(&mockService{readyErr: fmt.Errorf("store not reachable: %w", domain.ErrStorageUnavailable)})
	rec := get(t, srv, "/readyz")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "not ready", body["status"])
	assert.Contains(t, body["error"], "storage unavailable")
}

func TestMetricsEndpoint(t *testing.T) {
	srv, _ := newTestServer(&mockService{})
	rec := get(t, srv, "/metrics")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestDetections_ReturnsRecordsInOrder(t *testing.T) {
	srv, metrics := newTestServer(&mockService{records: sampleRecords()})
	rec := get(t, srv, "/api/detections")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got []domain.DisplayRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 3)
	assert.Equal(t, []string{"DATA2", "DATA1", "DATA3"}, []string{got[0].ID, got[1].ID, got[2].ID})
	assert.Equal(t, "1.0000° S, 2.0000° W", got[2].Coordinates)

	assert.InDelta(t, 3.0, testutil.ToFloat64(metrics.RecordsServed), 0)
	assert.InDelta(t, 1.0, testutil.ToFloat64(metrics.APIRequests.WithLabelValues("detections")), 0)
}

func TestDetections_WireFieldNames(t *testing.T) {
	srv, _ := newTestServer(&mockService{records: sampleRecords()[1:2]})
	rec := get(t, srv, "/api/detections")

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	require.Len(t, raw, 1)

	for _, key := range []string{"id", "image_name", "status", "type", "confidence", "timestamp", "lat", "lng", "coordinates"} {
		assert.Contains(t, raw[0], key)
	}
	assert.Equal(t, true, raw[0]["status"])
	assert.Equal(t, "C", raw[0]["type"])
	assert.Equal(t, map[string]any{"A": 0.0002, "B": 0.0089, "C": 0.9908}, raw[0]["confidence"])
}

func TestDetections_StorageUnavailableReturnsEmptyList(t *testing.T) {
	srv, _ := newTestServer(&mockService{listErr: fmt.Errorf("%w: connect: refused", domain.ErrStorageUnavailable)})
	rec := get(t, srv, "/api/detections")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestDetections_EmptyStoreReturnsEmptyList(t *testing.T) {
	srv, _ := newTestServer(&mockService{records: []domain.DisplayRecord{}})
	rec := get(t, srv, "/api/detections")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestDetections_WrongMethod(t *testing.T) {
	srv, _ := newTestServer(&mockService{})
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/detections", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestDetail_Found(t *testing.T) {
	detail := domain.NewDetectionDetail(sampleRecords()[1])
	srv, _ := newTestServer(&mockService{detail: detail})
	rec := get(t, srv, "/api/detections/DATA1")

	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.DetectionDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "DATA1", got.Record.ID)
	assert.Equal(t, domain.SensorID, got.Metadata.SensorID)
	assert.Len(t, got.Probabilities, 3)
}

func TestDetail_NotFound(t *testing.T) {
	srv, _ := newTestServer(&mockService{})
	rec := get(t, srv, "/api/detections/NOPE")

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "NOPE")
}

func TestDetail_StorageUnavailable(t *testing.T) {
	srv, _ := newTestServer(&mockService{detErr: fmt.Errorf("%w: ping", domain.ErrStorageUnavailable)})
	rec := get(t, srv, "/api/detections/DATA1")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"error":"storage unavailable"}`, rec.Body.String())
}

func TestDetail_UnexpectedError(t *testing.T) {
	srv, _ := newTestServer(&mockService{detErr: context.DeadlineExceeded})
	rec := get(t, srv, "/api/detections/DATA1")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestAnalytics_Unfiltered(t *testing.T) {
	srv, _ := newTestServer(&mockService{records: sampleRecords()})
	rec := get(t, srv, "/api/analytics")

	require.Equal(t, http.StatusOK, rec.Code)

	var s analytics.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
	assert.Equal(t, 3, s.TotalDetections)
	assert.Equal(t, 1, s.LargeHazards)
	assert.Equal(t, analytics.CategoryCounts{A: 1, B: 1, C: 1}, s.Categories)
	assert.Equal(t, analytics.StatusCounts{Hazard: 2, Clear: 1}, s.Status)
	require.Len(t, s.TimeSeries, 3)
	assert.Equal(t, "07:05:00", s.TimeSeries[0].Time)
}

func TestAnalytics_Filtered(t *testing.T) {
	srv, _ := newTestServer(&mockService{records: sampleRecords()})
	rec := get(t, srv, "/api/analytics?type=c&status=hazard")

	require.Equal(t, http.StatusOK, rec.Code)

	var s analytics.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
	assert.Equal(t, 1, s.TotalDetections)
	require.Len(t, s.Rows, 1)
	assert.Equal(t, "DATA1", s.Rows[0].ID)
	assert.Equal(t, "99.1%", s.Rows[0].Label)
}

func TestAnalytics_BadFilter(t *testing.T) {
	srv, _ := newTestServer(&mockService{records: sampleRecords()})

	for _, path := range []string{"/api/analytics?type=Q", "/api/analytics?status=broken"} {
		rec := get(t, srv, path)
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotEmpty(t, body["error"])
	}
}

func TestAnalytics_StorageUnavailableReturnsEmptySummary(t *testing.T) {
	srv, _ := newTestServer(&mockService{listErr: domain.ErrStorageUnavailable})
	rec := get(t, srv, "/api/analytics")

	require.Equal(t, http.StatusOK, rec.Code)

	var s analytics.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
	assert.Zero(t, s.TotalDetections)
	assert.Zero(t, s.AverageConfidence)
}
