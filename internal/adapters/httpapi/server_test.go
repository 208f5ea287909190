package httpapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nayeemz/bdtradesim/config"
	"github.com/nayeemz/bdtradesim/internal/adapters/httpapi"
	"github.com/nayeemz/bdtradesim/internal/adapters/storage"
	"github.com/nayeemz/bdtradesim/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func apiConfig() config.APIConfig {
	return config.APIConfig{Addr: ":0", RateLimit: 100, RateBurst: 100}
}

func newStore(t *testing.T) *storage.SQLiteStore {
	t.Helper()
	store, err := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func storedRun(t *testing.T, store *storage.SQLiteStore, id string) *domain.RunResult {
	t.Helper()
	run := &domain.RunResult{
		Metadata: domain.RunMetadata{
			RunID: id, Scenario: "baseline", StartYear: 2025, EndYear: 2026,
			Seed: 42, CreatedAt: time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC),
		},
		Years: []domain.YearRecord{
			{Year: 2025, Aggregates: domain.AggregateMetrics{TotalExports: 50000, TotalImports: 60000, GDP: 350000, ExchangeRate: 110}},
			{Year: 2026, Aggregates: domain.AggregateMetrics{TotalExports: 53000, TotalImports: 63000, GDP: 371000, ExchangeRate: 113}},
		},
	}
	require.NoError(t, store.SaveRun(context.Background(), run))
	return run
}

func TestServer_Health(t *testing.T) {
	srv := httpapi.NewServer(apiConfig(), newStore(t), nil, nil)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestServer_ListRunsEmpty(t *testing.T) {
	srv := httpapi.NewServer(apiConfig(), newStore(t), nil, nil)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/runs", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"runs":[]}`, rec.Body.String())
}

func TestServer_GetRunAndYears(t *testing.T) {
	store := newStore(t)
	storedRun(t, store, "run-1")
	srv := httpapi.NewServer(apiConfig(), store, nil, nil)
	handler := srv.Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/runs/run-1", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var summary domain.RunSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, "run-1", summary.ID)
	assert.InDelta(t, 53000, summary.FinalExports, 1e-6)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/runs/run-1/years", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		RunID string               `json:"run_id"`
		Years []domain.YearMetrics `json:"years"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Len(t, payload.Years, 2)
	assert.Equal(t, 2025, payload.Years[0].Year)
	assert.Equal(t, 2026, payload.Years[1].Year)
}

func TestServer_GetRunNotFound(t *testing.T) {
	srv := httpapi.NewServer(apiConfig(), newStore(t), nil, nil)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/runs/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/runs/missing/years", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_SimulatePersistsTheRun(t *testing.T) {
	store := newStore(t)
	run := func(_ context.Context, req httpapi.SimRequest) (*domain.RunResult, error) {
		return &domain.RunResult{
			Metadata: domain.RunMetadata{
				RunID: "sim-1", Scenario: req.Scenario, StartYear: 2025, EndYear: 2025,
				Seed: req.Seed, CreatedAt: time.Now().UTC(),
			},
			Years: []domain.YearRecord{
				{Year: 2025, Aggregates: domain.AggregateMetrics{TotalExports: 50000, GDP: 350000}},
			},
		}, nil
	}
	srv := httpapi.NewServer(apiConfig(), store, run, nil)

	body := strings.NewReader(`{"scenario":"optimistic","seed":7}`)
	req := httptest.NewRequest(http.MethodPost, "/api/simulate", body)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	saved, err := store.GetRun(context.Background(), "sim-1")
	require.NoError(t, err)
	assert.Equal(t, "optimistic", saved.Scenario)
	assert.Equal(t, uint64(7), saved.Seed)
}

func TestServer_SimulateRequiresScenario(t *testing.T) {
	srv := httpapi.NewServer(apiConfig(), newStore(t), nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/simulate", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	// runner is nil: disabled endpoint wins over validation
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestServer_RateLimitCapsClients(t *testing.T) {
	cfg := apiConfig()
	cfg.RateLimit = 1
	cfg.RateBurst = 1
	srv := httpapi.NewServer(cfg, newStore(t), nil, nil)
	handler := srv.Handler()

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
