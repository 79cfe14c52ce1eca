package rest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"linux-monitor/internal/config"
	"linux-monitor/internal/domain"
	"linux-monitor/internal/logger"
	"linux-monitor/internal/storage/snapshot"
)

type storeCounter struct{ stored int }

func (s *storeCounter) SnapshotStored() { s.stored++ }

func newTestRouter(store *snapshot.SnapshotStore, obs StoreObserver) http.Handler {
	cfg := config.Default()
	cfg.AllowedOrigins = []string{"http://viewer.example"}

	return NewRouter(cfg, logger.Discard(), &RouterDeps{
		Monitor: NewMonitorHandler(store, logger.Discard(), obs),
	})
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestPublishThenLatest(t *testing.T) {
	store := snapshot.NewSnapshotStore()
	obs := &storeCounter{}
	h := newTestRouter(store, obs)

	body, _ := json.Marshal(domain.Snapshot{
		Host:     "box",
		Sequence: 5,
		CPUStats: []domain.CPUStatMetric{{Name: "cpu", UserPercent: 30}},
		Network:  []domain.NetworkMetric{{Name: "eth0", RcvRate: 12.5}},
	})

	rec := do(t, h, http.MethodPost, "/monitor", string(body))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body)
	}
	if obs.stored != 1 {
		t.Fatalf("expected stored counter to increase")
	}

	rec = do(t, h, http.MethodGet, "/monitor", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Message string          `json:"message"`
		Data    domain.Snapshot `json:"data"`
		Meta    domain.Units    `json:"meta"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Message != "OK" || resp.Data.Host != "box" || resp.Data.Sequence != 5 {
		t.Fatalf("unexpected response %+v", resp)
	}
	if resp.Meta.NetRate != "KB/s" {
		t.Fatalf("expected units alongside the snapshot, got %+v", resp.Meta)
	}
	if len(resp.Data.Network) != 1 || resp.Data.Network[0].RcvRate != 12.5 {
		t.Fatalf("network domain lost in transit: %+v", resp.Data.Network)
	}
}

func TestLatestBeforePublish(t *testing.T) {
	h := newTestRouter(snapshot.NewSnapshotStore(), nil)

	rec := do(t, h, http.MethodGet, "/monitor", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data domain.Snapshot `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Data.IsEmpty() {
		t.Fatalf("expected empty snapshot, got %+v", resp.Data)
	}
}

func TestPublishRejectsBadInput(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		field  string
	}{
		{"malformed", `{"name":`, http.StatusBadRequest, ""},
		{"unknown field", `{"name":"box","uptime":3}`, http.StatusBadRequest, ""},
		{"missing host", `{"sequence":1}`, http.StatusUnprocessableEntity, "name"},
		{"unnamed cpu", `{"name":"box","cpu_stat":[{"usr_percent":1}]}`, http.StatusUnprocessableEntity, "cpu_stat[0].cpu_name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := snapshot.NewSnapshotStore()
			rec := do(t, newTestRouter(store, nil), http.MethodPost, "/monitor", tt.body)

			if rec.Code != tt.status {
				t.Fatalf("expected %d, got %d: %s", tt.status, rec.Code, rec.Body)
			}
			if store.Version() != 0 {
				t.Fatalf("rejected snapshot must not be stored")
			}

			if tt.field == "" {
				return
			}
			var resp struct {
				Errors map[string]string `json:"errors"`
			}
			json.NewDecoder(bytes.NewReader(rec.Body.Bytes())).Decode(&resp)
			if _, ok := resp.Errors[tt.field]; !ok {
				t.Fatalf("expected error for %q, got %v", tt.field, resp.Errors)
			}
		})
	}
}

func TestCORSAndHealth(t *testing.T) {
	h := newTestRouter(snapshot.NewSnapshotStore(), nil)

	req := httptest.NewRequest(http.MethodOptions, "/monitor", nil)
	req.Header.Set("Origin", "http://viewer.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected preflight 204, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://viewer.example" {
		t.Fatalf("unexpected allow-origin %q", got)
	}

	rec = do(t, h, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK || rec.Body.String() != "OK" {
		t.Fatalf("unexpected health response %d %q", rec.Code, rec.Body)
	}
}
