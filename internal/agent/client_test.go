package agent

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"linux-monitor/internal/config"
	"linux-monitor/internal/domain"
)

func testClient(url string) *Client {
	cfg := config.Default()
	cfg.ServerURL = url
	cfg.PublishTimeout = 100 * time.Millisecond
	cfg.FetchTimeout = 100 * time.Millisecond
	return NewClient(cfg)
}

func TestPublish(t *testing.T) {
	var got domain.Snapshot
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/monitor" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	snap := domain.Snapshot{Host: "box", Sequence: 3, CPULoad: &domain.LoadMetric{Load1: 1.5}}
	if err := testClient(srv.URL).Publish(context.Background(), snap); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Host != "box" || got.Sequence != 3 || got.CPULoad == nil || got.CPULoad.Load1 != 1.5 {
		t.Fatalf("server received %+v", got)
	}
}

func TestPublishFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"rejected", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
		}},
		{"deadline", func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-time.After(time.Second):
			case <-r.Context().Done():
			}
			w.WriteHeader(http.StatusCreated)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			err := testClient(srv.URL).Publish(context.Background(), domain.Snapshot{Host: "box"})
			if !errors.Is(err, domain.ErrTransport) {
				t.Fatalf("expected ErrTransport, got %v", err)
			}
		})
	}
}

func TestPublishUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	err := testClient(url).Publish(context.Background(), domain.Snapshot{Host: "box"})
	if !errors.Is(err, domain.ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}

func TestFetchLatest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"OK","data":{"name":"box","sequence":9,"mem_info":{"used_percent":42}}}`))
	}))
	defer srv.Close()

	snap, err := testClient(srv.URL).FetchLatest(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Host != "box" || snap.Sequence != 9 || snap.Memory == nil || snap.Memory.UsedPercent != 42 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestFetchLatestFailureIsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	snap, err := testClient(srv.URL).FetchLatest(context.Background())
	if !errors.Is(err, domain.ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
	if !snap.IsEmpty() {
		t.Fatalf("expected empty snapshot on failure, got %+v", snap)
	}
}
