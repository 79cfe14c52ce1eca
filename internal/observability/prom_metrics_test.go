package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPromObsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs := NewPromObs(reg)

	obs.ObserveTick(20 * time.Millisecond)
	obs.ObserveTick(30 * time.Millisecond)
	if got := testutil.ToFloat64(obs.ticks); got != 2 {
		t.Fatalf("expected 2 ticks, got %f", got)
	}
	if samples := testutil.CollectAndCount(obs.tickDuration); samples != 1 {
		t.Fatalf("expected one histogram series, got %d", samples)
	}

	obs.CollectorFailed("network")
	obs.CollectorFailed("network")
	obs.CollectorFailed("load")
	if got := testutil.ToFloat64(obs.collectorFailures.WithLabelValues("network")); got != 2 {
		t.Fatalf("expected 2 network failures, got %f", got)
	}
	if got := testutil.CollectAndCount(obs.collectorFailures); got != 2 {
		t.Fatalf("expected 2 labelled series, got %d", got)
	}

	obs.PublishFailed()
	if got := testutil.ToFloat64(obs.publishFailures); got != 1 {
		t.Fatalf("expected 1 publish failure, got %f", got)
	}

	obs.SnapshotStored()
	if got := testutil.ToFloat64(obs.snapshotsStored); got != 1 {
		t.Fatalf("expected 1 stored snapshot, got %f", got)
	}

	obs.SetWsClients(3)
	if got := testutil.ToFloat64(obs.wsClients); got != 3 {
		t.Fatalf("expected 3 ws clients, got %f", got)
	}
}

func TestPromObsRegistersOnInjectedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewPromObs(reg)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	// Vectors without observations are not gathered.
	if len(families) != 5 {
		t.Fatalf("expected 5 metric families, got %d", len(families))
	}
}
