package agent

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"linux-monitor/internal/config"
	"linux-monitor/internal/domain"
	"linux-monitor/internal/logger"
)

type countingSampler struct{ seq uint64 }

func (c *countingSampler) Collect(context.Context) domain.Snapshot {
	c.seq++
	return domain.Snapshot{Host: "h", Sequence: c.seq}
}

func testAgent(mode string, pub Publisher) (*Agent, *bytes.Buffer) {
	cfg := config.Default()
	cfg.Mode = mode
	cfg.CollectInterval = 10 * time.Millisecond

	var out bytes.Buffer
	a := New(cfg, logger.Discard(), &countingSampler{}, NewReporter(pub, logger.Discard(), nil))
	a.out = &out
	return a, &out
}

func TestRunSnapshotPrintsSecondTick(t *testing.T) {
	a, out := testAgent(config.ModeSnapshot, &fakePublisher{})

	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(out.Bytes(), &snap); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if snap.Sequence != 2 {
		t.Fatalf("expected the second tick, got sequence %d", snap.Sequence)
	}
}

func TestRunStreamWritesNDJSON(t *testing.T) {
	a, out := testAgent(config.ModeStream, &fakePublisher{})

	ctx, cancel := context.WithTimeout(context.Background(), 55*time.Millisecond)
	defer cancel()

	if err := a.Run(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := 0
	scanner := bufio.NewScanner(out)
	for scanner.Scan() {
		var snap domain.Snapshot
		if err := json.Unmarshal(scanner.Bytes(), &snap); err != nil {
			t.Fatalf("line %d is not a snapshot: %v", lines, err)
		}
		lines++
		if snap.Sequence != uint64(lines) {
			t.Fatalf("expected sequence %d, got %d", lines, snap.Sequence)
		}
	}
	if lines < 2 {
		t.Fatalf("expected several snapshots, got %d", lines)
	}
}

func TestRunPublishKeepsGoingOnFailure(t *testing.T) {
	pub := &fakePublisher{err: domain.ErrTransport}
	a, _ := testAgent(config.ModePublish, pub)

	ctx, cancel := context.WithTimeout(context.Background(), 55*time.Millisecond)
	defer cancel()

	a.Run(ctx)

	if pub.calls < 2 {
		t.Fatalf("loop should continue after failed publishes, got %d calls", pub.calls)
	}
}
