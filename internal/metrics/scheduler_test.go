package metrics

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"linux-monitor/internal/domain"
	"linux-monitor/internal/logger"
)

func TestSchedulerTicksWithoutOverlap(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	var running, overlaps, sunk atomic.Int32
	var seq uint64

	sample := func(context.Context) domain.Snapshot {
		if running.Add(1) > 1 {
			overlaps.Add(1)
		}
		time.Sleep(15 * time.Millisecond)
		running.Add(-1)

		seq++
		return domain.Snapshot{Host: "h", Sequence: seq}
	}
	sink := func(context.Context, domain.Snapshot) { sunk.Add(1) }

	NewScheduler(10*time.Millisecond, logger.Discard(), sample, sink).Start(ctx)

	if overlaps.Load() != 0 {
		t.Fatalf("ticks overlapped %d times", overlaps.Load())
	}
	if sunk.Load() < 2 {
		t.Fatalf("expected several ticks, got %d", sunk.Load())
	}
}

func TestSchedulerStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		NewScheduler(time.Hour, logger.Discard(), func(context.Context) domain.Snapshot {
			return domain.Snapshot{}
		}, func(context.Context, domain.Snapshot) {}).Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("scheduler did not stop")
	}
}
