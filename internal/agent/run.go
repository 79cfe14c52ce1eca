package agent

import (
	"context"
	"encoding/json"
	"time"

	"linux-monitor/internal/config"
	"linux-monitor/internal/domain"
	"linux-monitor/internal/metrics"
)

func (a *Agent) Run(ctx context.Context) error {
	switch a.cfg.Mode {
	case config.ModeSnapshot:
		return a.runSnapshot(ctx)
	case config.ModeStream:
		return a.runStream(ctx)
	case config.ModePublish:
		return a.runPublish(ctx)
	default:
		a.log.Info("unknown mode, defaulting to publish", "mode", a.cfg.Mode)
		return a.runPublish(ctx)
	}
}

// runSnapshot needs two ticks because rates only exist from the second
// observation on.
func (a *Agent) runSnapshot(ctx context.Context) error {
	a.sampler.Collect(ctx)

	select {
	case <-time.After(a.cfg.CollectInterval):
	case <-ctx.Done():
		return ctx.Err()
	}

	snap := a.sampler.Collect(ctx)
	return json.NewEncoder(a.out).Encode(snap)
}

func (a *Agent) runStream(ctx context.Context) error {
	encoder := json.NewEncoder(a.out)
	sched := metrics.NewScheduler(a.cfg.CollectInterval, a.log, a.sampler.Collect, func(_ context.Context, snap domain.Snapshot) {
		if err := encoder.Encode(snap); err != nil {
			a.log.Error("stream encode", "error", err)
		}
	})

	sched.Start(ctx)
	return nil
}

func (a *Agent) runPublish(ctx context.Context) error {
	a.log.Info("publishing snapshots", "server", a.cfg.ServerURL, "host", a.cfg.HostName)

	sched := metrics.NewScheduler(a.cfg.CollectInterval, a.log, a.sampler.Collect, a.reporter.Report)
	sched.Start(ctx)
	return nil
}
