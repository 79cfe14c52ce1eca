package agent

import (
	"context"

	"linux-monitor/internal/domain"
	"linux-monitor/internal/logger"
)

type Publisher interface {
	Publish(ctx context.Context, snap domain.Snapshot) error
}

type PublishObserver interface {
	PublishFailed()
}

// Reporter hands each tick's snapshot to the server. Failures are logged and
// counted, never retried; the next tick carries fresher data anyway.
type Reporter struct {
	pub Publisher
	log logger.Logger
	obs PublishObserver
}

func NewReporter(pub Publisher, log logger.Logger, obs PublishObserver) *Reporter {
	return &Reporter{pub: pub, log: log, obs: obs}
}

func (r *Reporter) Report(ctx context.Context, snap domain.Snapshot) {
	if err := r.pub.Publish(ctx, snap); err != nil {
		r.log.Error("failed to publish snapshot", "sequence", snap.Sequence, "error", err)
		if r.obs != nil {
			r.obs.PublishFailed()
		}
		return
	}

	r.log.Debug("snapshot published", "sequence", snap.Sequence)
}
