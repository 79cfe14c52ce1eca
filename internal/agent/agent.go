// Package agent is the collector side of the monitor: it samples on a
// schedule and delivers snapshots to the server or to stdout.
package agent

import (
	"context"
	"io"
	"os"

	"linux-monitor/internal/config"
	"linux-monitor/internal/domain"
	"linux-monitor/internal/logger"
)

type Sampler interface {
	Collect(ctx context.Context) domain.Snapshot
}

type Agent struct {
	cfg      *config.Config
	log      logger.Logger
	sampler  Sampler
	reporter *Reporter
	out      io.Writer
}

func New(cfg *config.Config, log logger.Logger, sampler Sampler, reporter *Reporter) *Agent {
	return &Agent{
		cfg:      cfg,
		log:      log,
		sampler:  sampler,
		reporter: reporter,
		out:      os.Stdout,
	}
}
