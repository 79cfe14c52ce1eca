// Package network
package network

import (
	"context"
	"errors"
	"time"

	"linux-monitor/internal/logger"
	"linux-monitor/internal/metrics/delta"
	"linux-monitor/internal/system"
)

func NewCollector(procRoot string, log logger.Logger) *Collector {
	return &Collector{
		log:     log,
		path:    system.Path(procRoot, "net/dev"),
		history: delta.NewHistory(),
		now:     time.Now,
	}
}

// Collect returns send/receive throughput in KB/s and packets/s for every
// interface seen on a previous tick.
func (c *Collector) Collect(ctx context.Context) ([]NetworkMetric, error) {
	samples, err := c.readNetDev()
	if err != nil {
		return nil, err
	}

	metrics := make([]NetworkMetric, 0, len(samples))

	for _, s := range samples {
		prev, ok := c.history.Get(s.name)
		c.history.Put(s.name, s.sample)

		r, err := delta.Rates(prev, ok, s.sample)
		if err != nil {
			if errors.Is(err, delta.ErrCounterReset) {
				c.log.Debug("interface counters went backwards, rebaselining", "iface", s.name)
			}
			continue
		}

		metrics = append(metrics, NetworkMetric{
			Name:            s.name,
			SendRate:        r[sndBytes] / bytesPerKB,
			RcvRate:         r[rcvBytes] / bytesPerKB,
			SendPacketsRate: r[sndPackets],
			RcvPacketsRate:  r[rcvPackets],
		})
	}

	return metrics, nil
}
