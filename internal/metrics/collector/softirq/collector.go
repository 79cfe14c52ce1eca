// Package softirq
package softirq

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
		path:    system.Path(procRoot, "softirqs"),
		history: delta.NewHistory(),
		now:     time.Now,
	}
}

// Collect returns per-CPU interrupt rates for every class.
func (c *Collector) Collect(ctx context.Context) ([]SoftIRQMetric, error) {
	samples, err := c.readSoftIRQs()
	if err != nil {
		return nil, err
	}

	metrics := make([]SoftIRQMetric, 0, len(samples))

	for _, s := range samples {
		prev, ok := c.history.Get(s.name)
		c.history.Put(s.name, s.sample)

		r, err := delta.Rates(prev, ok, s.sample)
		if err != nil {
			if errors.Is(err, delta.ErrCounterReset) {
				c.log.Debug("softirq counters went backwards, rebaselining", "cpu", s.name)
			}
			continue
		}

		metrics = append(metrics, SoftIRQMetric{
			CPU:     s.name,
			HI:      r[0],
			Timer:   r[1],
			NetTx:   r[2],
			NetRx:   r[3],
			Block:   r[4],
			IRQPoll: r[5],
			Tasklet: r[6],
			Sched:   r[7],
			HRTimer: r[8],
			RCU:     r[9],
		})
	}

	return metrics, nil
}
