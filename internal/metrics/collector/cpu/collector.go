// Package cpu
package cpu

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
		path:    system.Path(procRoot, "stat"),
		history: delta.NewHistory(),
		now:     time.Now,
	}
}

// Collect returns time-slice percentages for the aggregate cpu line and
// every core seen on a previous tick.
func (c *Collector) Collect(ctx context.Context) ([]CPUStatMetric, error) {
	samples, err := c.readStat()
	if err != nil {
		return nil, err
	}

	stats := make([]CPUStatMetric, 0, len(samples))

	for _, s := range samples {
		prev, ok := c.history.Get(s.name)
		c.history.Put(s.name, s.sample)

		pct, err := delta.Percentages(prev, ok, s.sample)
		if err != nil {
			if errors.Is(err, delta.ErrCounterReset) {
				c.log.Debug("cpu counters went backwards, rebaselining", "cpu", s.name)
			}
			continue
		}

		stats = append(stats, CPUStatMetric{
			Name:           s.name,
			CPUPercent:     100 - pct[colIdle] - pct[colIOWait],
			UserPercent:    pct[colUser],
			SystemPercent:  pct[colSystem],
			NicePercent:    pct[colNice],
			IdlePercent:    pct[colIdle],
			IOWaitPercent:  pct[colIOWait],
			IRQPercent:     pct[colIRQ],
			SoftIRQPercent: pct[colSoftIRQ],
		})
	}

	return stats, nil
}
