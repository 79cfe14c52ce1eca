// Package memory
package memory

import (
	"context"
	"fmt"

	"linux-monitor/internal/domain"
	"linux-monitor/internal/logger"
	"linux-monitor/internal/system"
)

func NewCollector(procRoot string, log logger.Logger) *Collector {
	return &Collector{
		log:  log,
		path: system.Path(procRoot, "meminfo"),
	}
}

// Collect reports memory gauges in GB and the share of memory that is not
// available, using the kernel's reclaim-aware MemAvailable.
func (c *Collector) Collect(ctx context.Context) (MemoryMetric, error) {
	info, err := c.readMemInfo()
	if err != nil {
		return MemoryMetric{}, err
	}

	total := info["MemTotal"]
	if total == 0 {
		return MemoryMetric{}, fmt.Errorf("%w: MemTotal missing or zero", domain.ErrParse)
	}

	var m MemoryMetric
	for _, g := range gauges {
		v, ok := info[g.label]
		if !ok {
			c.log.Debug("meminfo label absent", "label", g.label)
			continue
		}
		*g.field(&m) = float64(v) / kbPerGB
	}

	avail := info["MemAvailable"]
	if avail > total {
		avail = total
	}
	m.UsedPercent = float64(total-avail) / float64(total) * 100

	return m, nil
}
