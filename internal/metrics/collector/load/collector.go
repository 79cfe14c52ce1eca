// Package load
package load

import (
	"context"
	"fmt"
	"strconv"

	"linux-monitor/internal/domain"
	"linux-monitor/internal/logger"
	"linux-monitor/internal/system"
)

func NewCollector(procRoot string, log logger.Logger) *Collector {
	return &Collector{
		log:  log,
		path: system.Path(procRoot, "loadavg"),
	}
}

// Collect reads the 1, 3 and 15 minute load averages. They are gauges, so
// no history is kept.
func (c *Collector) Collect(ctx context.Context) (LoadMetric, error) {
	src, err := system.Open(c.path)
	if err != nil {
		return LoadMetric{}, err
	}
	defer src.Close()

	fields, ok := src.Next()
	if !ok || len(fields) < 3 {
		return LoadMetric{}, fmt.Errorf("%w: loadavg has %d fields", domain.ErrParse, len(fields))
	}

	var avg [3]float64
	for i := range avg {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return LoadMetric{}, fmt.Errorf("%w: loadavg field %d: %v", domain.ErrParse, i, err)
		}
		avg[i] = v
	}

	return LoadMetric{
		Load1:  avg[0],
		Load3:  avg[1],
		Load15: avg[2],
	}, nil
}
