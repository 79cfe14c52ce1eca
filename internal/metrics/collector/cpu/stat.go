package cpu

import (
	"fmt"
	"strconv"
	"strings"

	"linux-monitor/internal/domain"
	"linux-monitor/internal/metrics/delta"
	"linux-monitor/internal/system"
)

type cpuSample struct {
	name   string
	sample delta.Sample
}

// readStat parses every line whose first token mentions "cpu". One bad line
// fails the whole read.
func (c *Collector) readStat() ([]cpuSample, error) {
	records, err := system.ReadRecords(c.path)
	if err != nil {
		return nil, err
	}

	now := c.now()
	var samples []cpuSample

	for _, fields := range records {
		if !strings.Contains(fields[0], "cpu") {
			continue
		}

		if len(fields) < numCols+1 {
			return nil, fmt.Errorf("%w: %s has %d fields", domain.ErrParse, fields[0], len(fields))
		}

		counters := make([]uint64, numCols)
		for i := range numCols {
			v, err := strconv.ParseUint(fields[i+1], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %s column %d: %v", domain.ErrParse, fields[0], i, err)
			}
			counters[i] = v
		}

		samples = append(samples, cpuSample{
			name:   fields[0],
			sample: delta.Sample{Counters: counters, At: now},
		})
	}

	return samples, nil
}
