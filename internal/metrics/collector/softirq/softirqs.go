package softirq

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

// readSoftIRQs transposes /proc/softirqs. The header row names the CPUs and
// every following row is one interrupt class with a count per CPU.
func (c *Collector) readSoftIRQs() ([]cpuSample, error) {
	records, err := system.ReadRecords(c.path)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: softirqs is empty", domain.ErrParse)
	}

	cpus := records[0]

	rows := make(map[string][]string, len(records)-1)
	for _, fields := range records[1:] {
		rows[strings.TrimSuffix(fields[0], ":")] = fields[1:]
	}

	now := c.now()
	samples := make([]cpuSample, len(cpus))
	for i, name := range cpus {
		samples[i] = cpuSample{
			name:   name,
			sample: delta.Sample{Counters: make([]uint64, len(classes)), At: now},
		}
	}

	for k, class := range classes {
		row, ok := rows[class]
		if !ok {
			return nil, fmt.Errorf("%w: softirqs missing %s row", domain.ErrParse, class)
		}
		if len(row) < len(cpus) {
			return nil, fmt.Errorf("%w: %s has %d columns for %d cpus", domain.ErrParse, class, len(row), len(cpus))
		}

		for i := range cpus {
			v, err := strconv.ParseUint(row[i], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %s column %d: %v", domain.ErrParse, class, i, err)
			}
			samples[i].sample.Counters[k] = v
		}
	}

	return samples, nil
}
