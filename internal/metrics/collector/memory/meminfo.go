package memory

import (
	"fmt"
	"strconv"
	"strings"

	"linux-monitor/internal/domain"
	"linux-monitor/internal/system"
)

func isKnown(label string) bool {
	for _, g := range gauges {
		if g.label == label {
			return true
		}
	}
	return false
}

// readMemInfo parses "Label: value kB" records. Unknown labels are skipped
// without looking at their value.
func (c *Collector) readMemInfo() (memInfo, error) {
	records, err := system.ReadRecords(c.path)
	if err != nil {
		return nil, err
	}

	info := make(memInfo, len(gauges))
	for _, fields := range records {
		label := strings.TrimSuffix(fields[0], ":")
		if !isKnown(label) {
			continue
		}

		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: %s has no value", domain.ErrParse, label)
		}

		v, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrParse, label, err)
		}
		info[label] = v
	}

	return info, nil
}
