package network

import (
	"fmt"
	"strconv"
	"strings"

	"linux-monitor/internal/domain"
	"linux-monitor/internal/metrics/delta"
	"linux-monitor/internal/system"
)

// fieldOf maps each counter slot to its /proc/net/dev field.
var fieldOf = [numCounters]int{
	rcvBytes:   fieldRcvBytes,
	rcvPackets: fieldRcvPackets,
	sndBytes:   fieldSndBytes,
	sndPackets: fieldSndPackets,
}

type ifaceSample struct {
	name   string
	sample delta.Sample
}

// interfaceName reports whether a record is an interface line: the first
// token's only colon is its last character and the line is wide enough.
func interfaceName(fields []string) (string, bool) {
	if len(fields) < minFields {
		return "", false
	}

	token := fields[0]
	i := strings.IndexByte(token, ':')
	if i < 1 || i != len(token)-1 {
		return "", false
	}
	return token[:i], true
}

func (c *Collector) readNetDev() ([]ifaceSample, error) {
	records, err := system.ReadRecords(c.path)
	if err != nil {
		return nil, err
	}

	now := c.now()
	var samples []ifaceSample

	for _, fields := range records {
		name, ok := interfaceName(fields)
		if !ok {
			continue
		}

		if len(fields) <= fieldSndPackets {
			return nil, fmt.Errorf("%w: %s has %d fields", domain.ErrParse, name, len(fields))
		}

		counters := make([]uint64, numCounters)
		for slot, pos := range fieldOf {
			v, err := strconv.ParseUint(fields[pos], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %s field %d: %v", domain.ErrParse, name, pos, err)
			}
			counters[slot] = v
		}

		samples = append(samples, ifaceSample{
			name:   name,
			sample: delta.Sample{Counters: counters, At: now},
		})
	}

	return samples, nil
}
