package cpu

import (
	"time"

	"linux-monitor/internal/domain"
	"linux-monitor/internal/logger"
	"linux-monitor/internal/metrics/delta"
)

type Collector struct {
	log     logger.Logger
	path    string
	history *delta.History
	now     func() time.Time
}

type CPUStatMetric = domain.CPUStatMetric

// Column order of the accounted jiffy counters in /proc/stat. guest and
// guest_nice are already included in user and nice.
const (
	colUser = iota
	colNice
	colSystem
	colIdle
	colIOWait
	colIRQ
	colSoftIRQ
	colSteal
	numCols
)
