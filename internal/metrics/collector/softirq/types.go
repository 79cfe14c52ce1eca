package softirq

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

type SoftIRQMetric = domain.SoftIRQMetric

// classes lists the interrupt rows in the order counters are stored.
var classes = [...]string{
	"HI",
	"TIMER",
	"NET_TX",
	"NET_RX",
	"BLOCK",
	"IRQ_POLL",
	"TASKLET",
	"SCHED",
	"HRTIMER",
	"RCU",
}
