package network

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

type NetworkMetric = domain.NetworkMetric

// Counter slots kept per interface.
const (
	rcvBytes = iota
	rcvPackets
	sndBytes
	sndPackets
	numCounters
)

// Field positions in a /proc/net/dev interface line, name included.
const (
	fieldRcvBytes   = 1
	fieldRcvPackets = 2
	fieldSndBytes   = 9
	fieldSndPackets = 10
	minFields       = 10
)

const bytesPerKB = 1024
