package load

import (
	"linux-monitor/internal/domain"
	"linux-monitor/internal/logger"
)

type Collector struct {
	log  logger.Logger
	path string
}

type LoadMetric = domain.LoadMetric
