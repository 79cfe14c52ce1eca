package memory

import (
	"linux-monitor/internal/domain"
	"linux-monitor/internal/logger"
)

type Collector struct {
	log  logger.Logger
	path string
}

type MemoryMetric = domain.MemoryMetric

// kbPerGB converts /proc/meminfo kB values to GB.
const kbPerGB = 1000 * 1000

// memInfo holds raw kB values keyed by their meminfo label.
type memInfo map[string]uint64

// gauges maps each reported label onto its field of MemoryMetric.
var gauges = []struct {
	label string
	field func(*MemoryMetric) *float64
}{
	{"MemTotal", func(m *MemoryMetric) *float64 { return &m.Total }},
	{"MemFree", func(m *MemoryMetric) *float64 { return &m.Free }},
	{"MemAvailable", func(m *MemoryMetric) *float64 { return &m.Avail }},
	{"Buffers", func(m *MemoryMetric) *float64 { return &m.Buffers }},
	{"Cached", func(m *MemoryMetric) *float64 { return &m.Cached }},
	{"SwapCached", func(m *MemoryMetric) *float64 { return &m.SwapCached }},
	{"Active", func(m *MemoryMetric) *float64 { return &m.Active }},
	{"Inactive", func(m *MemoryMetric) *float64 { return &m.Inactive }},
	{"Active(anon)", func(m *MemoryMetric) *float64 { return &m.ActiveAnon }},
	{"Inactive(anon)", func(m *MemoryMetric) *float64 { return &m.InactiveAnon }},
	{"Active(file)", func(m *MemoryMetric) *float64 { return &m.ActiveFile }},
	{"Inactive(file)", func(m *MemoryMetric) *float64 { return &m.InactiveFile }},
	{"Dirty", func(m *MemoryMetric) *float64 { return &m.Dirty }},
	{"Writeback", func(m *MemoryMetric) *float64 { return &m.Writeback }},
	{"AnonPages", func(m *MemoryMetric) *float64 { return &m.AnonPages }},
	{"Mapped", func(m *MemoryMetric) *float64 { return &m.Mapped }},
	{"KReclaimable", func(m *MemoryMetric) *float64 { return &m.KReclaimable }},
	{"SReclaimable", func(m *MemoryMetric) *float64 { return &m.SReclaimable }},
	{"SUnreclaim", func(m *MemoryMetric) *float64 { return &m.SUnreclaim }},
}
