package domain

import (
	"time"

	"github.com/google/uuid"
)

// Snapshot is everything one collection tick produced. Domains that failed
// during the tick are nil/empty, never zero-filled.
type Snapshot struct {
	ID         uuid.UUID `json:"id"`
	Sequence   uint64    `json:"sequence"`
	Host       string    `json:"name" validate:"required"`
	RecordedAt time.Time `json:"recorded_at"`

	CPULoad  *LoadMetric     `json:"cpu_load,omitempty"`
	CPUStats []CPUStatMetric `json:"cpu_stat,omitempty" validate:"dive"`
	SoftIRQs []SoftIRQMetric `json:"soft_irq,omitempty" validate:"dive"`
	Memory   *MemoryMetric   `json:"mem_info,omitempty"`
	Network  []NetworkMetric `json:"net_info,omitempty" validate:"dive"`
}

func (s Snapshot) IsEmpty() bool {
	return s.Host == "" && s.Sequence == 0
}

type LoadMetric struct {
	Load1  float64 `json:"load_avg_1"`
	Load3  float64 `json:"load_avg_3"`
	Load15 float64 `json:"load_avg_15"`
}

type CPUStatMetric struct {
	Name           string  `json:"cpu_name" validate:"required"`
	CPUPercent     float64 `json:"cpu_percent"`
	UserPercent    float64 `json:"usr_percent"`
	SystemPercent  float64 `json:"system_percent"`
	NicePercent    float64 `json:"nice_percent"`
	IdlePercent    float64 `json:"idle_percent"`
	IOWaitPercent  float64 `json:"io_wait_percent"`
	IRQPercent     float64 `json:"irq_percent"`
	SoftIRQPercent float64 `json:"soft_irq_percent"`
}

// SoftIRQMetric rates are interrupts per second.
type SoftIRQMetric struct {
	CPU     string  `json:"cpu" validate:"required"`
	HI      float64 `json:"hi"`
	Timer   float64 `json:"timer"`
	NetTx   float64 `json:"net_tx"`
	NetRx   float64 `json:"net_rx"`
	Block   float64 `json:"block"`
	IRQPoll float64 `json:"irq_poll"`
	Tasklet float64 `json:"tasklet"`
	Sched   float64 `json:"sched"`
	HRTimer float64 `json:"hrtimer"`
	RCU     float64 `json:"rcu"`
}

// MemoryMetric gauges are GB (kB / 1000 / 1000).
type MemoryMetric struct {
	UsedPercent  float64 `json:"used_percent"`
	Total        float64 `json:"total"`
	Free         float64 `json:"free"`
	Avail        float64 `json:"avail"`
	Buffers      float64 `json:"buffers"`
	Cached       float64 `json:"cached"`
	SwapCached   float64 `json:"swap_cached"`
	Active       float64 `json:"active"`
	Inactive     float64 `json:"inactive"`
	ActiveAnon   float64 `json:"active_anon"`
	InactiveAnon float64 `json:"inactive_anon"`
	ActiveFile   float64 `json:"active_file"`
	InactiveFile float64 `json:"inactive_file"`
	Dirty        float64 `json:"dirty"`
	Writeback    float64 `json:"writeback"`
	AnonPages    float64 `json:"anon_pages"`
	Mapped       float64 `json:"mapped"`
	KReclaimable float64 `json:"kreclaimable"`
	SReclaimable float64 `json:"sreclaimable"`
	SUnreclaim   float64 `json:"sunreclaim"`
}

// NetworkMetric byte rates are KB/s, packet rates packets/s.
type NetworkMetric struct {
	Name            string  `json:"name" validate:"required"`
	SendRate        float64 `json:"send_rate"`
	RcvRate         float64 `json:"rcv_rate"`
	SendPacketsRate float64 `json:"send_packets_rate"`
	RcvPacketsRate  float64 `json:"rcv_packets_rate"`
}
