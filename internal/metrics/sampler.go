// Package metrics runs the per-domain collectors once per tick and assembles
// their output into a snapshot.
package metrics

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"linux-monitor/internal/config"
	"linux-monitor/internal/domain"
	"linux-monitor/internal/logger"
	"linux-monitor/internal/metrics/collector/cpu"
	"linux-monitor/internal/metrics/collector/load"
	"linux-monitor/internal/metrics/collector/memory"
	"linux-monitor/internal/metrics/collector/network"
	"linux-monitor/internal/metrics/collector/softirq"
)

type Phase int32

const (
	PhaseIdle Phase = iota
	PhaseCollecting
	PhaseReady
)

func (p Phase) String() string {
	switch p {
	case PhaseCollecting:
		return "collecting"
	case PhaseReady:
		return "ready"
	default:
		return "idle"
	}
}

// Observer receives per-tick measurements. See internal/observability.
type Observer interface {
	ObserveTick(d time.Duration)
	CollectorFailed(name string)
}

type nopObserver struct{}

func (nopObserver) ObserveTick(time.Duration) {}
func (nopObserver) CollectorFailed(string)    {}

// stage fills one domain of a snapshot.
type stage struct {
	name string
	run  func(ctx context.Context, snap *domain.Snapshot) error
}

type Sampler struct {
	host   string
	log    logger.Logger
	obs    Observer
	stages []stage

	seq   uint64
	phase atomic.Int32
	now   func() time.Time
}

func NewSampler(cfg *config.Config, log logger.Logger) *Sampler {
	loadC := load.NewCollector(cfg.ProcRoot, log)
	cpuC := cpu.NewCollector(cfg.ProcRoot, log)
	softirqC := softirq.NewCollector(cfg.ProcRoot, log)
	memoryC := memory.NewCollector(cfg.ProcRoot, log)
	networkC := network.NewCollector(cfg.ProcRoot, log)

	return &Sampler{
		host: cfg.HostName,
		log:  log,
		obs:  nopObserver{},
		now:  time.Now,
		stages: []stage{
			{"load", func(ctx context.Context, snap *domain.Snapshot) error {
				val, err := loadC.Collect(ctx)
				if err == nil {
					snap.CPULoad = &val
				}
				return err
			}},
			{"cpu", func(ctx context.Context, snap *domain.Snapshot) error {
				val, err := cpuC.Collect(ctx)
				if err == nil {
					snap.CPUStats = val
				}
				return err
			}},
			{"softirq", func(ctx context.Context, snap *domain.Snapshot) error {
				val, err := softirqC.Collect(ctx)
				if err == nil {
					snap.SoftIRQs = val
				}
				return err
			}},
			{"memory", func(ctx context.Context, snap *domain.Snapshot) error {
				val, err := memoryC.Collect(ctx)
				if err == nil {
					snap.Memory = &val
				}
				return err
			}},
			{"network", func(ctx context.Context, snap *domain.Snapshot) error {
				val, err := networkC.Collect(ctx)
				if err == nil {
					snap.Network = val
				}
				return err
			}},
		},
	}
}

// WithObserver replaces the no-op observer. Call before the first tick.
func (s *Sampler) WithObserver(obs Observer) *Sampler {
	if obs != nil {
		s.obs = obs
	}
	return s
}

func (s *Sampler) Phase() Phase {
	return Phase(s.phase.Load())
}

// Collect runs every stage in order. A failing stage is logged and its domain
// left out of the snapshot; it never stops the remaining stages.
func (s *Sampler) Collect(ctx context.Context) domain.Snapshot {
	s.phase.Store(int32(PhaseCollecting))
	defer s.phase.Store(int32(PhaseIdle))

	start := s.now()
	s.seq++

	snap := domain.Snapshot{
		ID:         uuid.New(),
		Sequence:   s.seq,
		Host:       s.host,
		RecordedAt: start.UTC(),
	}

	for _, st := range s.stages {
		if err := st.run(ctx, &snap); err != nil {
			s.log.Error("collector", "name", st.name, "error", err)
			s.obs.CollectorFailed(st.name)
		}
	}

	s.phase.Store(int32(PhaseReady))
	s.obs.ObserveTick(s.now().Sub(start))

	return snap
}
